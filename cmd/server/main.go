package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dye-kulture.backend/internal/config"
	"dye-kulture.backend/internal/infrastructure/email"
	"dye-kulture.backend/internal/infrastructure/models"
	"dye-kulture.backend/internal/infrastructure/repositories"
	"dye-kulture.backend/internal/interfaces/http/handlers"
	"dye-kulture.backend/internal/interfaces/http/middleware"
	"dye-kulture.backend/internal/usecases"
	"dye-kulture.backend/pkg/jwt"
	"dye-kulture.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Connected to PostgreSQL")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewVerificationTokenRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)

	notifier := email.NewSMTPNotifier(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.Frontend.VerifyURL,
	)

	authUsecase := usecases.NewAuthUsecase(userRepo, tokenRepo, notifier, jwtService, cfg.Security.BcryptCost)
	cartUsecase := usecases.NewCartUsecase(cartRepo, productRepo)
	catalogUsecase := usecases.NewCatalogUsecase(productRepo)

	authHandler := handlers.NewAuthHandler(authUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	productHandler := handlers.NewProductHandler(catalogUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Frontend.Origin)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		cartHandler:    cartHandler,
		productHandler: productHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})
	registerNotFoundHandler(r)

	logger.Info(context.Background(), "Dye Kulture backend starting",
		zap.String("port", cfg.Server.Port),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
