package email

import (
	"context"
	"fmt"
	"net/smtp"
	"net/url"
	"strings"
)

// SMTPNotifier sends verification emails over plain SMTP. An unconfigured
// notifier reports an error on send; the caller treats that as non-fatal.
type SMTPNotifier struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	VerifyURL string
}

var sendMail = smtp.SendMail

// NewSMTPNotifier creates a new SMTP notifier. verifyURL is the base URL the
// token is appended to as a query parameter.
func NewSMTPNotifier(host string, port int, user, password, from, verifyURL string) *SMTPNotifier {
	return &SMTPNotifier{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		From:      from,
		VerifyURL: strings.TrimRight(verifyURL, "/"),
	}
}

// Notify sends the verification link to the given address
func (n *SMTPNotifier) Notify(ctx context.Context, email, token string) error {
	if n == nil || n.Host == "" || n.User == "" {
		return fmt.Errorf("smtp not configured")
	}

	link := n.VerifyURL + "?token=" + url.QueryEscape(token)
	msg := []byte("To: " + email + "\r\n" +
		"Subject: Verify your email\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"Welcome! Please verify your email by opening the link below.\r\n" +
		"\r\n" + link + "\r\n" +
		"\r\nThe link expires in 24 hours.\r\n")

	addr := fmt.Sprintf("%s:%d", n.Host, n.Port)
	auth := smtp.PlainAuth("", n.User, n.Password, n.Host)

	done := make(chan error, 1)
	go func() {
		done <- sendMail(addr, auth, n.From, []string{email}, msg)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
