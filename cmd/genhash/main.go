package main

import (
	"flag"
	"fmt"
	"os"

	"dye-kulture.backend/pkg/crypto"
)

// genhash prints a bcrypt hash for seeding user rows by hand.
func main() {
	cost := flag.Int("cost", crypto.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: genhash [-cost N] <password>")
		os.Exit(2)
	}

	hash, err := crypto.HashPasswordWithCost(flag.Arg(0), *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
