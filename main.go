// Package main is the entry point for the textconv server and CLI.
package main

import (
	"context"
	"log"
	"os"

	"textconv/src/app/cli"
	"textconv/src/core/domain"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", domain.UserMessage(err))
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCommand().ExecuteContext(context.Background())
}
