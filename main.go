package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/denv/cli"
	"github.com/ardnew/denv/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		// slog renders the error through LogValue() when implemented.
		log.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
