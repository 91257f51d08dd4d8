package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/cmakedbg/cli"
	"github.com/ardnew/cmakedbg/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		log.Error("cmakedbg failed", slog.Any("error", err))
		os.Exit(1)
	}
}
