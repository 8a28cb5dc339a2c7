package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kristiankunc/generate-gitignore/internal/cli"
	"github.com/kristiankunc/generate-gitignore/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewCommand(os.Args[1:], os.Environ()).ExecuteContext(ctx)
	stop()

	code := cli.ExitCode(err)
	switch code {
	case cli.ExitOK, cli.ExitAborted:
	case cli.ExitConfig:
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	default:
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
