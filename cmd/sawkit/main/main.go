package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/sawkit/cmd/sawkit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := sawkit.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	os.Exit(sawkit.HandleError(rootCmd, err, os.Stderr))
}
