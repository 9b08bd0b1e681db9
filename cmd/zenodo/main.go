package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/silebat/zenodo-go/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}
