package main

import (
	"context"
	"errors"
	"fmt"
	"grid-route-client/internal/cli"
	"grid-route-client/internal/config"
	"grid-route-client/internal/domain"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes: 1 for any failure, 2 when the backend has no route, 130 on interrupt.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config.LoadDotEnv()

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	err := c.RootCommand().ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	switch {
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	case errors.Is(err, domain.ErrPathNotFound):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
