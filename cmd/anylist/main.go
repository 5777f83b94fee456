// Package main is the entry point for the anylist CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"anylist/internal/cli"
	"anylist/internal/client"
	"anylist/internal/commands"
	"anylist/internal/config"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create client factory
	factory := func(ctx context.Context, cfg *config.Config) (*client.Client, error) {
		if !cfg.HasTokens() {
			return nil, errors.New("not logged in (run: anylist login)")
		}
		tokens, err := cfg.LoadTokens()
		if err != nil {
			return nil, err
		}
		return client.FromTokens(tokens)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
