// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-path-validator/src/cli"
	"github.com/H0llyW00dzZ/x509-path-validator/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-path-validator/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// exitCode maps an Execute error to the process exit status: 2 when a
// certificate failed validation, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrPathInvalid), errors.Is(err, cli.ErrPeriodInvalid):
		return 2
	default:
		return 1
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("x509-path-validator: %v", err)
			stop()
			os.Exit(exitCode(err))
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}
}
