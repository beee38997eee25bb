// Command entropy prints the Shannon entropy of a file's bytes.
//
// Usage:
//
//	entropy [flags] FILE
//
// FILE may be "-" to read standard input.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("entropy failed")
		stop()
		os.Exit(1)
	}
}
