package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/francisco/gridiron-sim/pkg/logging"
)

// runContext stamps cmd's context with a fresh run ID, the same way the
// teacher's HTTP middleware stamped an incoming request with one - every
// log line this invocation emits, all the way down through the Game,
// Schedule, Season, and Playoff engines, carries it.
func runContext(cmd *cobra.Command) context.Context {
	return logging.WithRunID(cmd.Context(), uuid.NewString())
}
