package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slot-lab/infrastructure/platform"
	"slot-lab/repositories"
	"slot-lab/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the daemon lifecycle, and centralizes
// error reporting, so that 'defer' statements (like database cleanup) always
// execute before the program exits.
//
// The command shell dispatches key and slot operations through the service
// layer as a library; this daemon's own job is the part that must outlive
// any command: sweeping due channel deletions.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Platform boundary & deletion sweeper
	adapter := platform.NewClient(config.PlatformAPIURL, config.PlatformAPIToken)
	deletions := repositories.NewDeletionRepository(db, log)
	sweeper := workers.NewDeletionSweeper(deletions, adapter, log, config.SweepInterval)

	sup := workers.NewSupervisor(log)
	sup.Add(sweeper)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Deletion sweeper running", "interval", config.SweepInterval)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
