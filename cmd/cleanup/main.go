// Package main runs audit retention cleanup from the command line.
//
// By default every retention category is processed with its configured
// window. A dry run reports what would be deleted without touching rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/retention"
	"ledgerline.io/audittrail/internal/config"
	"ledgerline.io/audittrail/internal/infrastructure"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dryRun := flag.Bool("dry-run", false, "count expired records without deleting")
	days := flag.Int("days", 0, "override every category retention window, in days")
	batchSize := flag.Int("batch-size", 0, "delete batch size (default from config)")
	actionType := flag.String("action-type", "", "narrow the run to one action type")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	store := audit.NewStore(db.EntClient, cfg.Audit.AppendTimeout)
	policy := retention.NewPolicy(cfg.Audit.Retention, cfg.Audit.CriticalActions)
	engine := retention.NewEngine(store, policy, cfg.Audit.CleanupBatchSize)

	summary, err := engine.Run(ctx, retention.Options{
		DryRun:       *dryRun,
		BatchSize:    *batchSize,
		ActionType:   *actionType,
		OverrideDays: *days,
	})
	if err != nil {
		return fmt.Errorf("retention run: %w", err)
	}

	verb := "deleted"
	if summary.DryRun {
		verb = "would delete"
	}
	fmt.Printf("%s %d records (authentication=%d critical=%d default=%d) in %s\n",
		verb,
		summary.Total,
		summary.PerCategory[retention.CategoryAuthentication],
		summary.PerCategory[retention.CategoryCritical],
		summary.PerCategory[retention.CategoryDefault],
		summary.Duration,
	)
	return nil
}
