// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"ledgerline.io/audittrail/internal/api/handlers"
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/capture"
	"ledgerline.io/audittrail/internal/audit/dispatch"
	"ledgerline.io/audittrail/internal/audit/facade"
	"ledgerline.io/audittrail/internal/audit/query"
	"ledgerline.io/audittrail/internal/audit/retention"
	"ledgerline.io/audittrail/internal/config"
	"ledgerline.io/audittrail/internal/infrastructure"
	"ledgerline.io/audittrail/internal/jobs"
	"ledgerline.io/audittrail/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools

	// Audit engine surfaces for embedding callers.
	Store      *audit.Store
	Dispatcher *dispatch.Dispatcher
	Hooks      *capture.Hooks
	Registry   *capture.Registry
	Loggers    *facade.Loggers
	Selector   *query.Selector
	Retention  *retention.Engine
}

// Bootstrap initializes all dependencies with manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		DispatchPoolSize: cfg.Worker.DispatchPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	store := audit.NewStore(db.EntClient, cfg.Audit.AppendTimeout)
	policy := retention.NewPolicy(cfg.Audit.Retention, cfg.Audit.CriticalActions)
	engine := retention.NewEngine(store, policy, cfg.Audit.CleanupBatchSize)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewAuditWriteWorker(store))
	river.AddWorker(workers, jobs.NewAuditCleanupWorker(engine))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	// Retention cleanup runs on the configured interval and once on startup
	// so a long-stopped instance catches up immediately.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(cfg.Audit.CleanupInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.AuditCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	dispatcher := dispatch.New(store, jobs.NewRiverEnqueuer(db.RiverClient), pools, cfg.Audit.MaxMetadataSize)
	registry := capture.NewRegistry()
	hooks := capture.NewHooks(registry, dispatcher, cfg.Audit.SensitiveFields)
	loggers := facade.New(dispatcher, facade.Config{
		BulkThreshold:  cfg.Audit.BulkThreshold,
		BulkSampleSize: cfg.Audit.BulkSampleSize,
	})
	selector := query.NewSelector(db.EntClient, cfg.Audit.CriticalActions)

	server := handlers.NewServer(store, selector, engine)

	return &Application{
		Config:     cfg,
		Router:     newRouter(server),
		DB:         db,
		Pools:      pools,
		Store:      store,
		Dispatcher: dispatcher,
		Hooks:      hooks,
		Registry:   registry,
		Loggers:    loggers,
		Selector:   selector,
		Retention:  engine,
	}, nil
}
