package retention

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// Store is the slice of the audit store the engine needs.
type Store interface {
	ExpiredIDs(ctx context.Context, cutoff time.Time, actions []string, limit int) ([]string, error)
	CountExpired(ctx context.Context, cutoff time.Time, actions []string) (int, error)
	DeleteBatch(ctx context.Context, ids []string) (int, error)
}

// Options controls one cleanup run.
type Options struct {
	// DryRun counts expired records without deleting anything.
	DryRun bool

	// BatchSize bounds one delete round; zero uses the engine default.
	BatchSize int

	// ActionType narrows the run to a single action type.
	ActionType string

	// OverrideDays replaces every category window when positive.
	OverrideDays int
}

// Summary reports one cleanup run.
type Summary struct {
	PerCategory map[Category]int `json:"per_category"`
	Total       int              `json:"total"`
	DryRun      bool             `json:"dry_run"`
	Duration    time.Duration    `json:"duration"`
}

// Engine runs retention cleanup over the store.
type Engine struct {
	store            Store
	policy           *Policy
	defaultBatchSize int
}

// NewEngine creates an Engine. defaultBatchSize applies when a run does not
// name its own.
func NewEngine(store Store, policy *Policy, defaultBatchSize int) *Engine {
	if defaultBatchSize <= 0 {
		defaultBatchSize = 1000
	}
	return &Engine{store: store, policy: policy, defaultBatchSize: defaultBatchSize}
}

// Run expires records per category policy and returns the per-category and
// total counts. Dry runs report the same counts without deleting.
func (e *Engine) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = e.defaultBatchSize
	}

	start := time.Now()
	now := start.UTC()
	summary := &Summary{
		PerCategory: make(map[Category]int),
		DryRun:      opts.DryRun,
	}

	for _, category := range Categories() {
		actions := e.categoryActions(category, opts.ActionType)
		if len(actions) == 0 {
			continue
		}
		cutoff := e.policy.Cutoff(category, now, opts.OverrideDays)

		n, err := e.cleanCategory(ctx, cutoff, actions, batchSize, opts.DryRun)
		if err != nil {
			return nil, apperrors.ErrCleanupFailedf(err, string(category))
		}
		summary.PerCategory[category] = n
		summary.Total += n
	}

	summary.Duration = time.Since(start)
	logger.Info("audit retention run finished",
		zap.Bool("dry_run", summary.DryRun),
		zap.Int("total", summary.Total),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// categoryActions resolves which action types a category contributes to this
// run. A single-action run touches only that action's own category.
func (e *Engine) categoryActions(category Category, only string) []string {
	if only != "" {
		if e.policy.CategoryFor(audit.Action(only)) != category {
			return nil
		}
		return []string{only}
	}
	return e.policy.ActionsIn(category)
}

func (e *Engine) cleanCategory(ctx context.Context, cutoff time.Time, actions []string, batchSize int, dryRun bool) (int, error) {
	if dryRun {
		return e.store.CountExpired(ctx, cutoff, actions)
	}

	deleted := 0
	for {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		ids, err := e.store.ExpiredIDs(ctx, cutoff, actions, batchSize)
		if err != nil {
			return deleted, err
		}
		if len(ids) == 0 {
			return deleted, nil
		}
		n, err := e.store.DeleteBatch(ctx, ids)
		if err != nil {
			return deleted, err
		}
		deleted += n
		if len(ids) < batchSize {
			return deleted, nil
		}
	}
}

func validateOptions(opts Options) error {
	if opts.BatchSize < 0 {
		return apperrors.ErrInvalidBatchSizef(opts.BatchSize)
	}
	if opts.OverrideDays < 0 {
		return apperrors.ErrInvalidRetentionf(opts.OverrideDays)
	}
	if opts.ActionType != "" && !audit.Action(opts.ActionType).Valid() {
		return apperrors.ErrInvalidActionTypef(opts.ActionType)
	}
	return nil
}
