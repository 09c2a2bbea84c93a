// Package retention applies time-based cleanup policy to stored audit
// records. Records age out by action category: authentication events expire
// quickly, critical compliance events are kept for years, everything else
// uses the default window.
package retention

import (
	"time"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/config"
)

// Category names an action's retention class.
type Category string

const (
	CategoryAuthentication Category = "authentication"
	CategoryCritical       Category = "critical"
	CategoryDefault        Category = "default"
)

// Categories lists all retention classes in evaluation order.
func Categories() []Category {
	return []Category{CategoryAuthentication, CategoryCritical, CategoryDefault}
}

// Policy maps actions to categories and categories to retention windows.
type Policy struct {
	windows  map[Category]int
	critical map[audit.Action]struct{}
}

// NewPolicy builds a Policy from configured windows. extraCritical extends
// the built-in critical action set.
func NewPolicy(cfg config.RetentionConfig, extraCritical []string) *Policy {
	critical := make(map[audit.Action]struct{})
	for _, a := range audit.AllActions() {
		if a.IsCritical() {
			critical[a] = struct{}{}
		}
	}
	for _, raw := range extraCritical {
		if a := audit.Action(raw); a.Valid() {
			critical[a] = struct{}{}
		}
	}
	return &Policy{
		windows: map[Category]int{
			CategoryAuthentication: cfg.AuthenticationDays,
			CategoryCritical:       cfg.CriticalDays,
			CategoryDefault:        cfg.DefaultDays,
		},
		critical: critical,
	}
}

// CategoryFor classifies one action. Critical membership beats the
// authentication class so a configured critical auth action keeps the long
// window.
func (p *Policy) CategoryFor(action audit.Action) Category {
	if _, ok := p.critical[action]; ok {
		return CategoryCritical
	}
	if action.IsAuthentication() {
		return CategoryAuthentication
	}
	return CategoryDefault
}

// Days returns the retention window for a category.
func (p *Policy) Days(c Category) int { return p.windows[c] }

// Cutoff computes the expiry boundary for a category as of now. overrideDays
// replaces the configured window when positive.
func (p *Policy) Cutoff(c Category, now time.Time, overrideDays int) time.Time {
	days := p.windows[c]
	if overrideDays > 0 {
		days = overrideDays
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// ActionsIn returns the catalog actions belonging to a category.
func (p *Policy) ActionsIn(c Category) []string {
	var actions []string
	for _, a := range audit.AllActions() {
		if p.CategoryFor(a) == c {
			actions = append(actions, a.String())
		}
	}
	return actions
}
