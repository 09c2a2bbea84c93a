// Package query serves filtered, paginated views over persisted audit
// records for listing and investigative search.
package query

import (
	"context"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"

	"ledgerline.io/audittrail/ent"
	"ledgerline.io/audittrail/ent/auditrecord"
	"ledgerline.io/audittrail/ent/predicate"
	"ledgerline.io/audittrail/internal/audit"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
)

const (
	// DefaultLimit applies when a filter does not name a page size.
	DefaultLimit = 50
	// MaxLimit caps a single page.
	MaxLimit = 500
)

// Filter describes one audit record search. All fields are optional and
// independently combinable; the zero Filter matches everything.
type Filter struct {
	ActorID     string
	Actions     []string
	EntityTypes []string
	EntityID    string
	WorkspaceID string

	// Inclusive timestamp bounds.
	Start *time.Time
	End   *time.Time

	// Search matches case-insensitively against metadata content, actor
	// email and the human-readable action label.
	Search string

	SecurityOnly  bool
	CriticalOnly  bool
	ExcludeSystem bool

	// OrderAsc flips the default timestamp-descending ordering.
	OrderAsc bool

	Limit  int
	Offset int
}

// TransitionFilter finds records whose captured diff moved a field,
// optionally constrained to a specific old and/or new value.
type TransitionFilter struct {
	Field    string
	OldValue *string
	NewValue *string

	WorkspaceID string
	EntityID    string

	Limit  int
	Offset int
}

// Selector runs audit searches against Ent.
type Selector struct {
	client   *ent.Client
	critical map[audit.Action]struct{}
}

// NewSelector creates a Selector. extraCritical extends the built-in
// critical action set for critical-only searches.
func NewSelector(client *ent.Client, extraCritical []string) *Selector {
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
	return &Selector{client: client, critical: critical}
}

// Records returns the matching records, timestamp-descending unless the
// filter says otherwise. Unmatched filters yield an empty result, never an
// error; structurally invalid input fails with the invalid-query error.
func (s *Selector) Records(ctx context.Context, f Filter) ([]*audit.Record, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	q := s.client.AuditRecord.Query().Where(s.predicates(f)...)

	if f.OrderAsc {
		q = q.Order(ent.Asc(auditrecord.FieldCreatedAt))
	} else {
		q = q.Order(ent.Desc(auditrecord.FieldCreatedAt))
	}

	rows, err := q.Limit(pageLimit(f.Limit)).Offset(f.Offset).All(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistencef(err, "search audit records")
	}

	records := make([]*audit.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, audit.FromEnt(row))
	}
	return records, nil
}

// Count returns how many records match the filter, ignoring pagination.
func (s *Selector) Count(ctx context.Context, f Filter) (int, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}
	n, err := s.client.AuditRecord.Query().Where(s.predicates(f)...).Count(ctx)
	if err != nil {
		return 0, apperrors.ErrPersistencef(err, "count audit records")
	}
	return n, nil
}

// Transitions returns records whose diff changed f.Field, newest first. The
// database narrows candidates by metadata content; the structured diff is
// verified here because JSON text matching alone cannot distinguish the
// field name from an unrelated value.
func (s *Selector) Transitions(ctx context.Context, f TransitionFilter) ([]*audit.Record, error) {
	if f.Field == "" {
		return nil, apperrors.ErrInvalidQueryf("field", "transition field is required")
	}
	if f.Limit < 0 || f.Offset < 0 {
		return nil, apperrors.ErrInvalidQueryf("limit", "pagination values must not be negative")
	}

	preds := []predicate.AuditRecord{metadataTextContains(f.Field)}
	if f.WorkspaceID != "" {
		preds = append(preds, auditrecord.WorkspaceIDEQ(f.WorkspaceID))
	}
	if f.EntityID != "" {
		preds = append(preds, auditrecord.TargetEntityIDEQ(f.EntityID))
	}

	rows, err := s.client.AuditRecord.Query().
		Where(preds...).
		Order(ent.Desc(auditrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistencef(err, "search field transitions")
	}

	limit := pageLimit(f.Limit)
	skipped := 0
	records := make([]*audit.Record, 0, limit)
	for _, row := range rows {
		if !matchesTransition(row.Metadata, f) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		records = append(records, audit.FromEnt(row))
		if len(records) == limit {
			break
		}
	}
	return records, nil
}

func (f Filter) validate() error {
	if f.Limit < 0 || f.Offset < 0 {
		return apperrors.ErrInvalidQueryf("limit", "pagination values must not be negative")
	}
	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		return apperrors.ErrInvalidQueryf("start", "time range start is after its end")
	}
	for _, raw := range f.Actions {
		if !audit.Action(raw).Valid() {
			return apperrors.ErrInvalidQueryf("action_types", "unknown action type "+raw)
		}
	}
	return nil
}

func (s *Selector) predicates(f Filter) []predicate.AuditRecord {
	var preds []predicate.AuditRecord

	if f.ActorID != "" {
		preds = append(preds, auditrecord.ActorIDEQ(f.ActorID))
	}
	if len(f.Actions) > 0 {
		preds = append(preds, auditrecord.ActionTypeIn(f.Actions...))
	}
	if len(f.EntityTypes) > 0 {
		preds = append(preds, auditrecord.TargetEntityTypeIn(f.EntityTypes...))
	}
	if f.EntityID != "" {
		preds = append(preds, auditrecord.TargetEntityIDEQ(f.EntityID))
	}
	if f.WorkspaceID != "" {
		preds = append(preds, auditrecord.WorkspaceIDEQ(f.WorkspaceID))
	}
	if f.Start != nil {
		preds = append(preds, auditrecord.CreatedAtGTE(*f.Start))
	}
	if f.End != nil {
		preds = append(preds, auditrecord.CreatedAtLTE(*f.End))
	}
	if f.SecurityOnly {
		preds = append(preds, auditrecord.ActionTypeIn(actionStrings(audit.SecurityActions())...))
	}
	if f.CriticalOnly {
		critical := make([]audit.Action, 0, len(s.critical))
		for a := range s.critical {
			critical = append(critical, a)
		}
		preds = append(preds, auditrecord.ActionTypeIn(actionStrings(critical)...))
	}
	if f.ExcludeSystem {
		preds = append(preds, auditrecord.ActorIDNotNil(), auditrecord.ActorIDNEQ(""))
	}
	if f.Search != "" {
		preds = append(preds, s.searchPredicate(f.Search))
	}
	return preds
}

// searchPredicate matches the term against metadata text and actor email in
// SQL, and against action labels resolved here since labels only exist in
// the catalog, not in the database.
func (s *Selector) searchPredicate(term string) predicate.AuditRecord {
	parts := []predicate.AuditRecord{
		metadataTextContains(term),
		auditrecord.ActorEmailContainsFold(term),
	}
	if labelled := actionsWithLabel(term); len(labelled) > 0 {
		parts = append(parts, auditrecord.ActionTypeIn(labelled...))
	}
	return auditrecord.Or(parts...)
}

// metadataTextContains does a case-insensitive substring match over the
// serialized metadata column.
func metadataTextContains(term string) predicate.AuditRecord {
	return predicate.AuditRecord(func(sel *sql.Selector) {
		sel.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("CAST(").
				Ident(sel.C(auditrecord.FieldMetadata)).
				WriteString(" AS TEXT) ILIKE ").
				Arg("%" + escapeLike(term) + "%")
		}))
	})
}

// escapeLike neutralizes LIKE wildcards in user-supplied search terms.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

func actionsWithLabel(term string) []string {
	lowered := strings.ToLower(term)
	var matched []string
	for _, a := range audit.AllActions() {
		if strings.Contains(strings.ToLower(a.Label()), lowered) {
			matched = append(matched, a.String())
		}
	}
	return matched
}

func actionStrings(actions []audit.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.String())
	}
	return out
}

func pageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// matchesTransition verifies the structured changed_fields diff against the
// transition constraints. Metadata read back from the database arrives as
// generic JSON values.
func matchesTransition(metadata map[string]any, f TransitionFilter) bool {
	raw, ok := metadata["changed_fields"]
	if !ok {
		return false
	}
	changes, ok := raw.([]any)
	if !ok {
		return false
	}
	for _, c := range changes {
		change, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if name, _ := change["field"].(string); name != f.Field {
			continue
		}
		if f.OldValue != nil && !valueEquals(change["old_value"], *f.OldValue) {
			continue
		}
		if f.NewValue != nil && !valueEquals(change["new_value"], *f.NewValue) {
			continue
		}
		return true
	}
	return false
}

func valueEquals(v any, want string) bool {
	s, ok := v.(string)
	return ok && s == want
}
