package audit

import (
	"context"
	"time"

	"ledgerline.io/audittrail/ent"
	"ledgerline.io/audittrail/ent/auditrecord"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
)

// Store persists audit records through Ent. Appends and batch deletes are
// safe under concurrent callers; PostgreSQL row semantics provide the
// necessary isolation per record.
type Store struct {
	client  *ent.Client
	timeout time.Duration
}

// NewStore creates a Store. appendTimeout bounds a single record write;
// zero means no bound.
func NewStore(client *ent.Client, appendTimeout time.Duration) *Store {
	return &Store{client: client, timeout: appendTimeout}
}

// Append durably writes one record. Failures wrap ErrPersistence.
func (s *Store) Append(ctx context.Context, rec *Record) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	create := s.client.AuditRecord.Create().
		SetID(rec.ID).
		SetActionType(string(rec.Action)).
		SetCreatedAt(rec.CreatedAt)

	if !rec.Actor.IsZero() {
		create = create.SetActorID(rec.Actor.ID).SetActorEmail(rec.Actor.Email)
	}
	if !rec.Target.IsZero() {
		create = create.
			SetTargetEntityType(rec.Target.Type).
			SetTargetEntityID(rec.Target.ID)
	}
	if rec.OrganizationID != "" {
		create = create.SetOrganizationID(rec.OrganizationID)
	}
	if rec.WorkspaceID != "" {
		create = create.SetWorkspaceID(rec.WorkspaceID)
	}
	if rec.Metadata != nil {
		create = create.SetMetadata(rec.Metadata)
	}

	if _, err := create.Save(ctx); err != nil {
		return apperrors.ErrPersistencef(err, "append audit record %s", rec.ID)
	}
	return nil
}

// Get fetches one record by id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row, err := s.client.AuditRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrRecordNotFoundf(id)
		}
		return nil, apperrors.ErrPersistencef(err, "get audit record %s", id)
	}
	return FromEnt(row), nil
}

// DeleteBatch removes the given ids and returns how many rows were
// actually deleted. Already-deleted ids are a no-op, so overlapping calls
// are safe.
func (s *Store) DeleteBatch(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := s.client.AuditRecord.Delete().
		Where(auditrecord.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, apperrors.ErrPersistencef(err, "delete audit batch of %d", len(ids))
	}
	return n, nil
}

// ExpiredIDs returns up to limit record ids created before the cutoff,
// optionally narrowed to a set of action types. Results are oldest-first so
// batched deletion drains the backlog in order.
func (s *Store) ExpiredIDs(ctx context.Context, cutoff time.Time, actions []string, limit int) ([]string, error) {
	q := s.client.AuditRecord.Query().
		Where(auditrecord.CreatedAtLT(cutoff))
	if len(actions) > 0 {
		q = q.Where(auditrecord.ActionTypeIn(actions...))
	}
	ids, err := q.
		Order(ent.Asc(auditrecord.FieldCreatedAt)).
		Limit(limit).
		IDs(ctx)
	if err != nil {
		return nil, apperrors.ErrPersistencef(err, "query expired audit records")
	}
	return ids, nil
}

// CountExpired counts records created before the cutoff, optionally
// narrowed to a set of action types. Used for dry-run previews.
func (s *Store) CountExpired(ctx context.Context, cutoff time.Time, actions []string) (int, error) {
	q := s.client.AuditRecord.Query().
		Where(auditrecord.CreatedAtLT(cutoff))
	if len(actions) > 0 {
		q = q.Where(auditrecord.ActionTypeIn(actions...))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, apperrors.ErrPersistencef(err, "count expired audit records")
	}
	return n, nil
}

// FromEnt converts a persisted row back into the domain record.
func FromEnt(row *ent.AuditRecord) *Record {
	rec := &Record{
		ID:             row.ID,
		Action:         Action(row.ActionType),
		Actor:          Actor{ID: row.ActorID, Email: row.ActorEmail},
		OrganizationID: row.OrganizationID,
		WorkspaceID:    row.WorkspaceID,
		Metadata:       row.Metadata,
		CreatedAt:      row.CreatedAt,
	}
	if row.TargetEntityType != "" || row.TargetEntityID != "" {
		rec.Target = EntityRef{Type: row.TargetEntityType, ID: row.TargetEntityID}
	}
	return rec
}
