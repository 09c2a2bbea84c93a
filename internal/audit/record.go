package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Actor is the acting principal of an audit event. A zero Actor means the
// event is system-initiated.
type Actor struct {
	ID    string
	Email string
}

// IsZero reports whether no actor is attached.
func (a Actor) IsZero() bool { return a.ID == "" && a.Email == "" }

// EntityRef is a polymorphic reference to a business entity. Either both
// fields are set or both are empty.
type EntityRef struct {
	Type string
	ID   string
}

// IsZero reports whether the reference is absent.
func (r EntityRef) IsZero() bool { return r.Type == "" && r.ID == "" }

// Entity is the minimal read-only view the audit engine needs of any
// business entity: a type discriminator and a primary identifier.
type Entity interface {
	EntityType() string
	EntityID() string
}

// Ref builds an EntityRef from an Entity. A nil entity yields a zero ref.
func Ref(e Entity) EntityRef {
	if e == nil {
		return EntityRef{}
	}
	return EntityRef{Type: e.EntityType(), ID: e.EntityID()}
}

// Record is one immutable audit trail entry.
type Record struct {
	ID             string
	Action         Action
	Actor          Actor
	Target         EntityRef
	OrganizationID string
	WorkspaceID    string
	Metadata       map[string]any
	CreatedAt      time.Time
}

// NewRecord assembles a record with a fresh identifier and timestamp.
// Scope fields are filled later by the context resolver.
func NewRecord(action Action, actor Actor, target EntityRef, metadata map[string]any) *Record {
	return &Record{
		ID:        generateRecordID(),
		Action:    action,
		Actor:     actor,
		Target:    target,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
}

// generateRecordID returns a time-ordered unique id. UUIDv7 keeps insert
// order roughly matching id order; falls back to v4 if the clock misbehaves.
func generateRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("audit-%s", uuid.New().String())
	}
	return fmt.Sprintf("audit-%s", id.String())
}
