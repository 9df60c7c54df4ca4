package domain

import (
	"context"
	"time"
)

// AuditFields records provenance for a writable entity. Creator fields are
// stamped once when the entity is first persisted; modifier fields change on
// every later write and stay nil until the first modification. Callers never
// set these directly: the audited repository decorator stamps them at save
// time.
type AuditFields struct {
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	LastModifiedBy *string    `json:"last_modified_by,omitempty"`
	LastModifiedAt *time.Time `json:"last_modified_at,omitempty"`
}

// Auditable is implemented by entities that carry audit fields.
type Auditable interface {
	Audit() *AuditFields
}

// CurrentPrincipal reports the identity of the acting user for a unit of
// work. Implementations resolve the id from an external identity or session
// source; the core only consumes the reported id.
type CurrentPrincipal interface {
	ID(ctx context.Context) (string, error)
}
