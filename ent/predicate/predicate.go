// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditRecord is the predicate function for auditrecord builders.
type AuditRecord func(*sql.Selector)
