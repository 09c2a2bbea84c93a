package facade

import (
	"fmt"

	"ledgerline.io/audittrail/internal/audit"
)

// Metadata builders. All builders are pure functions over their inputs;
// none of them touch the store.

// Described entities expose key descriptive fields for richer entity
// metadata. Optional: entities without it get identity-only metadata.
type Described interface {
	AuditDescription() map[string]any
}

// EntityMetadata builds identity metadata for an entity: "<type>_id" plus
// any descriptive fields the entity exposes.
func EntityMetadata(entity audit.Entity) map[string]any {
	if entity == nil {
		return map[string]any{}
	}
	metadata := map[string]any{
		fmt.Sprintf("%s_id", entity.EntityType()): entity.EntityID(),
	}
	if d, ok := entity.(Described); ok {
		for k, v := range d.AuditDescription() {
			metadata[k] = v
		}
	}
	return metadata
}

// UserActionMetadata builds actor identity metadata under a verb-specific
// role prefix ("approver", "submitter", "exporter"...), with a matching
// timestamp key when given.
func UserActionMetadata(actor audit.Actor, role, timestampKey string) map[string]any {
	metadata := map[string]any{
		role + "_id":    actor.ID,
		role + "_email": actor.Email,
	}
	if timestampKey != "" {
		metadata[timestampKey] = nowISO()
	}
	return metadata
}

// WorkflowMetadata builds workflow-stage metadata for submit/review
// decisions.
func WorkflowMetadata(actor audit.Actor, keyword, stage, notes, reason string) map[string]any {
	metadata := map[string]any{"workflow_action": true}
	if stage != "" {
		metadata["workflow_stage"] = stage
		metadata["stage_timestamp"] = nowISO()
	}

	switch keyword {
	case "submit", "resubmit":
		metadata["submitter_id"] = actor.ID
		metadata["submitter_email"] = actor.Email
		metadata["submission_timestamp"] = nowISO()
		metadata["submission_notes"] = notes
	case "review", "approve", "reject", "return":
		metadata["reviewer_id"] = actor.ID
		metadata["reviewer_email"] = actor.Email
		metadata["review_timestamp"] = nowISO()
		metadata["review_notes"] = notes
		metadata["review_decision"] = keyword
	case "withdraw":
		metadata["withdrawer_id"] = actor.ID
		metadata["withdrawer_email"] = actor.Email
		metadata["withdrawal_timestamp"] = nowISO()
		metadata["withdrawal_reason"] = reason
	}
	return metadata
}

// FileInfo describes a file for file-operation metadata.
type FileInfo struct {
	Name        string
	Size        int64
	ContentType string
}

// FileMetadata builds file-operation metadata with operation-specific
// extras.
func FileMetadata(file FileInfo, operation, category string, extra map[string]any) map[string]any {
	metadata := map[string]any{
		"file_name":     orUnknown(file.Name),
		"file_size":     file.Size,
		"file_type":     orUnknown(file.ContentType),
		"operation":     operation,
		"file_category": category,
	}

	switch operation {
	case "upload":
		metadata["upload_source"] = stringExtra(extra, "source", "web_interface")
		metadata["upload_purpose"] = stringExtra(extra, "purpose", "")
	case "download":
		metadata["download_reason"] = stringExtra(extra, "reason", "")
	}
	return metadata
}

func stringExtra(extra map[string]any, key, fallback string) string {
	if extra != nil {
		if v, ok := extra[key].(string); ok {
			return v
		}
	}
	return fallback
}
