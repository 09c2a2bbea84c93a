package facade

import (
	"fmt"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// SystemLogger emits audit events for permissions, bulk operations, data
// exports, file operations and operation failures.
type SystemLogger struct {
	base
	cfg Config
}

func (l *SystemLogger) Name() string { return "system_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints. System events often target
// relation-less entities, so this is the only way they gain tenant scope.
func (l *SystemLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *SystemLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

func (l *SystemLogger) Supported() map[string]audit.Action {
	return map[string]audit.Action{
		"permission_grant":  audit.ActionPermissionGranted,
		"permission_revoke": audit.ActionPermissionRevoked,
		"permission_change": audit.ActionPermissionChanged,
		"bulk_operation":    audit.ActionBulkOperation,
		"data_export":       audit.ActionDataExported,
		"file_upload":       audit.ActionFileUploaded,
		"file_download":     audit.ActionFileDownloaded,
		"file_delete":       audit.ActionFileDeleted,
		"access_denied":     audit.ActionAccessDenied,
		"operation_failure": audit.ActionOperationFailed,
	}
}

// Log records one generic system action.
func (l *SystemLogger) Log(actor audit.Actor, entity audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log", func() error {
		if err := l.validateActor(actor, "log_system_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(entity) {
			metadata[k] = v
		}

		l.emit(action, actor, entity, metadata)
		return nil
	})
}

// userEntity wraps a principal as a polymorphic audit target.
type userEntity struct{ id string }

func (u userEntity) EntityType() string { return "user" }
func (u userEntity) EntityID() string   { return u.id }

// LogPermissionChange records a permission grant, revoke or change against
// a target user.
func (l *SystemLogger) LogPermissionChange(actor, targetUser audit.Actor, permissionType, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log_permission_change", func() error {
		if err := l.validateActor(actor, "log_permission_change"); err != nil {
			return err
		}

		permissionActions := map[string]audit.Action{
			"grant":  audit.ActionPermissionGranted,
			"revoke": audit.ActionPermissionRevoked,
			"change": audit.ActionPermissionChanged,
		}
		action, ok := resolveAction(l.Name(), keyword, permissionActions)
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		metadata["permission_type"] = permissionType
		metadata["target_user_id"] = targetUser.ID
		metadata["target_user_email"] = targetUser.Email
		metadata["grantor_id"] = actor.ID
		metadata["grantor_email"] = actor.Email
		metadata["permission_timestamp"] = nowISO()

		switch keyword {
		case "grant":
			metadata["grant_reason"] = stringExtra(extra, "reason", "")
		case "revoke":
			metadata["revoke_reason"] = stringExtra(extra, "reason", "")
		case "change":
			metadata["change_reason"] = stringExtra(extra, "reason", "")
		}

		l.emit(action, actor, userEntity{id: targetUser.ID}, metadata)
		return nil
	})
}

// LogDataExport records a data export with its parameters.
func (l *SystemLogger) LogDataExport(actor audit.Actor, exportType string, recordCount int, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log_data_export", func() error {
		if err := l.validateActor(actor, "log_data_export"); err != nil {
			return err
		}

		metadata := baseMetadata("data_export", req, extra)
		metadata["export_type"] = exportType
		metadata["record_count"] = recordCount
		for k, v := range UserActionMetadata(actor, "exporter", "export_timestamp") {
			metadata[k] = v
		}

		l.emit(audit.ActionDataExported, actor, nil, metadata)
		return nil
	})
}

// LogBulkOperation records a bulk operation. At or below the configured
// threshold every affected entity's identity is recorded; above it, only
// the first sample-size identities plus the true total, bounding metadata
// size on very large operations.
func (l *SystemLogger) LogBulkOperation(actor audit.Actor, operationType string, affected []audit.Entity, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log_bulk_operation", func() error {
		if err := l.validateActor(actor, "log_bulk_operation"); err != nil {
			return err
		}

		metadata := baseMetadata("bulk_operation", req, extra)
		metadata["operation_type"] = operationType
		metadata["total_affected_count"] = len(affected)
		for k, v := range UserActionMetadata(actor, "operator", "operation_timestamp") {
			metadata[k] = v
		}

		if len(affected) > l.cfg.BulkThreshold {
			sample := affected[:l.cfg.BulkSampleSize]
			metadata["sampled_entities"] = entityIdentities(sample)
			metadata["sampling_note"] = fmt.Sprintf(
				"Showing first %d of %d entities", l.cfg.BulkSampleSize, len(affected))
		} else {
			metadata["affected_entities"] = entityIdentities(affected)
		}

		l.emit(audit.ActionBulkOperation, actor, nil, metadata)
		return nil
	})
}

// LogFileOperation records a file upload, download or delete.
func (l *SystemLogger) LogFileOperation(actor audit.Actor, target audit.Entity, file FileInfo, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log_file_operation", func() error {
		if err := l.validateActor(actor, "log_file_operation"); err != nil {
			return err
		}

		fileActions := map[string]audit.Action{
			"upload":   audit.ActionFileUploaded,
			"download": audit.ActionFileDownloaded,
			"delete":   audit.ActionFileDeleted,
		}
		action, ok := resolveAction(l.Name(), keyword, fileActions)
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range FileMetadata(file, keyword, stringExtra(extra, "file_category", "general"), extra) {
			metadata[k] = v
		}

		l.emit(action, actor, target, metadata)
		return nil
	})
}

// LogOperationFailure records a system failure. Actor is optional here:
// failures are frequently system-initiated.
func (l *SystemLogger) LogOperationFailure(actor audit.Actor, operation string, errorDetails map[string]any, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("system_logger.log_operation_failure", func() error {
		metadata := baseMetadata("operation_failure", req, extra)
		metadata["operation"] = operation
		metadata["failure_timestamp"] = nowISO()
		for k, v := range errorDetails {
			metadata[k] = v
		}

		if actor.IsZero() {
			metadata["user_id"] = "system"
		} else {
			metadata["user_id"] = actor.ID
			metadata["user_email"] = actor.Email
		}

		l.emit(audit.ActionOperationFailed, actor, nil, metadata)
		return nil
	})
}

func entityIdentities(entities []audit.Entity) []any {
	out := make([]any, len(entities))
	for i, e := range entities {
		out[i] = map[string]any{"id": e.EntityID(), "type": e.EntityType()}
	}
	return out
}
