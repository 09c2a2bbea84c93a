package facade

import (
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// EntryLogger emits audit events for financial entry workflow operations.
type EntryLogger struct {
	base
}

// Name identifies this logger to the factory.
func (l *EntryLogger) Name() string { return "entry_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints.
func (l *EntryLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *EntryLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

// Supported returns the action keywords this logger accepts.
func (l *EntryLogger) Supported() map[string]audit.Action {
	return map[string]audit.Action{
		"submit":  audit.ActionEntrySubmitted,
		"review":  audit.ActionEntryReviewed,
		"approve": audit.ActionEntryApproved,
		"reject":  audit.ActionEntryRejected,
		"flag":    audit.ActionEntryFlagged,
		"unflag":  audit.ActionEntryUnflagged,
		"update":  audit.ActionEntryUpdated,
		"delete":  audit.ActionEntryDeleted,
	}
}

// Log records one entry action. Unsupported keywords are warned and
// skipped; a missing actor propagates the invalid-actor error.
func (l *EntryLogger) Log(actor audit.Actor, entry audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("entry_logger.log", func() error {
		if err := l.validateActor(actor, "log_entry_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(entry) {
			metadata[k] = v
		}

		switch keyword {
		case "approve":
			for k, v := range UserActionMetadata(actor, "approver", "approval_timestamp") {
				metadata[k] = v
			}
		case "reject":
			for k, v := range UserActionMetadata(actor, "rejecter", "rejection_timestamp") {
				metadata[k] = v
			}
		case "flag", "unflag":
			for k, v := range UserActionMetadata(actor, "flagger", "flag_timestamp") {
				metadata[k] = v
			}
		}

		l.emit(action, actor, entry, metadata)
		return nil
	})
}

// LogWorkflowAction records a workflow transition (submit/approve/reject)
// with stage context and review notes.
func (l *EntryLogger) LogWorkflowAction(actor audit.Actor, entry audit.Entity, keyword string, req *RequestInfo, stage, notes, reason string, extra map[string]any) error {
	return dispatch.Protect("entry_logger.log_workflow_action", func() error {
		if err := l.validateActor(actor, "log_entry_workflow_action"); err != nil {
			return err
		}

		workflowActions := map[string]audit.Action{
			"submit":  audit.ActionEntrySubmitted,
			"review":  audit.ActionEntryReviewed,
			"approve": audit.ActionEntryApproved,
			"reject":  audit.ActionEntryRejected,
		}
		action, ok := resolveAction(l.Name(), keyword, workflowActions)
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(entry) {
			metadata[k] = v
		}
		for k, v := range WorkflowMetadata(actor, keyword, stage, notes, reason) {
			metadata[k] = v
		}

		l.emit(action, actor, entry, metadata)
		return nil
	})
}
