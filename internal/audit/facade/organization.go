package facade

import (
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// OrganizationLogger emits audit events for organization lifecycle and
// membership operations.
type OrganizationLogger struct {
	base
}

func (l *OrganizationLogger) Name() string { return "organization_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints.
func (l *OrganizationLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *OrganizationLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

func (l *OrganizationLogger) Supported() map[string]audit.Action {
	return map[string]audit.Action{
		"create":             audit.ActionOrganizationCreated,
		"update":             audit.ActionOrganizationUpdated,
		"delete":             audit.ActionOrganizationDeleted,
		"status_change":      audit.ActionOrganizationStatusChanged,
		"member_add":         audit.ActionOrganizationMemberAdded,
		"member_remove":      audit.ActionOrganizationMemberRemoved,
		"member_role_change": audit.ActionOrganizationMemberRoleChanged,
	}
}

// Log records one organization action.
func (l *OrganizationLogger) Log(actor audit.Actor, org audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("organization_logger.log", func() error {
		if err := l.validateActor(actor, "log_organization_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(org) {
			metadata[k] = v
		}

		l.emit(action, actor, org, metadata)
		return nil
	})
}

// LogMemberAction records membership changes with the affected member's
// identity alongside the acting principal's.
func (l *OrganizationLogger) LogMemberAction(actor audit.Actor, org audit.Entity, member audit.Actor, keyword, role string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("organization_logger.log_member_action", func() error {
		if err := l.validateActor(actor, "log_organization_member_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(org) {
			metadata[k] = v
		}
		metadata["member_id"] = member.ID
		metadata["member_email"] = member.Email
		if role != "" {
			metadata["member_role"] = role
		}

		l.emit(action, actor, org, metadata)
		return nil
	})
}
