package facade

import (
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// WorkspaceLogger emits audit events for workspace lifecycle, status and
// team-association operations.
type WorkspaceLogger struct {
	base
}

func (l *WorkspaceLogger) Name() string { return "workspace_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints.
func (l *WorkspaceLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *WorkspaceLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

func (l *WorkspaceLogger) Supported() map[string]audit.Action {
	return map[string]audit.Action{
		"create":                audit.ActionWorkspaceCreated,
		"update":                audit.ActionWorkspaceUpdated,
		"delete":                audit.ActionWorkspaceDeleted,
		"status_change":         audit.ActionWorkspaceStatusChanged,
		"archive":               audit.ActionWorkspaceArchived,
		"activate":              audit.ActionWorkspaceActivated,
		"close":                 audit.ActionWorkspaceClosed,
		"team_add":              audit.ActionWorkspaceTeamAdded,
		"team_remove":           audit.ActionWorkspaceTeamRemoved,
		"remittance_rate_update": audit.ActionWorkspaceTeamRemittanceRateUpdated,
	}
}

// Log records one workspace action. Status keywords (archive, activate,
// close) carry old/new status when supplied in extra.
func (l *WorkspaceLogger) Log(actor audit.Actor, workspace audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("workspace_logger.log", func() error {
		if err := l.validateActor(actor, "log_workspace_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(workspace) {
			metadata[k] = v
		}

		l.emit(action, actor, workspace, metadata)
		return nil
	})
}

// LogTeamAction records workspace-team association changes, carrying both
// the workspace and team identity.
func (l *WorkspaceLogger) LogTeamAction(actor audit.Actor, workspace audit.Entity, team audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("workspace_logger.log_team_action", func() error {
		if err := l.validateActor(actor, "log_workspace_team_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(workspace) {
			metadata[k] = v
		}
		for k, v := range EntityMetadata(team) {
			metadata[k] = v
		}

		l.emit(action, actor, workspace, metadata)
		return nil
	})
}
