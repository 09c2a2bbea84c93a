package facade

import (
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// TeamLogger emits audit events for team lifecycle and membership
// operations.
type TeamLogger struct {
	base
}

func (l *TeamLogger) Name() string { return "team_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints.
func (l *TeamLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *TeamLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

func (l *TeamLogger) Supported() map[string]audit.Action {
	return map[string]audit.Action{
		"create":             audit.ActionTeamCreated,
		"update":             audit.ActionTeamUpdated,
		"delete":             audit.ActionTeamDeleted,
		"member_add":         audit.ActionTeamMemberAdded,
		"member_remove":      audit.ActionTeamMemberRemoved,
		"member_role_change": audit.ActionTeamMemberRoleChanged,
	}
}

// Log records one team action.
func (l *TeamLogger) Log(actor audit.Actor, team audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("team_logger.log", func() error {
		if err := l.validateActor(actor, "log_team_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(team) {
			metadata[k] = v
		}

		l.emit(action, actor, team, metadata)
		return nil
	})
}

// LogMemberAction records team membership changes. For role changes, pass
// the previous and new role through extra ("old_role"/"new_role").
func (l *TeamLogger) LogMemberAction(actor audit.Actor, team audit.Entity, member audit.Actor, keyword, role string, req *RequestInfo, extra map[string]any) error {
	return dispatch.Protect("team_logger.log_member_action", func() error {
		if err := l.validateActor(actor, "log_team_member_action"); err != nil {
			return err
		}
		action, ok := resolveAction(l.Name(), keyword, l.Supported())
		if !ok {
			return nil
		}

		metadata := baseMetadata(keyword, req, extra)
		for k, v := range EntityMetadata(team) {
			metadata[k] = v
		}
		metadata["member_id"] = member.ID
		metadata["member_email"] = member.Email
		if role != "" {
			metadata["member_role"] = role
		}

		l.emit(action, actor, team, metadata)
		return nil
	})
}
