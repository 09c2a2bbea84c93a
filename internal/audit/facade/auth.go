package facade

import (
	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
)

// AuthLogger emits authentication events. Failed logins are
// system-initiated: no actor exists yet, only the attempted identifier.
type AuthLogger struct {
	base
}

func (l *AuthLogger) Name() string { return "auth_logger" }

// WithScope returns a copy of the logger whose emissions carry explicit
// workspace and actor-membership hints.
func (l *AuthLogger) WithScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) *AuthLogger {
	c := *l
	c.base = l.base.withScope(workspace, membership)
	return &c
}

// LogLoginSuccess records a successful authentication.
func (l *AuthLogger) LogLoginSuccess(actor audit.Actor, req *RequestInfo) error {
	return dispatch.Protect("auth_logger.log_login_success", func() error {
		if err := l.validateActor(actor, "log_login_success"); err != nil {
			return err
		}
		metadata := baseMetadata("login_success", req, nil)
		metadata["authentication_method"] = "password"

		l.emit(audit.ActionLoginSuccess, actor, userEntity{id: actor.ID}, metadata)
		return nil
	})
}

// LogLoginFailed records a failed authentication attempt. There is no
// actor and no target entity; the attempted identifier goes into
// metadata only.
func (l *AuthLogger) LogLoginFailed(attemptedIdentifier, failureReason string, req *RequestInfo) error {
	return dispatch.Protect("auth_logger.log_login_failed", func() error {
		metadata := baseMetadata("login_failed", req, nil)
		metadata["attempted_identifier"] = attemptedIdentifier
		metadata["failure_reason"] = failureReason

		l.emit(audit.ActionLoginFailed, audit.Actor{}, nil, metadata)
		return nil
	})
}

// LogLogout records the end of an authenticated session.
func (l *AuthLogger) LogLogout(actor audit.Actor, req *RequestInfo) error {
	return dispatch.Protect("auth_logger.log_logout", func() error {
		if err := l.validateActor(actor, "log_logout"); err != nil {
			return err
		}
		metadata := baseMetadata("logout", req, nil)

		l.emit(audit.ActionLogout, actor, userEntity{id: actor.ID}, metadata)
		return nil
	})
}

// LogPasswordEvent records password lifecycle events: "changed",
// "reset_requested" or "reset_completed". Reset requests may arrive
// without an authenticated actor.
func (l *AuthLogger) LogPasswordEvent(actor audit.Actor, keyword string, req *RequestInfo) error {
	return dispatch.Protect("auth_logger.log_password_event", func() error {
		passwordActions := map[string]audit.Action{
			"changed":         audit.ActionPasswordChanged,
			"reset_requested": audit.ActionPasswordResetRequested,
			"reset_completed": audit.ActionPasswordResetCompleted,
		}
		action, ok := resolveAction(l.Name(), keyword, passwordActions)
		if !ok {
			return nil
		}
		if keyword != "reset_requested" {
			if err := l.validateActor(actor, "log_password_event"); err != nil {
				return err
			}
		}

		metadata := baseMetadata("password_"+keyword, req, nil)
		var target audit.Entity
		if !actor.IsZero() {
			target = userEntity{id: actor.ID}
		}

		l.emit(action, actor, target, metadata)
		return nil
	})
}
