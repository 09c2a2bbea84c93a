// Package audit implements the audit trail engine core.
//
// Audit records are append-only compliance records. Hard-delete is NOT
// allowed outside the retention engine.
package audit

// Action identifies an auditable action. The catalog is closed: every
// record carries exactly one Action from this set.
type Action string

// Entry lifecycle and review workflow.
const (
	ActionEntryCreated       Action = "entry_created"
	ActionEntryUpdated       Action = "entry_updated"
	ActionEntryDeleted       Action = "entry_deleted"
	ActionEntryStatusChanged Action = "entry_status_changed"
	ActionEntrySubmitted     Action = "entry_submitted"
	ActionEntryReviewed      Action = "entry_reviewed"
	ActionEntryApproved      Action = "entry_approved"
	ActionEntryRejected      Action = "entry_rejected"
	ActionEntryFlagged       Action = "entry_flagged"
	ActionEntryUnflagged     Action = "entry_unflagged"
)

// Organization management.
const (
	ActionOrganizationCreated           Action = "organization_created"
	ActionOrganizationUpdated           Action = "organization_updated"
	ActionOrganizationDeleted           Action = "organization_deleted"
	ActionOrganizationStatusChanged     Action = "organization_status_changed"
	ActionOrganizationMemberAdded       Action = "organization_member_added"
	ActionOrganizationMemberRemoved     Action = "organization_member_removed"
	ActionOrganizationMemberRoleChanged Action = "organization_member_role_changed"
)

// Workspace management.
const (
	ActionWorkspaceCreated                   Action = "workspace_created"
	ActionWorkspaceUpdated                   Action = "workspace_updated"
	ActionWorkspaceDeleted                   Action = "workspace_deleted"
	ActionWorkspaceStatusChanged             Action = "workspace_status_changed"
	ActionWorkspaceArchived                  Action = "workspace_archived"
	ActionWorkspaceActivated                 Action = "workspace_activated"
	ActionWorkspaceClosed                    Action = "workspace_closed"
	ActionWorkspaceTeamAdded                 Action = "workspace_team_added"
	ActionWorkspaceTeamRemoved               Action = "workspace_team_removed"
	ActionWorkspaceTeamRemittanceRateUpdated Action = "workspace_team_remittance_rate_updated"
)

// Team management.
const (
	ActionTeamCreated           Action = "team_created"
	ActionTeamUpdated           Action = "team_updated"
	ActionTeamDeleted           Action = "team_deleted"
	ActionTeamMemberAdded       Action = "team_member_added"
	ActionTeamMemberRemoved     Action = "team_member_removed"
	ActionTeamMemberRoleChanged Action = "team_member_role_changed"
)

// Invitations.
const (
	ActionInvitationSent     Action = "invitation_sent"
	ActionInvitationAccepted Action = "invitation_accepted"
	ActionInvitationDeclined Action = "invitation_declined"
	ActionInvitationCanceled Action = "invitation_canceled"
	ActionInvitationResent   Action = "invitation_resent"
)

// Authentication.
const (
	ActionLoginSuccess           Action = "login_success"
	ActionLoginFailed            Action = "login_failed"
	ActionLogout                 Action = "logout"
	ActionPasswordChanged        Action = "password_changed"
	ActionPasswordResetRequested Action = "password_reset_requested"
	ActionPasswordResetCompleted Action = "password_reset_completed"
)

// System and security events.
const (
	ActionPermissionGranted Action = "permission_granted"
	ActionPermissionRevoked Action = "permission_revoked"
	ActionPermissionChanged Action = "permission_changed"
	ActionBulkOperation     Action = "bulk_operation"
	ActionDataExported      Action = "data_exported"
	ActionFileUploaded      Action = "file_uploaded"
	ActionFileDownloaded    Action = "file_downloaded"
	ActionFileDeleted       Action = "file_deleted"
	ActionAccessDenied      Action = "access_denied"
	ActionOperationFailed   Action = "operation_failed"
)

// actionLabels maps every catalog action to its human-readable label.
// Labels participate in free-text search and UI categorization.
var actionLabels = map[Action]string{
	ActionEntryCreated:       "Entry Created",
	ActionEntryUpdated:       "Entry Updated",
	ActionEntryDeleted:       "Entry Deleted",
	ActionEntryStatusChanged: "Entry Status Changed",
	ActionEntrySubmitted:     "Entry Submitted",
	ActionEntryReviewed:      "Entry Reviewed",
	ActionEntryApproved:      "Entry Approved",
	ActionEntryRejected:      "Entry Rejected",
	ActionEntryFlagged:       "Entry Flagged",
	ActionEntryUnflagged:     "Entry Unflagged",

	ActionOrganizationCreated:           "Organization Created",
	ActionOrganizationUpdated:           "Organization Updated",
	ActionOrganizationDeleted:           "Organization Deleted",
	ActionOrganizationStatusChanged:     "Organization Status Changed",
	ActionOrganizationMemberAdded:       "Organization Member Added",
	ActionOrganizationMemberRemoved:     "Organization Member Removed",
	ActionOrganizationMemberRoleChanged: "Organization Member Role Changed",

	ActionWorkspaceCreated:                   "Workspace Created",
	ActionWorkspaceUpdated:                   "Workspace Updated",
	ActionWorkspaceDeleted:                   "Workspace Deleted",
	ActionWorkspaceStatusChanged:             "Workspace Status Changed",
	ActionWorkspaceArchived:                  "Workspace Archived",
	ActionWorkspaceActivated:                 "Workspace Activated",
	ActionWorkspaceClosed:                    "Workspace Closed",
	ActionWorkspaceTeamAdded:                 "Workspace Team Added",
	ActionWorkspaceTeamRemoved:               "Workspace Team Removed",
	ActionWorkspaceTeamRemittanceRateUpdated: "Workspace Team Remittance Rate Updated",

	ActionTeamCreated:           "Team Created",
	ActionTeamUpdated:           "Team Updated",
	ActionTeamDeleted:           "Team Deleted",
	ActionTeamMemberAdded:       "Team Member Added",
	ActionTeamMemberRemoved:     "Team Member Removed",
	ActionTeamMemberRoleChanged: "Team Member Role Changed",

	ActionInvitationSent:     "Invitation Sent",
	ActionInvitationAccepted: "Invitation Accepted",
	ActionInvitationDeclined: "Invitation Declined",
	ActionInvitationCanceled: "Invitation Canceled",
	ActionInvitationResent:   "Invitation Resent",

	ActionLoginSuccess:           "Login Success",
	ActionLoginFailed:            "Login Failed",
	ActionLogout:                 "Logout",
	ActionPasswordChanged:        "Password Changed",
	ActionPasswordResetRequested: "Password Reset Requested",
	ActionPasswordResetCompleted: "Password Reset Completed",

	ActionPermissionGranted: "Permission Granted",
	ActionPermissionRevoked: "Permission Revoked",
	ActionPermissionChanged: "Permission Changed",
	ActionBulkOperation:     "Bulk Operation",
	ActionDataExported:      "Data Exported",
	ActionFileUploaded:      "File Uploaded",
	ActionFileDownloaded:    "File Downloaded",
	ActionFileDeleted:       "File Deleted",
	ActionAccessDenied:      "Access Denied",
	ActionOperationFailed:   "Operation Failed",
}

// authenticationActions belong to the authentication retention category.
var authenticationActions = map[Action]struct{}{
	ActionLoginSuccess:           {},
	ActionLoginFailed:            {},
	ActionLogout:                 {},
	ActionPasswordChanged:        {},
	ActionPasswordResetRequested: {},
	ActionPasswordResetCompleted: {},
}

// criticalActions are the built-in long-retention actions. Deployments may
// extend the set via configuration; they cannot shrink it.
var criticalActions = map[Action]struct{}{
	ActionPermissionGranted: {},
	ActionPermissionRevoked: {},
	ActionPermissionChanged: {},
	ActionDataExported:      {},
}

// securityActions is the fixed security-related subset used by the
// security-only query filter.
var securityActions = map[Action]struct{}{
	ActionLoginFailed:       {},
	ActionAccessDenied:      {},
	ActionPermissionRevoked: {},
}

// String returns the wire value of the action.
func (a Action) String() string { return string(a) }

// Valid reports whether the action is part of the closed catalog.
func (a Action) Valid() bool {
	_, ok := actionLabels[a]
	return ok
}

// Label returns the human-readable label, or the raw value for unknown
// actions so callers never get an empty display string.
func (a Action) Label() string {
	if l, ok := actionLabels[a]; ok {
		return l
	}
	return string(a)
}

// IsAuthentication reports whether the action belongs to the
// authentication retention category.
func (a Action) IsAuthentication() bool {
	_, ok := authenticationActions[a]
	return ok
}

// IsCritical reports whether the action is in the built-in critical set.
func (a Action) IsCritical() bool {
	_, ok := criticalActions[a]
	return ok
}

// IsSecurityRelated reports whether the action is in the security subset.
func (a Action) IsSecurityRelated() bool {
	_, ok := securityActions[a]
	return ok
}

// AllActions returns the full catalog. The slice is freshly allocated and
// safe to mutate.
func AllActions() []Action {
	out := make([]Action, 0, len(actionLabels))
	for a := range actionLabels {
		out = append(out, a)
	}
	return out
}

// SecurityActions returns the security-related subset.
func SecurityActions() []Action {
	out := make([]Action, 0, len(securityActions))
	for a := range securityActions {
		out = append(out, a)
	}
	return out
}
