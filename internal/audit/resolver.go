package audit

// Tenant scope resolution. Given an optional actor membership, an optional
// target entity, and an optional explicitly supplied workspace, Resolve
// infers the organization/workspace references to denormalize onto a
// record. The chain is heuristic and best-effort: it never errors, and an
// unresolved scope is a valid outcome (e.g. a failed login before any
// organization context exists).

// WorkspaceRef identifies a workspace and its owning organization.
type WorkspaceRef struct {
	ID             string
	OrganizationID string
}

// IsZero reports whether the reference is absent.
func (w WorkspaceRef) IsZero() bool { return w.ID == "" }

// WorkspaceTeamRef is the association between a workspace and a team.
type WorkspaceTeamRef struct {
	Workspace WorkspaceRef
}

// TeamRef identifies a team, optionally with its workspace association.
type TeamRef struct {
	ID            string
	WorkspaceTeam *WorkspaceTeamRef
}

// OrganizationRef identifies an organization, optionally carrying one of
// its active workspaces.
type OrganizationRef struct {
	ID              string
	ActiveWorkspace *WorkspaceRef
}

// Entities declare which relations they expose by implementing capability
// interfaces. Absence of a capability is tolerated, never an error.

// Workspace marks an entity that is itself a workspace.
type Workspace interface {
	Entity
	SelfWorkspace() WorkspaceRef
}

// HasWorkspace exposes a direct workspace relation.
type HasWorkspace interface {
	Workspace() *WorkspaceRef
}

// HasWorkspaceTeam exposes a workspace-team relation.
type HasWorkspaceTeam interface {
	WorkspaceTeam() *WorkspaceTeamRef
}

// HasTeam exposes a team relation.
type HasTeam interface {
	Team() *TeamRef
}

// HasAdministeredWorkspaces exposes the workspaces a membership or admin
// principal administers.
type HasAdministeredWorkspaces interface {
	AdministeredWorkspaces() []WorkspaceRef
}

// HasOrganization exposes the owning organization.
type HasOrganization interface {
	Organization() *OrganizationRef
}

// Scope is the resolved tenant scoping for one record. Either field may be
// empty.
type Scope struct {
	WorkspaceID    string
	OrganizationID string
}

// Resolve runs the scope inference chain, first match wins:
//
//  1. explicitly supplied workspace
//  2. target is itself a workspace
//  3. target's direct workspace relation
//  4. target's workspace-team relation
//  5. target's team relation, through its workspace-team
//  6. target's first administered workspace
//  7. target's organization, through its active workspace
//  8. actor's active membership, through its organization's active workspace
//
// Once a workspace resolves, the organization is derived from it. If no
// workspace resolves, the target's organization, then the actor membership's
// organization, is recorded alone. An empty Scope is expected for
// organization-independent events.
func Resolve(target Entity, explicit *WorkspaceRef, actorMembership *OrganizationRef) Scope {
	if ws := resolveWorkspace(target, explicit, actorMembership); !ws.IsZero() {
		return Scope{WorkspaceID: ws.ID, OrganizationID: ws.OrganizationID}
	}

	if target != nil {
		if h, ok := target.(HasOrganization); ok {
			if org := h.Organization(); org != nil {
				return Scope{OrganizationID: org.ID}
			}
		}
	}
	if actorMembership != nil {
		return Scope{OrganizationID: actorMembership.ID}
	}
	return Scope{}
}

func resolveWorkspace(target Entity, explicit *WorkspaceRef, actorMembership *OrganizationRef) WorkspaceRef {
	if explicit != nil && !explicit.IsZero() {
		return *explicit
	}

	if target != nil {
		if w, ok := target.(Workspace); ok {
			return w.SelfWorkspace()
		}
		if h, ok := target.(HasWorkspace); ok {
			if ws := h.Workspace(); ws != nil && !ws.IsZero() {
				return *ws
			}
		}
		if h, ok := target.(HasWorkspaceTeam); ok {
			if wt := h.WorkspaceTeam(); wt != nil && !wt.Workspace.IsZero() {
				return wt.Workspace
			}
		}
		if h, ok := target.(HasTeam); ok {
			if team := h.Team(); team != nil && team.WorkspaceTeam != nil && !team.WorkspaceTeam.Workspace.IsZero() {
				return team.WorkspaceTeam.Workspace
			}
		}
		if h, ok := target.(HasAdministeredWorkspaces); ok {
			if admin := h.AdministeredWorkspaces(); len(admin) > 0 {
				return admin[0]
			}
		}
		if h, ok := target.(HasOrganization); ok {
			if org := h.Organization(); org != nil && org.ActiveWorkspace != nil && !org.ActiveWorkspace.IsZero() {
				return *org.ActiveWorkspace
			}
		}
	}

	if actorMembership != nil && actorMembership.ActiveWorkspace != nil && !actorMembership.ActiveWorkspace.IsZero() {
		return *actorMembership.ActiveWorkspace
	}
	return WorkspaceRef{}
}
