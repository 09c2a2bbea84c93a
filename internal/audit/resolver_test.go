package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test entities implementing different capability combinations.

type plainEntity struct{ id string }

func (e plainEntity) EntityType() string { return "entry" }
func (e plainEntity) EntityID() string   { return e.id }

type workspaceEntity struct {
	id    string
	orgID string
}

func (e workspaceEntity) EntityType() string { return "workspace" }
func (e workspaceEntity) EntityID() string   { return e.id }
func (e workspaceEntity) SelfWorkspace() WorkspaceRef {
	return WorkspaceRef{ID: e.id, OrganizationID: e.orgID}
}

type entityWithWorkspace struct {
	plainEntity
	ws *WorkspaceRef
}

func (e entityWithWorkspace) Workspace() *WorkspaceRef { return e.ws }

type entityWithWorkspaceTeam struct {
	plainEntity
	wt *WorkspaceTeamRef
}

func (e entityWithWorkspaceTeam) WorkspaceTeam() *WorkspaceTeamRef { return e.wt }

type entityWithTeam struct {
	plainEntity
	team *TeamRef
}

func (e entityWithTeam) Team() *TeamRef { return e.team }

type adminEntity struct {
	plainEntity
	workspaces []WorkspaceRef
}

func (e adminEntity) AdministeredWorkspaces() []WorkspaceRef { return e.workspaces }

type entityWithOrg struct {
	plainEntity
	org *OrganizationRef
}

func (e entityWithOrg) Organization() *OrganizationRef { return e.org }

func TestResolve_ExplicitWorkspaceWins(t *testing.T) {
	// A workspace-typed target that differs from the explicit value: the
	// explicit value takes priority and no further steps run.
	target := workspaceEntity{id: "ws-target", orgID: "org-target"}
	explicit := &WorkspaceRef{ID: "ws-explicit", OrganizationID: "org-explicit"}

	scope := Resolve(target, explicit, nil)
	require.Equal(t, "ws-explicit", scope.WorkspaceID)
	require.Equal(t, "org-explicit", scope.OrganizationID)
}

func TestResolve_TargetIsWorkspace(t *testing.T) {
	target := workspaceEntity{id: "ws-1", orgID: "org-1"}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-1", scope.WorkspaceID)
	require.Equal(t, "org-1", scope.OrganizationID)
}

func TestResolve_DirectWorkspaceRelation(t *testing.T) {
	target := entityWithWorkspace{
		plainEntity: plainEntity{id: "e-1"},
		ws:          &WorkspaceRef{ID: "ws-2", OrganizationID: "org-2"},
	}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-2", scope.WorkspaceID)
	require.Equal(t, "org-2", scope.OrganizationID)
}

func TestResolve_WorkspaceTeamRelation(t *testing.T) {
	target := entityWithWorkspaceTeam{
		plainEntity: plainEntity{id: "e-2"},
		wt: &WorkspaceTeamRef{
			Workspace: WorkspaceRef{ID: "ws-3", OrganizationID: "org-3"},
		},
	}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-3", scope.WorkspaceID)
	require.Equal(t, "org-3", scope.OrganizationID)
}

func TestResolve_TeamThroughWorkspaceTeam(t *testing.T) {
	target := entityWithTeam{
		plainEntity: plainEntity{id: "e-3"},
		team: &TeamRef{
			ID: "team-1",
			WorkspaceTeam: &WorkspaceTeamRef{
				Workspace: WorkspaceRef{ID: "ws-4", OrganizationID: "org-4"},
			},
		},
	}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-4", scope.WorkspaceID)
	require.Equal(t, "org-4", scope.OrganizationID)
}

func TestResolve_TeamWithoutWorkspaceTeam(t *testing.T) {
	target := entityWithTeam{
		plainEntity: plainEntity{id: "e-4"},
		team:        &TeamRef{ID: "team-2"},
	}

	scope := Resolve(target, nil, nil)
	require.Empty(t, scope.WorkspaceID)
	require.Empty(t, scope.OrganizationID)
}

func TestResolve_AdministeredWorkspaces(t *testing.T) {
	target := adminEntity{
		plainEntity: plainEntity{id: "member-1"},
		workspaces: []WorkspaceRef{
			{ID: "ws-5", OrganizationID: "org-5"},
			{ID: "ws-6", OrganizationID: "org-5"},
		},
	}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-5", scope.WorkspaceID, "first administered workspace wins")
	require.Equal(t, "org-5", scope.OrganizationID)
}

func TestResolve_OrganizationActiveWorkspace(t *testing.T) {
	target := entityWithOrg{
		plainEntity: plainEntity{id: "e-5"},
		org: &OrganizationRef{
			ID:              "org-6",
			ActiveWorkspace: &WorkspaceRef{ID: "ws-7", OrganizationID: "org-6"},
		},
	}

	scope := Resolve(target, nil, nil)
	require.Equal(t, "ws-7", scope.WorkspaceID)
	require.Equal(t, "org-6", scope.OrganizationID)
}

func TestResolve_OrganizationWithoutWorkspace(t *testing.T) {
	// No workspace resolves, but the organization alone is recorded.
	target := entityWithOrg{
		plainEntity: plainEntity{id: "e-6"},
		org:         &OrganizationRef{ID: "org-7"},
	}

	scope := Resolve(target, nil, nil)
	require.Empty(t, scope.WorkspaceID)
	require.Equal(t, "org-7", scope.OrganizationID)
}

func TestResolve_ActorMembershipLastResort(t *testing.T) {
	membership := &OrganizationRef{
		ID:              "org-8",
		ActiveWorkspace: &WorkspaceRef{ID: "ws-8", OrganizationID: "org-8"},
	}

	scope := Resolve(plainEntity{id: "e-7"}, nil, membership)
	require.Equal(t, "ws-8", scope.WorkspaceID)
	require.Equal(t, "org-8", scope.OrganizationID)
}

func TestResolve_ActorMembershipOrganizationOnly(t *testing.T) {
	membership := &OrganizationRef{ID: "org-9"}

	scope := Resolve(nil, nil, membership)
	require.Empty(t, scope.WorkspaceID)
	require.Equal(t, "org-9", scope.OrganizationID)
}

func TestResolve_NothingResolves(t *testing.T) {
	// Expected for organization-independent events like failed logins.
	scope := Resolve(nil, nil, nil)
	require.Equal(t, Scope{}, scope)

	scope = Resolve(plainEntity{id: "e-8"}, nil, nil)
	require.Equal(t, Scope{}, scope)
}

func TestResolve_TargetWorkspaceBeatsActorMembership(t *testing.T) {
	target := workspaceEntity{id: "ws-9", orgID: "org-10"}
	membership := &OrganizationRef{
		ID:              "org-other",
		ActiveWorkspace: &WorkspaceRef{ID: "ws-other", OrganizationID: "org-other"},
	}

	scope := Resolve(target, nil, membership)
	require.Equal(t, "ws-9", scope.WorkspaceID)
	require.Equal(t, "org-10", scope.OrganizationID)
}
