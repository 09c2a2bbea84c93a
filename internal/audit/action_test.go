package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAction_Valid(t *testing.T) {
	for _, a := range AllActions() {
		require.True(t, a.Valid(), "catalog action %q must be valid", a)
	}
	require.False(t, Action("made_up_action").Valid())
	require.False(t, Action("").Valid())
}

func TestAction_Label(t *testing.T) {
	require.Equal(t, "Entry Created", ActionEntryCreated.Label())
	require.Equal(t, "Permission Granted", ActionPermissionGranted.Label())
	require.Equal(t, "Workspace Team Remittance Rate Updated", ActionWorkspaceTeamRemittanceRateUpdated.Label())

	// Unknown actions fall back to the raw value.
	require.Equal(t, "made_up_action", Action("made_up_action").Label())
}

func TestAction_Categories(t *testing.T) {
	tests := []struct {
		action   Action
		auth     bool
		critical bool
		security bool
	}{
		{ActionLoginSuccess, true, false, false},
		{ActionLoginFailed, true, false, true},
		{ActionPasswordChanged, true, false, false},
		{ActionPermissionGranted, false, true, false},
		{ActionPermissionRevoked, false, true, true},
		{ActionDataExported, false, true, false},
		{ActionAccessDenied, false, false, true},
		{ActionEntryCreated, false, false, false},
		{ActionWorkspaceArchived, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			require.Equal(t, tt.auth, tt.action.IsAuthentication())
			require.Equal(t, tt.critical, tt.action.IsCritical())
			require.Equal(t, tt.security, tt.action.IsSecurityRelated())
		})
	}
}

func TestSecurityActions(t *testing.T) {
	subset := SecurityActions()
	require.Len(t, subset, 3)
	for _, a := range subset {
		require.True(t, a.IsSecurityRelated())
	}
}
