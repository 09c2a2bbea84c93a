package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/internal/audit"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit_capture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
entities:
  - type: entry
    tracked_fields: [amount, status, deleted_at]
    actions:
      created: entry_created
      updated: entry_updated
      deleted: entry_deleted
      status_changed: entry_status_changed
  - type: team
    tracked_fields: [name]
    actions:
      created: team_created
      updated: team_updated
      deleted: team_deleted
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Entities, 2)

	registry := NewRegistry()
	m.Apply(registry, nil)

	cfg, ok := registry.Config("entry")
	require.True(t, ok)
	require.Equal(t, audit.ActionEntryStatusChanged, cfg.Actions[VerbStatusChanged])
	require.Equal(t, []string{"amount", "status", "deleted_at"}, cfg.TrackedFields)
	require.True(t, registry.IsRegistered("team"))
}

func TestLoadManifest_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown action": `
entities:
  - type: entry
    actions:
      created: not_in_catalog
`,
		"unknown verb": `
entities:
  - type: entry
    actions:
      renamed: entry_updated
`,
		"empty type": `
entities:
  - type: ""
    actions:
      created: entry_created
`,
		"no actions": `
entities:
  - type: entry
`,
		"malformed yaml": `entities: [`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, content))
			require.Error(t, err)
		})
	}
}
