package capture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ledgerline.io/audittrail/internal/audit"
)

// Manifest is the declarative form of capture registration. Deployments
// that cannot register in code ship a YAML file instead:
//
//	entities:
//	  - type: entry
//	    tracked_fields: [amount, status, deleted_at]
//	    actions:
//	      created: entry_created
//	      updated: entry_updated
//	      deleted: entry_deleted
//	      status_changed: entry_status_changed
type Manifest struct {
	Entities []ManifestEntity `yaml:"entities"`
}

// ManifestEntity declares one auditable entity type.
type ManifestEntity struct {
	Type          string          `yaml:"type"`
	TrackedFields []string        `yaml:"tracked_fields"`
	Actions       map[Verb]string `yaml:"actions"`
}

// LoadManifest parses a capture manifest file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse capture manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, e := range m.Entities {
		if e.Type == "" {
			return fmt.Errorf("capture manifest: entity with empty type")
		}
		if len(e.Actions) == 0 {
			return fmt.Errorf("capture manifest: entity %q maps no actions", e.Type)
		}
		for verb, raw := range e.Actions {
			switch verb {
			case VerbCreated, VerbUpdated, VerbDeleted, VerbStatusChanged:
			default:
				return fmt.Errorf("capture manifest: entity %q has unknown verb %q", e.Type, verb)
			}
			if !audit.Action(raw).Valid() {
				return fmt.Errorf("capture manifest: entity %q maps %q to unknown action %q", e.Type, verb, raw)
			}
		}
	}
	return nil
}

// Apply registers every manifest entity. loaders provides optional
// snapshot loaders keyed by entity type; types without one still capture,
// they just need explicit snapshots.
func (m *Manifest) Apply(registry *Registry, loaders map[string]Loader) {
	for _, e := range m.Entities {
		actions := make(map[Verb]audit.Action, len(e.Actions))
		for verb, raw := range e.Actions {
			actions[verb] = audit.Action(raw)
		}
		registry.Register(e.Type, Config{
			Actions:       actions,
			TrackedFields: e.TrackedFields,
			Loader:        loaders[e.Type],
		})
	}
}
