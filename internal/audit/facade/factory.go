package facade

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// DomainLogger is the routing surface every domain logger exposes to the
// factory.
type DomainLogger interface {
	Name() string
	Supported() map[string]audit.Action
	Log(actor audit.Actor, entity audit.Entity, keyword string, req *RequestInfo, extra map[string]any) error
}

// Loggers is the full structured-logging facade: one logger per domain
// plus the routing factory.
type Loggers struct {
	Entry        *EntryLogger
	Organization *OrganizationLogger
	Workspace    *WorkspaceLogger
	Team         *TeamLogger
	System       *SystemLogger
	Auth         *AuthLogger
	Factory      *Factory
}

// New wires the domain loggers onto one dispatcher.
func New(dispatcher *dispatch.Dispatcher, cfg Config) *Loggers {
	b := base{dispatcher: dispatcher}
	l := &Loggers{
		Entry:        &EntryLogger{base: b},
		Organization: &OrganizationLogger{base: b},
		Workspace:    &WorkspaceLogger{base: b},
		Team:         &TeamLogger{base: b},
		System:       &SystemLogger{base: b, cfg: cfg},
		Auth:         &AuthLogger{base: b},
	}
	l.Factory = NewFactory(map[string]DomainLogger{
		"entry":        l.Entry,
		"organization": l.Organization,
		"workspace":    l.Workspace,
		"team":         l.Team,
		"system":       l.System,
	})
	return l
}

// Factory routes generic logging calls to the right domain logger based on
// the subject entity's type, with an explicit hint override and dynamic
// registration for new domains.
type Factory struct {
	mu      sync.RWMutex
	loggers map[string]DomainLogger
}

// NewFactory creates a Factory over the given domain loggers.
func NewFactory(loggers map[string]DomainLogger) *Factory {
	f := &Factory{loggers: make(map[string]DomainLogger, len(loggers))}
	for name, l := range loggers {
		f.loggers[name] = l
	}
	return f
}

// Get returns the domain logger registered under name.
func (f *Factory) Get(name string) (DomainLogger, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	l, ok := f.loggers[name]
	return l, ok
}

// Register adds or replaces a domain logger at runtime.
func (f *Factory) Register(name string, l DomainLogger) {
	f.mu.Lock()
	f.loggers[name] = l
	f.mu.Unlock()
	logger.Info("Registered audit domain logger",
		zap.String("domain", name),
		zap.String("logger", l.Name()),
	)
}

// Available returns the registered domain names.
func (f *Factory) Available() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.loggers))
	for name := range f.loggers {
		out = append(out, name)
	}
	return out
}

// entityDomains maps entity type discriminators to domains. Unknown types
// fall back to the system logger.
var entityDomains = map[string]string{
	"entry":          "entry",
	"organization":   "organization",
	"workspace":      "workspace",
	"workspace_team": "workspace",
	"team":           "team",
	"team_member":    "team",
	"user":           "system",
	"file":           "system",
	"attachment":     "system",
	"invitation":     "organization",
}

// DetectDomain infers the domain for an entity. A nil entity routes to the
// system logger.
func (f *Factory) DetectDomain(entity audit.Entity) string {
	if entity == nil {
		return "system"
	}
	if domain, ok := entityDomains[strings.ToLower(entity.EntityType())]; ok {
		return domain
	}
	return "system"
}

// LogAuto routes one action to the right domain logger. domainHint, when
// non-empty, overrides auto-detection. An unknown domain is warned and
// skipped; the invalid-actor error propagates from the underlying logger.
func (f *Factory) LogAuto(actor audit.Actor, entity audit.Entity, keyword string, req *RequestInfo, domainHint string, extra map[string]any) error {
	domain := domainHint
	if domain == "" {
		domain = f.DetectDomain(entity)
	}

	l, ok := f.Get(domain)
	if !ok {
		logger.Warn("No audit logger for domain, skipping",
			zap.String("domain", domain),
			zap.String("action", keyword),
		)
		return nil
	}
	return l.Log(actor, entity, keyword, req, extra)
}
