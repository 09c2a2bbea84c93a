// Package facade is the structured logging surface for business workflows:
// explicit audit events that automatic capture cannot infer (submissions,
// approvals, permission changes, bulk operations, exports, file
// operations), organized by domain. All writes go through the async
// dispatch path; failures never reach the caller except invalid-actor
// misuse.
package facade

import (
	"time"

	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/dispatch"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// RequestInfo is the optional request context attached to manual events.
// A nil RequestInfo marks the emission as a service call.
type RequestInfo struct {
	IP        string
	UserAgent string
	Method    string
	Path      string
	SessionID string
}

// Config tunes facade behavior.
type Config struct {
	// BulkThreshold is the affected-entity count above which bulk
	// operations record a sample instead of every identity.
	BulkThreshold int

	// BulkSampleSize is the sample size for oversized bulk operations.
	BulkSampleSize int
}

// base carries the machinery shared by every domain logger, plus optional
// explicit tenant hints bound via WithScope.
type base struct {
	dispatcher *dispatch.Dispatcher
	workspace  *audit.WorkspaceRef
	membership *audit.OrganizationRef
}

// withScope returns a copy of the base whose emissions carry explicit
// workspace and actor-membership hints. Useful for targets the resolver
// cannot scope on its own, such as relation-less entities.
func (b base) withScope(workspace *audit.WorkspaceRef, membership *audit.OrganizationRef) base {
	b.workspace = workspace
	b.membership = membership
	return b
}

// validateActor rejects system-initiated calls on entry points requiring an
// authenticated actor. This error propagates: it signals caller misuse.
func (b base) validateActor(actor audit.Actor, operation string) error {
	if actor.IsZero() {
		return apperrors.ErrInvalidActorf(operation)
	}
	return nil
}

// resolveAction maps a generic action keyword through a domain's supported
// set. An unsupported keyword is logged as a warning and skipped silently.
func resolveAction(loggerName, keyword string, supported map[string]audit.Action) (audit.Action, bool) {
	action, ok := supported[keyword]
	if !ok {
		logger.Warn("Unsupported audit action, skipping",
			zap.String("logger", loggerName),
			zap.String("action", keyword),
		)
		return "", false
	}
	return action, true
}

// requestMetadata extracts the request context. A nil request is a
// service call, not an error.
func requestMetadata(req *RequestInfo) map[string]any {
	if req == nil {
		return map[string]any{
			"ip_address":   "unknown",
			"user_agent":   "unknown",
			"http_method":  "unknown",
			"request_path": "unknown",
			"session_id":   nil,
			"source":       "service_call",
		}
	}
	var session any
	if req.SessionID != "" {
		session = req.SessionID
	}
	return map[string]any{
		"ip_address":   orUnknown(req.IP),
		"user_agent":   orUnknown(req.UserAgent),
		"http_method":  orUnknown(req.Method),
		"request_path": orUnknown(req.Path),
		"session_id":   session,
		"source":       "web_request",
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// baseMetadata assembles the envelope common to every manual emission.
func baseMetadata(keyword string, req *RequestInfo, extra map[string]any) map[string]any {
	metadata := map[string]any{
		"action":         keyword,
		"manual_logging": true,
	}
	for k, v := range requestMetadata(req) {
		metadata[k] = v
	}
	for k, v := range extra {
		metadata[k] = v
	}
	return metadata
}

// emit assembles the record, resolves tenant scope, and hands it to the
// async write path.
func (b base) emit(action audit.Action, actor audit.Actor, target audit.Entity, metadata map[string]any) {
	rec := audit.NewRecord(action, actor, audit.Ref(target), metadata)
	scope := audit.Resolve(target, b.workspace, b.membership)
	rec.WorkspaceID = scope.WorkspaceID
	rec.OrganizationID = scope.OrganizationID
	b.dispatcher.Async(rec)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
