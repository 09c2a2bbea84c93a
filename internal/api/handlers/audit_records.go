package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/query"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
)

// recordView is the wire shape of one audit record.
type recordView struct {
	ID             string         `json:"id"`
	ActionType     string         `json:"action_type"`
	ActionLabel    string         `json:"action_label"`
	ActorID        string         `json:"actor_id,omitempty"`
	ActorEmail     string         `json:"actor_email,omitempty"`
	TargetType     string         `json:"target_entity_type,omitempty"`
	TargetID       string         `json:"target_entity_id,omitempty"`
	OrganizationID string         `json:"organization_id,omitempty"`
	WorkspaceID    string         `json:"workspace_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func toRecordView(rec *audit.Record) recordView {
	return recordView{
		ID:             rec.ID,
		ActionType:     rec.Action.String(),
		ActionLabel:    rec.Action.Label(),
		ActorID:        rec.Actor.ID,
		ActorEmail:     rec.Actor.Email,
		TargetType:     rec.Target.Type,
		TargetID:       rec.Target.ID,
		OrganizationID: rec.OrganizationID,
		WorkspaceID:    rec.WorkspaceID,
		Metadata:       rec.Metadata,
		CreatedAt:      rec.CreatedAt,
	}
}

func toRecordViews(records []*audit.Record) []recordView {
	views := make([]recordView, 0, len(records))
	for _, rec := range records {
		views = append(views, toRecordView(rec))
	}
	return views
}

// ListRecords handles GET /api/v1/audit-records.
func (s *Server) ListRecords(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := s.selector.Records(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	total, err := s.selector.Count(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": toRecordViews(records),
		"total": total,
	})
}

// GetRecord handles GET /api/v1/audit-records/:id.
func (s *Server) GetRecord(c *gin.Context) {
	rec, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRecordView(rec))
}

// ListTransitions handles GET /api/v1/audit-records/transitions.
func (s *Server) ListTransitions(c *gin.Context) {
	filter, err := parseTransitionFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := s.selector.Transitions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": toRecordViews(records)})
}

func parseFilter(c *gin.Context) (query.Filter, error) {
	f := query.Filter{
		ActorID:     c.Query("actor_id"),
		EntityID:    c.Query("entity_id"),
		WorkspaceID: c.Query("workspace_id"),
		Search:      c.Query("q"),
	}
	f.Actions = splitList(c.Query("action_type"))
	f.EntityTypes = splitList(c.Query("entity_type"))

	var err error
	if f.Start, err = parseTimeParam(c, "start"); err != nil {
		return f, err
	}
	if f.End, err = parseTimeParam(c, "end"); err != nil {
		return f, err
	}
	if f.SecurityOnly, err = parseBoolParam(c, "security_only"); err != nil {
		return f, err
	}
	if f.CriticalOnly, err = parseBoolParam(c, "critical_only"); err != nil {
		return f, err
	}
	if f.ExcludeSystem, err = parseBoolParam(c, "exclude_system"); err != nil {
		return f, err
	}

	switch order := c.Query("order"); order {
	case "", "desc":
	case "asc":
		f.OrderAsc = true
	default:
		return f, apperrors.ErrInvalidQueryf("order", "order must be asc or desc")
	}

	if f.Limit, err = parseIntParam(c, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = parseIntParam(c, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

func parseTransitionFilter(c *gin.Context) (query.TransitionFilter, error) {
	f := query.TransitionFilter{
		Field:       c.Query("field"),
		WorkspaceID: c.Query("workspace_id"),
		EntityID:    c.Query("entity_id"),
	}
	if v, ok := c.GetQuery("old_value"); ok {
		f.OldValue = &v
	}
	if v, ok := c.GetQuery("new_value"); ok {
		f.NewValue = &v
	}

	var err error
	if f.Limit, err = parseIntParam(c, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = parseIntParam(c, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.ErrInvalidQueryf(name, "timestamps must be RFC 3339")
	}
	return &t, nil
}

func parseBoolParam(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.ErrInvalidQueryf(name, "must be a boolean")
	}
	return v, nil
}

func parseIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.ErrInvalidQueryf(name, "must be an integer")
	}
	return v, nil
}
