package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/query"
	"ledgerline.io/audittrail/internal/audit/retention"
	"ledgerline.io/audittrail/internal/config"
	"ledgerline.io/audittrail/internal/pkg/logger"
	"ledgerline.io/audittrail/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var testRetention = config.RetentionConfig{
	AuthenticationDays: 180,
	CriticalDays:       2555,
	DefaultDays:        365,
}

func newRouter(s *Server) *gin.Engine {
	router := gin.New()
	router.GET("/healthz", s.Health)
	v1 := router.Group("/api/v1")
	v1.GET("/audit-records", s.ListRecords)
	v1.GET("/audit-records/transitions", s.ListTransitions)
	v1.GET("/audit-records/:id", s.GetRecord)
	v1.POST("/audit-cleanup", s.RunCleanup)
	return router
}

func newPostgresServer(t *testing.T) (*Server, *audit.Store) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, "audit_api")
	store := audit.NewStore(client, 0)
	selector := query.NewSelector(client, nil)
	engine := retention.NewEngine(store, retention.NewPolicy(testRetention, nil), 100)
	return NewServer(store, selector, engine), store
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newRouter(NewServer(nil, nil, nil))
	w := doRequest(router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestListRecords_InvalidParams(t *testing.T) {
	router := newRouter(NewServer(nil, query.NewSelector(nil, nil), nil))

	for _, path := range []string{
		"/api/v1/audit-records?start=yesterday",
		"/api/v1/audit-records?security_only=perhaps",
		"/api/v1/audit-records?limit=many",
		"/api/v1/audit-records?order=sideways",
		"/api/v1/audit-records?limit=-5",
		"/api/v1/audit-records?action_type=no_such_action",
	} {
		w := doRequest(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "INVALID_AUDIT_QUERY", resp.Code)
	}
}

func TestListAndGetRecords(t *testing.T) {
	server, store := newPostgresServer(t)
	router := newRouter(server)
	ctx := context.Background()

	rec := audit.NewRecord(audit.ActionEntryApproved,
		audit.Actor{ID: "u-1", Email: "user@example.com"},
		audit.EntityRef{Type: "entry", ID: "e-1"},
		map[string]any{"notes": "ok"})
	rec.WorkspaceID = "ws-1"
	require.NoError(t, store.Append(ctx, rec))

	other := audit.NewRecord(audit.ActionLoginFailed, audit.Actor{}, audit.EntityRef{}, nil)
	require.NoError(t, store.Append(ctx, other))

	w := doRequest(router, http.MethodGet, "/api/v1/audit-records", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Items []recordView `json:"items"`
		Total int          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 2, list.Total)
	require.Len(t, list.Items, 2)

	w = doRequest(router, http.MethodGet, "/api/v1/audit-records?workspace_id=ws-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, rec.ID, list.Items[0].ID)
	require.Equal(t, "Entry Approved", list.Items[0].ActionLabel)

	w = doRequest(router, http.MethodGet, "/api/v1/audit-records/"+rec.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var view recordView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Equal(t, "entry_approved", view.ActionType)
	require.Equal(t, "u-1", view.ActorID)

	w = doRequest(router, http.MethodGet, "/api/v1/audit-records/audit-missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "AUDIT_RECORD_NOT_FOUND", resp.Code)
}

func TestListTransitions(t *testing.T) {
	server, store := newPostgresServer(t)
	router := newRouter(server)
	ctx := context.Background()

	rec := audit.NewRecord(audit.ActionEntryUpdated,
		audit.Actor{ID: "u-1"},
		audit.EntityRef{Type: "entry", ID: "e-1"},
		map[string]any{"changed_fields": []any{
			map[string]any{"field": "status", "old_value": "draft", "new_value": "submitted"},
		}})
	require.NoError(t, store.Append(ctx, rec))

	w := doRequest(router, http.MethodGet, "/api/v1/audit-records/transitions?field=status&new_value=submitted", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Items []recordView `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	require.Equal(t, rec.ID, list.Items[0].ID)

	// Missing field name is a structural error.
	w = doRequest(router, http.MethodGet, "/api/v1/audit-records/transitions", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunCleanup(t *testing.T) {
	server, store := newPostgresServer(t)
	router := newRouter(server)
	ctx := context.Background()

	expired := audit.NewRecord(audit.ActionEntryCreated, audit.Actor{ID: "u-1"}, audit.EntityRef{}, nil)
	expired.CreatedAt = time.Now().UTC().Add(-400 * 24 * time.Hour)
	require.NoError(t, store.Append(ctx, expired))

	live := audit.NewRecord(audit.ActionEntryCreated, audit.Actor{ID: "u-1"}, audit.EntityRef{}, nil)
	require.NoError(t, store.Append(ctx, live))

	w := doRequest(router, http.MethodPost, "/api/v1/audit-cleanup", `{"dry_run":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var summary retention.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.True(t, summary.DryRun)
	require.Equal(t, 1, summary.Total)

	// The dry run deleted nothing.
	_, err := store.Get(ctx, expired.ID)
	require.NoError(t, err)

	w = doRequest(router, http.MethodPost, "/api/v1/audit-cleanup", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.False(t, summary.DryRun)
	require.Equal(t, 1, summary.Total)

	_, err = store.Get(ctx, expired.ID)
	require.Error(t, err)
	_, err = store.Get(ctx, live.ID)
	require.NoError(t, err)

	w = doRequest(router, http.MethodPost, "/api/v1/audit-cleanup", `{"batch_size":-1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
