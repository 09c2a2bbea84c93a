// Package handlers exposes the operator HTTP surface over the audit store.
package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit"
	"ledgerline.io/audittrail/internal/audit/query"
	"ledgerline.io/audittrail/internal/audit/retention"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// Server holds the handler dependencies.
type Server struct {
	store    *audit.Store
	selector *query.Selector
	engine   *retention.Engine
}

// NewServer creates the handler set.
func NewServer(store *audit.Store, selector *query.Selector, engine *retention.Engine) *Server {
	return &Server{store: store, selector: selector, engine: engine}
}

// errorResponse is the wire shape for failures.
type errorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// respondError maps application errors onto their HTTP status and code.
// Unknown errors become a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if goerrors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, errorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Params:  appErr.Params,
		})
		return
	}
	logger.Error("unhandled error in audit API", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
	})
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
