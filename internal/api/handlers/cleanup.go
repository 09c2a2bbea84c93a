package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ledgerline.io/audittrail/internal/audit/retention"
	apperrors "ledgerline.io/audittrail/internal/pkg/errors"
	"ledgerline.io/audittrail/internal/pkg/logger"
)

// cleanupRequest is the operator-facing cleanup trigger.
type cleanupRequest struct {
	DryRun     bool   `json:"dry_run"`
	BatchSize  int    `json:"batch_size"`
	ActionType string `json:"action_type"`
	Days       int    `json:"days"`
}

// RunCleanup handles POST /api/v1/audit-cleanup. The run executes inline so
// the caller gets the summary back; scheduled runs go through the periodic
// job instead.
func (s *Server) RunCleanup(c *gin.Context) {
	var req cleanupRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperrors.ErrInvalidQueryf("body", "malformed cleanup request"))
			return
		}
	}

	summary, err := s.engine.Run(c.Request.Context(), retention.Options{
		DryRun:       req.DryRun,
		BatchSize:    req.BatchSize,
		ActionType:   req.ActionType,
		OverrideDays: req.Days,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("operator audit cleanup triggered",
		zap.Bool("dry_run", summary.DryRun),
		zap.Int("total", summary.Total),
	)
	c.JSON(http.StatusOK, summary)
}
