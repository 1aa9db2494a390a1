package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

type SubmissionHandler struct {
	recordSubmission usecases.RecordSubmissionUsecase
	log              *zap.Logger
}

func NewSubmissionHandler(recordSubmission usecases.RecordSubmissionUsecase, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{recordSubmission: recordSubmission, log: log}
}

// POST /api/v1/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req dtos.SubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	submission, err := h.recordSubmission.AddSubmission(c.Request.Context(),
		domain.CycleID(req.CycleID), domain.MemberID(req.MemberID), req.BlogURL)
	if err != nil && submission == nil {
		writeError(c, err)
		return
	}
	if err != nil {
		h.log.Warn("submission notification failed", zap.Error(err))
	}

	response.SuccessResponse(c, http.StatusCreated, toSubmissionResponse(submission))
}
