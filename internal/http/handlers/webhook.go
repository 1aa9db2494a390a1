package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/service"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/github"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

const maxWebhookBody = 5 << 20

type WebhookHandler struct {
	recordSubmission usecases.RecordSubmissionUsecase
	createCycle      usecases.CreateCycleFromIssueUsecase
	secret           string
	log              *zap.Logger
}

func NewWebhookHandler(recordSubmission usecases.RecordSubmissionUsecase, createCycle usecases.CreateCycleFromIssueUsecase,
	secret string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		recordSubmission: recordSubmission,
		createCycle:      createCycle,
		secret:           secret,
		log:              log,
	}
}

// Github receives GitHub webhook deliveries.
// POST /api/v1/webhooks/github
func (h *WebhookHandler) Github(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidPayload, "failed to read body")
		return
	}

	if h.secret != "" && !github.VerifySignature(h.secret, body, c.GetHeader(github.SignatureHeader)) {
		response.ErrorResponse(c, http.StatusUnauthorized, "INVALID_SIGNATURE", "signature does not match payload")
		return
	}

	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidPayload, err.Error())
		return
	}

	event := c.GetHeader(github.EventHeader)
	switch {
	case event == github.EventIssueComment && envelope.Action == "created":
		h.handleComment(c, body)
	case event == github.EventIssues && envelope.Action == "opened":
		h.handleIssue(c, body)
	case event == "ping":
		response.SuccessResponse(c, http.StatusOK, gin.H{"status": "pong"})
	default:
		response.SuccessResponse(c, http.StatusAccepted, gin.H{"status": "ignored", "event": event, "action": envelope.Action})
	}
}

func (h *WebhookHandler) handleComment(c *gin.Context, body []byte) {
	submission, err := h.recordSubmission.Execute(c.Request.Context(), body)
	if errors.Is(err, service.ErrNoBlogURL) {
		response.SuccessResponse(c, http.StatusAccepted, gin.H{"status": "ignored", "reason": err.Error()})
		return
	}
	if err != nil && submission == nil {
		writeError(c, err)
		return
	}
	if err != nil {
		// stored, but the channel wasn't told
		h.log.Warn("submission notification failed", zap.Error(err))
	}

	response.SuccessResponse(c, http.StatusCreated, toSubmissionResponse(submission))
}

func (h *WebhookHandler) handleIssue(c *gin.Context, body []byte) {
	cycle, err := h.createCycle.Execute(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, toCycleResponse(cycle))
}
