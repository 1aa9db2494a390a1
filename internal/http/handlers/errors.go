package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/service"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
	"github.com/just-nibble/cycle-tracker/pkg/github"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

const (
	codeNotFound       = "NOT_FOUND"
	codeConflict       = "CONFLICT"
	codeInvalidPayload = "INVALID_PAYLOAD"
	codeInvalidRequest = "INVALID_REQUEST"
	codeInternal       = "INTERNAL_ERROR"
	codeUpstream       = "UPSTREAM_UNAVAILABLE"
	codeNotEligible    = "NOT_ELIGIBLE"
)

// writeError maps use-case and domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	if de, ok := domain.AsDomainError(err); ok {
		response.ErrorResponse(c, http.StatusBadRequest, de.Code, de.Message)
		return
	}

	switch {
	case errors.Is(err, usecases.ErrCycleNotFound),
		errors.Is(err, usecases.ErrMemberNotFound),
		errors.Is(err, usecases.ErrGenerationNotFound),
		errors.Is(err, usecases.ErrNoActiveGeneration),
		errors.Is(err, errcodes.ErrNoRecordFound):
		response.ErrorResponse(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, usecases.ErrDuplicateSubmission),
		errors.Is(err, usecases.ErrMemberExists),
		errors.Is(err, usecases.ErrCycleExists),
		errors.Is(err, errcodes.ErrDuplicateRecord):
		response.ErrorResponse(c, http.StatusConflict, codeConflict, err.Error())
	case errors.Is(err, usecases.ErrInvalidGithubUsername),
		errors.Is(err, usecases.ErrInvalidIssueURL),
		errors.Is(err, usecases.ErrCycleHasNoIssue):
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	case errors.Is(err, usecases.ErrOutsideCycleWindow),
		errors.Is(err, usecases.ErrMemberNotInGeneration):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, codeNotEligible, err.Error())
	case errors.Is(err, service.ErrInvalidPayload):
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidPayload, err.Error())
	case errors.Is(err, github.ErrRateLimited):
		response.ErrorResponse(c, http.StatusServiceUnavailable, codeUpstream, err.Error())
	default:
		_ = c.Error(err)
		response.ErrorResponse(c, http.StatusInternalServerError, codeInternal, "something went wrong")
	}
}

func bindError(c *gin.Context, err error) {
	response.ErrorResponse(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
