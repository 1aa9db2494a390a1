package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

const maxHoursBefore = 24 * 30

type DeadlineHandler struct {
	deadlinesUsecase usecases.FindUpcomingDeadlinesUsecase
	defaultHours     int
}

func NewDeadlineHandler(deadlinesUsecase usecases.FindUpcomingDeadlinesUsecase, defaultHours int) *DeadlineHandler {
	return &DeadlineHandler{deadlinesUsecase: deadlinesUsecase, defaultHours: defaultHours}
}

// GET /api/v1/deadlines?hours=
func (h *DeadlineHandler) Upcoming(c *gin.Context) {
	hours := h.defaultHours
	if raw := c.Query("hours"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxHoursBefore {
			response.ErrorResponse(c, http.StatusBadRequest, codeInvalidRequest, "hours must be between 1 and 720")
			return
		}
		hours = n
	}

	deadlines, err := h.deadlinesUsecase.Execute(c.Request.Context(), hours)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, deadlines)
}
