package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

type CycleHandler struct {
	cycleUsecase    usecases.CycleUsecase
	statusUsecase   usecases.GetCycleStatusUsecase
	reminderUsecase usecases.SendReminderNotificationUsecase
}

func NewCycleHandler(cycleUsecase usecases.CycleUsecase, statusUsecase usecases.GetCycleStatusUsecase,
	reminderUsecase usecases.SendReminderNotificationUsecase) *CycleHandler {
	return &CycleHandler{
		cycleUsecase:    cycleUsecase,
		statusUsecase:   statusUsecase,
		reminderUsecase: reminderUsecase,
	}
}

// POST /api/v1/cycles
func (h *CycleHandler) Create(c *gin.Context) {
	var req dtos.CycleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cycle, err := h.cycleUsecase.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, toCycleResponse(cycle))
}

// GET /api/v1/cycles?generation_id=
func (h *CycleHandler) List(c *gin.Context) {
	generationID, err := strconv.ParseUint(c.Query("generation_id"), 10, 64)
	if err != nil || generationID == 0 {
		response.ErrorResponse(c, http.StatusBadRequest, codeInvalidRequest, "generation_id query parameter is required")
		return
	}

	cycles, err := h.cycleUsecase.ListByGeneration(c.Request.Context(), domain.GenerationID(generationID))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dtos.CycleResponse, 0, len(cycles))
	for i := range cycles {
		out = append(out, toCycleResponse(&cycles[i]))
	}
	response.SuccessResponse(c, http.StatusOK, out)
}

// GET /api/v1/cycles/:id/status
func (h *CycleHandler) Status(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, err := h.statusUsecase.Get(c.Request.Context(), domain.CycleID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, status)
}

// GET /api/v1/cycles/current/status
func (h *CycleHandler) CurrentStatus(c *gin.Context) {
	status, err := h.statusUsecase.Current(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, status)
}

// POST /api/v1/cycles/:id/status/notify
func (h *CycleHandler) NotifyStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, err := h.statusUsecase.Notify(c.Request.Context(), domain.CycleID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, status)
}

// POST /api/v1/cycles/:id/remind
func (h *CycleHandler) Remind(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	notified, err := h.reminderUsecase.Execute(c.Request.Context(), domain.CycleID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusAccepted, gin.H{"cycle_id": id, "notified": notified})
}
