package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

type SyncHandler struct {
	syncUsecase usecases.SyncSubmissionsUsecase
}

func NewSyncHandler(syncUsecase usecases.SyncSubmissionsUsecase) *SyncHandler {
	return &SyncHandler{syncUsecase: syncUsecase}
}

// POST /api/v1/cycles/:id/sync
func (h *SyncHandler) Sync(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.syncUsecase.Execute(c.Request.Context(), domain.CycleID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, result)
}
