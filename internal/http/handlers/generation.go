package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

type GenerationHandler struct {
	generationUsecase usecases.GenerationUsecase
}

func NewGenerationHandler(generationUsecase usecases.GenerationUsecase) *GenerationHandler {
	return &GenerationHandler{generationUsecase: generationUsecase}
}

// POST /api/v1/generations
func (h *GenerationHandler) Create(c *gin.Context) {
	var req dtos.GenerationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	generation, err := h.generationUsecase.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, toGenerationResponse(generation))
}

// GET /api/v1/generations
func (h *GenerationHandler) List(c *gin.Context) {
	generations, err := h.generationUsecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dtos.GenerationResponse, 0, len(generations))
	for i := range generations {
		out = append(out, toGenerationResponse(&generations[i]))
	}
	response.SuccessResponse(c, http.StatusOK, out)
}

// POST /api/v1/generations/:id/activate
func (h *GenerationHandler) Activate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	generation, err := h.generationUsecase.Activate(c.Request.Context(), domain.GenerationID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, toGenerationResponse(generation))
}
