package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
	"github.com/just-nibble/cycle-tracker/pkg/response"
)

type MemberHandler struct {
	memberUsecase usecases.MemberUsecase
}

func NewMemberHandler(memberUsecase usecases.MemberUsecase) *MemberHandler {
	return &MemberHandler{memberUsecase: memberUsecase}
}

// POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req dtos.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.memberUsecase.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusCreated, toMemberResponse(member))
}

// GET /api/v1/members?page=&limit=
func (h *MemberHandler) List(c *gin.Context) {
	page := repository.Page{}
	page.Number, _ = strconv.Atoi(c.Query("page"))
	page.Limit, _ = strconv.Atoi(c.Query("limit"))

	members, info, err := h.memberUsecase.List(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, dtos.MultiMembersResponse{
		Members:  toMemberResponses(members),
		PageInfo: toPagingInfo(info),
	})
}

// GET /api/v1/generations/:id/members
func (h *MemberHandler) ListByGeneration(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	members, err := h.memberUsecase.ListByGeneration(c.Request.Context(), domain.GenerationID(id))
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, http.StatusOK, toMemberResponses(members))
}

// POST /api/v1/generations/:id/members
func (h *MemberHandler) Join(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dtos.JoinGenerationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.memberUsecase.Join(c.Request.Context(), domain.GenerationID(id), domain.MemberID(req.MemberID)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
