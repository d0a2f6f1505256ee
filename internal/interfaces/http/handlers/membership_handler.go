package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/interfaces/http/middleware"
	"teamup.backend/internal/interfaces/http/response"
	"teamup.backend/internal/usecases"
)

// MembershipHandler handles membership endpoints. There is no create
// endpoint: memberships appear through team creation and invitation
// acceptance only.
type MembershipHandler struct {
	membershipUsecase *usecases.MembershipUsecase
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipUsecase *usecases.MembershipUsecase) *MembershipHandler {
	return &MembershipHandler{membershipUsecase: membershipUsecase}
}

// ListMemberships lists memberships, optionally filtered by team.
// GET /api/v1/memberships?team_id=<uuid>
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid team_id"))
			return
		}
		teamID = &id
	}

	items, err := h.membershipUsecase.List(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// UpdateMembership changes a member's role; captains of the team only.
// PUT /api/v1/memberships/:id
func (h *MembershipHandler) UpdateMembership(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid membership ID"))
		return
	}

	var input entities.UpdateMembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	membership, err := h.membershipUsecase.UpdateRole(c.Request.Context(), userID, membershipID, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("membership not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("only a team captain can change roles"))
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Error(c, domainerrors.BadRequest("invalid role"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":    "Membership updated",
		"membership": membership,
	})
}

// DeleteMembership removes a member; a team captain, or the member
// themselves, may do it.
// DELETE /api/v1/memberships/:id
func (h *MembershipHandler) DeleteMembership(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid membership ID"))
		return
	}

	if err := h.membershipUsecase.Remove(c.Request.Context(), userID, membershipID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("membership not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("only a team captain can remove other members"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Membership removed"})
}
