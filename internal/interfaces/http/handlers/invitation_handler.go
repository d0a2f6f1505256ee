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

// InvitationHandler handles invitation endpoints
type InvitationHandler struct {
	invitationUsecase *usecases.InvitationUsecase
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitationUsecase *usecases.InvitationUsecase) *InvitationHandler {
	return &InvitationHandler{invitationUsecase: invitationUsecase}
}

// CreateInvitation sends an invitation; team members only. The sender is the
// authenticated user, never a payload field.
// POST /api/v1/invitations
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invitation, err := h.invitationUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("team not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("only team members can send invitations"))
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.Conflict("a pending invitation for this email already exists"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "Invitation sent",
		"invitation": invitation,
	})
}

// ListInvitations lists invitations the caller sent or received.
// GET /api/v1/invitations
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	items, err := h.invitationUsecase.List(c.Request.Context(), userID, email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetInvitation returns one invitation under the list visibility predicate.
// GET /api/v1/invitations/:id
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invitation ID"))
		return
	}

	invitation, err := h.invitationUsecase.Get(c.Request.Context(), userID, email, invitationID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("invitation not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invitation": invitation})
}

// RespondInvitation accepts or rejects a pending invitation; addressee only.
// POST /api/v1/invitations/:id/respond
func (h *InvitationHandler) RespondInvitation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid invitation ID"))
		return
	}

	var input entities.RespondInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.invitationUsecase.Respond(c.Request.Context(), userID, email, invitationID, input.Action)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("invitation not found"))
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Error(c, domainerrors.BadRequest("action must be accept or reject"))
		case errors.Is(err, domainerrors.ErrInvalidState):
			response.Error(c, domainerrors.Conflict("invitation has already been resolved"))
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.Conflict("user is already a member of this team"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
