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

// TeamHandler handles team endpoints
type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// CreateTeam creates a team; the caller becomes its captain.
// POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("A team with this name already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Team created",
		"team":    team,
	})
}

// ListTeams returns teams the caller is a member of.
// GET /api/v1/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	items, err := h.teamUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetTeam returns one team, members only.
// GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	team, err := h.teamUsecase.Get(c.Request.Context(), userID, teamID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// UpdateTeam updates a team; captains only.
// PUT /api/v1/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	var input entities.UpdateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Update(c.Request.Context(), userID, teamID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("team not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("only a captain can update the team"))
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.Conflict("A team with this name already exists"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Team updated",
		"team":    team,
	})
}

// DeleteTeam deletes a team and cascades to memberships and invitations;
// captains only.
// DELETE /api/v1/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	if err := h.teamUsecase.Delete(c.Request.Context(), userID, teamID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("team not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("only a captain can delete the team"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Team deleted"})
}
