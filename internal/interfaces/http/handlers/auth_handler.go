package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"teamup.backend/internal/domain/entities"
	domainerrors "teamup.backend/internal/domain/errors"
	"teamup.backend/internal/interfaces/http/middleware"
	"teamup.backend/internal/interfaces/http/response"
	"teamup.backend/internal/usecases"
	"teamup.backend/pkg/crypto"
	"teamup.backend/pkg/redis"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("Email or username already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", domainerrors.ErrInvalidCredentials))
			return
		}
		response.Error(c, err)
		return
	}

	if input.UseSession {
		sessionID, err := crypto.GenerateRandomToken(16)
		if err != nil {
			response.Error(c, err)
			return
		}
		data := &redis.SessionData{
			AccessToken:  authResponse.AccessToken,
			RefreshToken: authResponse.RefreshToken,
		}
		if err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, data, 24*time.Hour); err != nil {
			response.Error(c, err)
			return
		}
		authResponse.SessionID = sessionID
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  authResponse.AccessToken,
		"refreshToken": authResponse.RefreshToken,
		"sessionId":    authResponse.SessionID,
		"user": gin.H{
			"id":       authResponse.User.ID,
			"username": authResponse.User.Username,
			"email":    authResponse.User.Email,
		},
	})
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid refresh token"))
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// GetMe returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
