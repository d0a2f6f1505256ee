package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"teamup.backend/internal/domain/entities"
	infrarepos "teamup.backend/internal/infrastructure/repositories"
	"teamup.backend/internal/interfaces/http/middleware"
	"teamup.backend/internal/usecases"
	"teamup.backend/pkg/crypto"
	"teamup.backend/pkg/jwt"
	"teamup.backend/pkg/utils"
)

// testEnv wires the full stack (handlers down to sqlite) behind a gin router,
// so tests exercise the same paths production requests take.
type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwt.JWTService

	userRepo       *infrarepos.UserRepository
	teamRepo       *infrarepos.TeamRepository
	membershipRepo *infrarepos.MembershipRepository
	invitationRepo *infrarepos.InvitationRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		);`,
		`CREATE TABLE teams (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			foundation_year INTEGER NOT NULL,
			team_type TEXT NOT NULL,
			is_graduated BOOLEAN NOT NULL DEFAULT false,
			education_level TEXT NOT NULL,
			school_type TEXT NOT NULL,
			school_name TEXT NOT NULL,
			country TEXT NOT NULL,
			city TEXT NOT NULL,
			district TEXT NOT NULL,
			description TEXT NOT NULL,
			intro_file_url TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		);`,
		`CREATE TABLE memberships (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			team_id TEXT NOT NULL,
			role TEXT NOT NULL,
			joined_at DATETIME NOT NULL,
			UNIQUE (user_id, team_id)
		);`,
		`CREATE TABLE invitations (
			id TEXT PRIMARY KEY,
			sender_id TEXT NOT NULL,
			email TEXT NOT NULL,
			team_id TEXT NOT NULL,
			role TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME
		);`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	userRepo := infrarepos.NewUserRepository(db)
	teamRepo := infrarepos.NewTeamRepository(db)
	membershipRepo := infrarepos.NewMembershipRepository(db)
	invitationRepo := infrarepos.NewInvitationRepository(db)
	uow := infrarepos.NewUnitOfWork(db)

	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, membershipRepo, invitationRepo, uow)
	membershipUsecase := usecases.NewMembershipUsecase(membershipRepo)
	invitationUsecase := usecases.NewInvitationUsecase(invitationRepo, membershipRepo, teamRepo, uow)

	authHandler := NewAuthHandler(authUsecase, nil)
	teamHandler := NewTeamHandler(teamUsecase)
	membershipHandler := NewMembershipHandler(membershipUsecase)
	invitationHandler := NewInvitationHandler(invitationUsecase)
	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.GET("/me", authMiddleware, authHandler.GetMe)

	teams := v1.Group("/teams", authMiddleware)
	teams.POST("", teamHandler.CreateTeam)
	teams.GET("", teamHandler.ListTeams)
	teams.GET("/:id", teamHandler.GetTeam)
	teams.PUT("/:id", teamHandler.UpdateTeam)
	teams.DELETE("/:id", teamHandler.DeleteTeam)

	memberships := v1.Group("/memberships", authMiddleware)
	memberships.GET("", membershipHandler.ListMemberships)
	memberships.PUT("/:id", membershipHandler.UpdateMembership)
	memberships.DELETE("/:id", membershipHandler.DeleteMembership)

	invitations := v1.Group("/invitations", authMiddleware)
	invitations.POST("", invitationHandler.CreateInvitation)
	invitations.GET("", invitationHandler.ListInvitations)
	invitations.GET("/:id", invitationHandler.GetInvitation)
	invitations.POST("/:id/respond", invitationHandler.RespondInvitation)

	return &testEnv{
		router:         r,
		db:             db,
		jwtService:     jwtService,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
	}
}

// createUser inserts a user directly and returns it with a valid access token.
func (e *testEnv) createUser(t *testing.T, username, email string) (*entities.User, string) {
	t.Helper()
	hash, err := crypto.HashPassword("password123")
	require.NoError(t, err)
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	require.NoError(t, e.userRepo.Create(context.Background(), user))

	pair, err := e.jwtService.GenerateTokenPair(user.ID, user.Username, user.Email)
	require.NoError(t, err)
	return user, pair.AccessToken
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func validTeamPayload(name string) gin.H {
	return gin.H{
		"name":           name,
		"foundationYear": 2018,
		"teamType":       "student_club",
		"educationLevel": "high_school",
		"schoolType":     "public",
		"schoolName":     "Riverside High",
		"country":        "Turkey",
		"city":           "Ankara",
		"district":       "Cankaya",
		"description":    "Robotics club",
	}
}
