package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"teamup.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	teamHandler       *handlers.TeamHandler
	membershipHandler *handlers.MembershipHandler
	invitationHandler *handlers.InvitationHandler
	authMiddleware    gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public, except /me)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Team routes (protected)
		teams := v1.Group("/teams")
		teams.Use(d.authMiddleware)
		{
			teams.POST("", d.teamHandler.CreateTeam)
			teams.GET("", d.teamHandler.ListTeams)
			teams.GET("/:id", d.teamHandler.GetTeam)
			teams.PUT("/:id", d.teamHandler.UpdateTeam)
			teams.DELETE("/:id", d.teamHandler.DeleteTeam)
		}

		// Membership routes (protected). No POST: memberships are created
		// by team creation and invitation acceptance only.
		memberships := v1.Group("/memberships")
		memberships.Use(d.authMiddleware)
		{
			memberships.GET("", d.membershipHandler.ListMemberships)
			memberships.PUT("/:id", d.membershipHandler.UpdateMembership)
			memberships.DELETE("/:id", d.membershipHandler.DeleteMembership)
		}

		// Invitation routes (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(d.authMiddleware)
		{
			invitations.POST("", d.invitationHandler.CreateInvitation)
			invitations.GET("", d.invitationHandler.ListInvitations)
			invitations.GET("/:id", d.invitationHandler.GetInvitation)
			invitations.POST("/:id/respond", d.invitationHandler.RespondInvitation)
		}
	}
}
