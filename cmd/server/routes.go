package main

import (
	"github.com/gin-gonic/gin"
	"keygate.backend/internal/interfaces/http/handlers"
	"keygate.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	accessKeyHandler      *handlers.AccessKeyHandler
	sessionAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/session", d.authHandler.GetSession)
			auth.POST("/logout", d.authHandler.Logout)
		}

		// Key management routes (admin sessions only)
		admin := v1.Group("/admin")
		admin.Use(d.sessionAuthMiddleware, middleware.RequireAdmin())
		{
			admin.POST("/generate-access-key", d.accessKeyHandler.GenerateAccessKey)
			admin.GET("/list-access-keys", d.accessKeyHandler.ListAccessKeys)
			admin.POST("/revoke", d.accessKeyHandler.RevokeAccessKey)
		}
	}
}
