package routes

import (
	"github.com/Naren1520/Vanijya-Ai/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		// Google sign-in (wrapped as a Gin handler)
		authGroup.POST("/google", func(c *gin.Context) {
			auth.GoogleLoginHandler(c.Writer, c.Request)
		})
	}
}
