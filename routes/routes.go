package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry‐point that wires up Auth and API route groups.
func SetupRoutes(r *gin.Engine) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ API routes (public + JWT‐protected)
	SetupAPIRoutes(r)
}
