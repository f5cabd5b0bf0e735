package healthcontroller

import (
	"context"
	"net/http"
	"time"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/gin-gonic/gin"
)

// DatabaseHealth pings MongoDB so deployments can verify connectivity.
func DatabaseHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Database connection failed",
		})
		return
	}

	database, err := db.Database()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database.Name(),
	})
}
