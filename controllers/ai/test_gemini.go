package aicontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/gemini"
)

// Candidate model names, probed in order.
var testModels = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash-latest"}

// GET /api/test-gemini
// Diagnostic: reports the first model that answers a trivial prompt.
func TestGemini(c *gin.Context) {
	if !gemini.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not found"})
		return
	}

	for _, model := range testModels {
		text, err := gemini.GenerateWithModel(c.Request.Context(), model, "Say hello")
		if err != nil {
			log.Printf("Model %s failed: %v", model, err)
			continue
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"model":    model,
			"response": text,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "All models failed"})
}
