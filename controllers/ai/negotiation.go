package aicontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/gemini"
)

type negotiationRequest struct {
	Product      string  `json:"product"`
	CurrentPrice float64 `json:"currentPrice"`
	TargetPrice  float64 `json:"targetPrice"`
	Language     string  `json:"language"`
}

// POST /api/negotiation-phrases
func NegotiationPhrases(c *gin.Context) {
	var req negotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Product == "" || req.CurrentPrice == 0 || req.TargetPrice == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product, current price, and target price are required"})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	if !gemini.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	phrases, aiPowered := gemini.GenerateNegotiationPhrases(
		c.Request.Context(), req.Product, req.CurrentPrice, req.TargetPrice, req.Language)

	c.JSON(http.StatusOK, gin.H{
		"phrases":      phrases,
		"product":      req.Product,
		"currentPrice": req.CurrentPrice,
		"targetPrice":  req.TargetPrice,
		"language":     req.Language,
		"aiPowered":    aiPowered,
		"success":      true,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
