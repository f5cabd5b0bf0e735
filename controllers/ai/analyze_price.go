package aicontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/gemini"
)

type analyzePriceRequest struct {
	Product  string `json:"product"`
	Language string `json:"language"`
}

// POST /api/analyze-price
// Always answers 200 with a well-formed analysis; aiPowered/fallbackMode
// tell the caller which path produced it.
func AnalyzePrice(c *gin.Context) {
	var req analyzePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	analysis, aiPowered := gemini.AnalyzeProductPrice(c.Request.Context(), req.Product, req.Language)

	c.JSON(http.StatusOK, gin.H{
		"product":         analysis.Product,
		"fairPriceRange":  analysis.FairPriceRange,
		"confidence":      analysis.Confidence,
		"marketInsights":  analysis.MarketInsights,
		"negotiationTips": analysis.NegotiationTips,
		"nearbyMandis":    analysis.NearbyMandis,
		"success":         true,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"aiPowered":       aiPowered,
		"fallbackMode":    !aiPowered,
	})
}
