package aicontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/gemini"
)

type marketDataRequest struct {
	Market   string `json:"market"`
	Location string `json:"location"`
}

// GET /api/market-data?market=...&location=...
// Kept for quick manual testing; defaults mirror the POST behavior.
func MarketDataGet(c *gin.Context) {
	market := c.DefaultQuery("market", "Local Mandi")
	location := c.DefaultQuery("location", "India")
	respondMarketData(c, market, location)
}

// POST /api/market-data
func MarketDataPost(c *gin.Context) {
	var req marketDataRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Market == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Market name is required"})
		return
	}
	respondMarketData(c, req.Market, req.Location)
}

func respondMarketData(c *gin.Context, market, location string) {
	payload, aiPowered := gemini.MarketData(c.Request.Context(), market, location)

	c.JSON(http.StatusOK, gin.H{
		"data":      payload,
		"aiPowered": aiPowered,
	})
}
