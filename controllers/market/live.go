package marketcontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/serp"
)

var serpClient = serp.NewClient()

type liveMarketRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// POST /api/live-market-data
// Runs the SERP acquisition pipeline for a voice/text commodity query.
func LiveMarketData(c *gin.Context) {
	var req liveMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	result, err := serpClient.Lookup(c.Request.Context(), req.Query, req.Location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "SERP API request failed. Please check your API key and try again.",
			"details": err.Error(),
		})
		return
	}

	message := fmt.Sprintf("Based on live market data, here's what I found for %q:", req.Query)
	if result.Fallback {
		message = fmt.Sprintf("I searched for %q but couldn't find specific price data. Here's general market information:", req.Query)
	}

	c.JSON(http.StatusOK, gin.H{
		"response":    message,
		"marketData":  result.Data,
		"source":      "SERP API",
		"fallback":    result.Fallback,
		"searchQuery": result.SearchQuery,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
