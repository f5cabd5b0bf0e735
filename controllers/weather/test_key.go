package weathercontroller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// TestWeatherKey probes OpenWeatherMap with a known location so a deployer
// can check their key without crafting a real request. Always responds 200.
func TestWeatherKey(c *gin.Context) {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusOK, gin.H{
			"status":   "error",
			"message":  "WEATHER_API_KEY environment variable not found",
			"solution": "Add WEATHER_API_KEY to your environment",
		})
		return
	}

	log.Println("Testing weather API key...")
	resp, err := httpClient.Get(openWeatherBase + "/weather?q=London&appid=" + apiKey + "&units=metric")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Failed to test weather API key",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("API key test failed: %d %s", resp.StatusCode, resp.Status),
			"details": string(body),
			"solutions": []string{
				"Check if your API key is correct",
				"Wait up to 2 hours for new API keys to activate",
				"Verify your OpenWeatherMap account is active",
				"Make sure you copied the entire API key",
			},
		})
		return
	}

	var data owmCurrent
	if err := json.Unmarshal(body, &data); err != nil || len(data.Weather) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "error",
			"message": "Failed to test weather API key",
			"error":   "unexpected response from weather API",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Weather API key is working correctly!",
		"testLocation": fmt.Sprintf("%s, %s", data.Name, data.Sys.Country),
		"temperature":  fmt.Sprintf("%d°C", int(math.Round(data.Main.Temp))),
		"description":  data.Weather[0].Description,
	})
}
