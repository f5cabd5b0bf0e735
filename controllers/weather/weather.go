package weathercontroller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

const openWeatherBase = "https://api.openweathermap.org/data/2.5"

var httpClient = &http.Client{Timeout: 15 * time.Second}

type owmCurrent struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type owmForecast struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// GetWeather returns current conditions, a short forecast, and agricultural
// insights for a location name or a lat/lon pair.
func GetWeather(c *gin.Context) {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Weather API key not configured. Please add WEATHER_API_KEY to your environment variables."})
		return
	}

	location := c.Query("location")
	lat := c.Query("lat")
	lon := c.Query("lon")

	// 1️⃣ Build the query, preferring coordinates when provided
	params := url.Values{}
	params.Set("appid", apiKey)
	params.Set("units", "metric")
	switch {
	case lat != "" && lon != "":
		params.Set("lat", lat)
		params.Set("lon", lon)
	case location != "":
		params.Set("q", location)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location or coordinates required"})
		return
	}

	// 2️⃣ Current conditions
	resp, err := httpClient.Get(openWeatherBase + "/weather?" + params.Encode())
	if err != nil {
		log.Println("Weather API request failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API error: status=%d body=%s", resp.StatusCode, string(body))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid API key. Please check your OpenWeatherMap API key.",
				"details": "Make sure your API key is correct and activated (can take up to 2 hours after signup)",
				"status":  http.StatusUnauthorized,
			})
		case http.StatusNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found. Please check the location name and try again."})
		default:
			c.JSON(resp.StatusCode, gin.H{
				"error":   fmt.Sprintf("Weather API error: %d %s", resp.StatusCode, resp.Status),
				"details": string(body),
			})
		}
		return
	}

	var current owmCurrent
	if err := json.Unmarshal(body, &current); err != nil || len(current.Weather) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	// 3️⃣ 5-day/3-hour forecast, best effort
	forecast := fetchForecast(params)

	// 4️⃣ Shape the response
	var visibilityKm interface{}
	if current.Visibility > 0 {
		visibilityKm = int(math.Round(float64(current.Visibility) / 1000))
	}

	c.JSON(http.StatusOK, gin.H{
		"location": gin.H{
			"name":    current.Name,
			"country": current.Sys.Country,
			"coordinates": gin.H{
				"lat": current.Coord.Lat,
				"lon": current.Coord.Lon,
			},
		},
		"current": gin.H{
			"temperature":   int(math.Round(current.Main.Temp)),
			"feelsLike":     int(math.Round(current.Main.FeelsLike)),
			"humidity":      current.Main.Humidity,
			"pressure":      current.Main.Pressure,
			"visibility":    visibilityKm,
			"uvIndex":       nil,
			"windSpeed":     current.Wind.Speed,
			"windDirection": current.Wind.Deg,
			"description":   current.Weather[0].Description,
			"icon":          current.Weather[0].Icon,
			"cloudiness":    current.Clouds.All,
			"sunrise":       time.Unix(current.Sys.Sunrise, 0).Format("3:04:05 PM"),
			"sunset":        time.Unix(current.Sys.Sunset, 0).Format("3:04:05 PM"),
		},
		"forecast":             forecast,
		"agriculturalInsights": GenerateInsights(current.Main.Temp, current.Main.Humidity, current.Wind.Speed, current.Weather[0].Main),
		"lastUpdated":          time.Now().UTC().Format(time.RFC3339),
	})
}

// fetchForecast returns up to the next 8 forecast slots, or an empty slice
// when the forecast endpoint fails.
func fetchForecast(params url.Values) []gin.H {
	out := []gin.H{}

	resp, err := httpClient.Get(openWeatherBase + "/forecast?" + params.Encode())
	if err != nil {
		log.Println("Forecast API failed, continuing without forecast data:", err)
		return out
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("Forecast API failed, continuing without forecast data")
		return out
	}

	var fc owmForecast
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return out
	}

	for i, item := range fc.List {
		if i >= 8 {
			break
		}
		entry := gin.H{
			"time":        time.Unix(item.Dt, 0).Format("1/2/2006, 3:04:05 PM"),
			"temperature": int(math.Round(item.Main.Temp)),
			"humidity":    item.Main.Humidity,
			"windSpeed":   item.Wind.Speed,
		}
		if len(item.Weather) > 0 {
			entry["description"] = item.Weather[0].Description
			entry["icon"] = item.Weather[0].Icon
		}
		out = append(out, entry)
	}
	return out
}
