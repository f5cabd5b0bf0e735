package weathercontroller

import "strings"

// Insight is one advisory message derived from current conditions.
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// GenerateInsights maps current conditions to a fixed set of agricultural
// advisories via threshold checks. Temperature in °C, wind speed in m/s.
func GenerateInsights(temp, humidity, windSpeed float64, condition string) []Insight {
	condition = strings.ToLower(condition)

	var insights []Insight

	// Temperature
	switch {
	case temp > 35:
		insights = append(insights, Insight{
			Type:    "warning",
			Title:   "High Temperature Alert",
			Message: "Extreme heat may stress crops. Ensure adequate irrigation and consider shade protection for sensitive plants.",
			Icon:    "🌡️",
		})
	case temp < 5:
		insights = append(insights, Insight{
			Type:    "warning",
			Title:   "Cold Weather Alert",
			Message: "Low temperatures may damage crops. Consider frost protection measures for sensitive plants.",
			Icon:    "❄️",
		})
	case temp >= 20 && temp <= 30:
		insights = append(insights, Insight{
			Type:    "positive",
			Title:   "Optimal Temperature",
			Message: "Current temperature is ideal for most crop growth and outdoor farming activities.",
			Icon:    "🌱",
		})
	}

	// Humidity
	if humidity > 80 {
		insights = append(insights, Insight{
			Type:    "warning",
			Title:   "High Humidity",
			Message: "High humidity increases risk of fungal diseases. Ensure good air circulation and consider fungicide application.",
			Icon:    "💧",
		})
	} else if humidity < 30 {
		insights = append(insights, Insight{
			Type:    "info",
			Title:   "Low Humidity",
			Message: "Low humidity may increase water stress. Monitor soil moisture and increase irrigation frequency.",
			Icon:    "🏜️",
		})
	}

	// Condition keywords
	if strings.Contains(condition, "rain") {
		insights = append(insights, Insight{
			Type:    "info",
			Title:   "Rainfall Detected",
			Message: "Good for soil moisture but avoid heavy machinery use. Check for waterlogging in low-lying areas.",
			Icon:    "🌧️",
		})
	} else if strings.Contains(condition, "clear") || strings.Contains(condition, "sun") {
		insights = append(insights, Insight{
			Type:    "positive",
			Title:   "Clear Weather",
			Message: "Excellent conditions for harvesting, spraying, and other field operations.",
			Icon:    "☀️",
		})
	}

	// Wind
	if windSpeed > 10 {
		insights = append(insights, Insight{
			Type:    "warning",
			Title:   "Strong Winds",
			Message: "High winds may damage crops and make spraying ineffective. Postpone aerial applications.",
			Icon:    "💨",
		})
	}

	// Always present
	insights = append(insights, Insight{
		Type:    "info",
		Title:   "Market Impact",
		Message: "Weather conditions directly affect crop quality and market prices. Plan harvesting and storage accordingly.",
		Icon:    "📈",
	})

	return insights
}
