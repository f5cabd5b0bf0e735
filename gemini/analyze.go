package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
)

// PriceAnalysis is the market analysis returned for a single product.
type PriceAnalysis struct {
	Product         string       `json:"product"`
	FairPriceRange  PriceRange   `json:"fairPriceRange"`
	Confidence      int          `json:"confidence"`
	MarketInsights  []string     `json:"marketInsights"`
	NegotiationTips []string     `json:"negotiationTips"`
	NearbyMandis    []MandiPrice `json:"nearbyMandis"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type MandiPrice struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Distance string  `json:"distance"`
}

// Static fair price ranges (₹/kg) used when the model is unreachable or
// returns garbage.
var productPriceRanges = map[string]PriceRange{
	"tomatoes": {15, 35},
	"onions":   {20, 45},
	"potatoes": {12, 28},
	"rice":     {25, 60},
	"wheat":    {20, 35},
	"apples":   {80, 150},
	"bananas":  {30, 60},
	"carrots":  {25, 50},
	"cabbage":  {10, 25},
	"spinach":  {15, 30},
}

var defaultPriceRange = PriceRange{Min: 20, Max: 50}

// AnalyzeProductPrice asks Gemini for a full price analysis. The second
// return value reports whether the result is AI-sourced; a deterministic
// fallback is substituted on any model or parse failure.
func AnalyzeProductPrice(ctx context.Context, product, language string) (*PriceAnalysis, bool) {
	langName := LanguageName(language)

	prompt := fmt.Sprintf(`You are an AI assistant for Indian agricultural markets (mandis).
Analyze the product %q and provide comprehensive market insights.

Please provide a detailed analysis in %s language with realistic Indian market data.

Consider these factors:
- Current season and its impact on pricing
- Regional variations across India
- Quality grades and their price differences
- Transportation and storage costs
- Market demand patterns
- Wholesale vs retail pricing

Provide realistic prices in INR (Indian Rupees) per kg or per quintal as appropriate for the product.

Format your response as a JSON object with this exact structure:
{
  "product": "product name in %s",
  "fairPriceRange": {"min": realistic_minimum_price, "max": realistic_maximum_price},
  "confidence": confidence_score_between_75_and_95,
  "marketInsights": ["insight 1", "insight 2", "insight 3", "insight 4"],
  "negotiationTips": ["tip 1", "tip 2", "tip 3", "tip 4"],
  "nearbyMandis": [
    {"name": "realistic mandi name", "price": realistic_price, "distance": "X km"},
    {"name": "realistic mandi name", "price": realistic_price, "distance": "X km"},
    {"name": "realistic mandi name", "price": realistic_price, "distance": "X km"}
  ]
}

Make sure all prices are realistic for current Indian markets and the confidence score reflects actual market conditions.`, product, langName, langName)

	text, err := Generate(ctx, prompt)
	if err != nil {
		log.Printf("Price analysis error: %v", err)
		return fallbackAnalysis(product), false
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		log.Printf("Price analysis parse error: %v", err)
		return fallbackAnalysis(product), false
	}

	var analysis PriceAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		log.Printf("Price analysis JSON error: %v", err)
		return fallbackAnalysis(product), false
	}

	if analysis.Product == "" || analysis.FairPriceRange.Max <= 0 || analysis.Confidence <= 0 {
		return fallbackAnalysis(product), false
	}

	// Clamp confidence into the advertised band.
	analysis.Confidence = int(math.Min(95, math.Max(75, float64(analysis.Confidence))))
	return &analysis, true
}

func fallbackAnalysis(product string) *PriceAnalysis {
	priceRange, ok := productPriceRanges[strings.ToLower(product)]
	if !ok {
		priceRange = defaultPriceRange
	}

	mid := math.Round((priceRange.Min + priceRange.Max) / 2)

	return &PriceAnalysis{
		Product:        product,
		FairPriceRange: priceRange,
		Confidence:     85,
		MarketInsights: []string{
			"Market analysis based on historical data and current trends",
			"Seasonal factors are affecting current pricing patterns",
			"Quality variations impact final pricing significantly",
			"Regional variations may affect final pricing by 10-20%",
		},
		NegotiationTips: []string{
			"Research current market rates before starting negotiations",
			"Emphasize product quality and freshness in discussions",
			"Consider offering bulk discounts for larger purchases",
			"Build long-term vendor relationships for better rates",
		},
		NearbyMandis: []MandiPrice{
			{Name: "Central Wholesale Mandi", Price: mid, Distance: "2.5 km"},
			{Name: "Wholesale Trading Center", Price: math.Round(priceRange.Max * 0.92), Distance: "3.5 km"},
			{Name: "Local Farmers Market", Price: math.Round(priceRange.Min * 1.12), Distance: "2.8 km"},
		},
	}
}
