package serp

import "time"

// Static base prices (₹/kg) used when extraction yields nothing.
var fallbackPrices = map[string]float64{
	"tomato": 45, "onion": 35, "potato": 25, "rice": 55, "wheat": 28,
	"carrot": 40, "cabbage": 20, "spinach": 30, "apple": 120, "banana": 40,
	"mango": 80, "grapes": 100, "cauliflower": 35, "brinjal": 30, "okra": 50,
}

const defaultFallbackPrice = 50

// FallbackSource marks synthesized data points so callers can tell them
// apart from extracted ones.
const FallbackSource = "Market Intelligence (Fallback)"

// Fallback fabricates a single clearly-labeled estimate for the query when
// the search yielded no extractable prices.
func Fallback(query, location string) []DataPoint {
	commodity := ExtractCommodity(query)
	if commodity == "" {
		commodity = "Market Commodity"
	}

	basePrice, ok := fallbackPrices[commodity]
	if !ok {
		basePrice = defaultFallbackPrice
	}

	market := location
	if market == "" {
		market = "Local Market"
	}

	return []DataPoint{{
		Commodity:  titleCase(commodity),
		Price:      basePrice,
		Change:     RealisticChange(commodity),
		Market:     market,
		Source:     FallbackSource,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Confidence: "low",
		Note:       "Search did not return specific price data. This is estimated market information.",
	}}
}
