package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"
)

// MarketSnapshot is the broad per-mandi report shown on the dashboard. When
// the model answers with valid JSON that payload is passed through as-is;
// otherwise a synthesized snapshot with this shape is returned.
type MarketSnapshot struct {
	MarketName      string            `json:"marketName"`
	Location        string            `json:"location"`
	LastUpdated     string            `json:"lastUpdated"`
	MarketAnalysis  MarketAnalysis    `json:"marketAnalysis"`
	Commodities     []CommodityReport `json:"commodities"`
	AIInsights      AIInsights        `json:"aiInsights"`
	NearbyMarkets   []NearbyMarket    `json:"nearbyMarkets"`
	WeatherImpact   WeatherImpact     `json:"weatherImpact"`
	EconomicFactors EconomicFactors   `json:"economicFactors"`
}

type MarketAnalysis struct {
	OverallCondition  string `json:"overallCondition"`
	SeasonalFactors   string `json:"seasonalFactors"`
	SupplyChainStatus string `json:"supplyChainStatus"`
	DemandPatterns    string `json:"demandPatterns"`
}

type CommodityReport struct {
	Name           string        `json:"name"`
	CurrentPrice   float64       `json:"currentPrice"`
	Unit           string        `json:"unit"`
	Category       string        `json:"category"`
	WeeklyTrend    []TrendPoint  `json:"weeklyTrend"`
	PriceAnalysis  PriceMovement `json:"priceAnalysis"`
	DemandLevel    string        `json:"demandLevel"`
	QualityGrade   string        `json:"qualityGrade"`
	SeasonalImpact string        `json:"seasonalImpact"`
	SupplyStatus   string        `json:"supplyStatus"`
}

type TrendPoint struct {
	Day     string  `json:"day"`
	Price   float64 `json:"price"`
	Factors string  `json:"factors,omitempty"`
}

type PriceMovement struct {
	ChangePercentage string   `json:"changePercentage"`
	ChangeReason     string   `json:"changeReason"`
	MarketForces     []string `json:"marketForces"`
	FutureOutlook    string   `json:"futureOutlook"`
}

type AIInsights struct {
	MarketSentiment  string        `json:"marketSentiment"`
	TodayHighlight   string        `json:"todayHighlight"`
	WeeklyPrediction string        `json:"weeklyPrediction"`
	BestSellingTime  string        `json:"bestSellingTime"`
	PriceDrivers     []PriceDriver `json:"priceDrivers"`
	RiskFactors      []RiskFactor  `json:"riskFactors"`
	Opportunities    []Opportunity `json:"opportunities"`
	StrategicAdvice  string        `json:"strategicAdvice"`
}

type PriceDriver struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"`
	Explanation string `json:"explanation"`
}

type RiskFactor struct {
	Risk        string `json:"risk"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

type Opportunity struct {
	Opportunity string `json:"opportunity"`
	Timeframe   string `json:"timeframe"`
	Potential   string `json:"potential"`
}

type NearbyMarket struct {
	Name               string `json:"name"`
	Distance           string `json:"distance"`
	AvgPriceDifference string `json:"avgPriceDifference"`
	Speciality         string `json:"speciality"`
	Advantages         string `json:"advantages"`
	TransportCost      string `json:"transportCost"`
}

type WeatherImpact struct {
	CurrentConditions string `json:"currentConditions"`
	Forecast          string `json:"forecast"`
	SeasonalTrends    string `json:"seasonalTrends"`
}

type EconomicFactors struct {
	Inflation          string `json:"inflation"`
	FuelPrices         string `json:"fuelPrices"`
	GovernmentPolicies string `json:"governmentPolicies"`
	ExportImportTrends string `json:"exportImportTrends"`
}

// MarketData asks Gemini for a market snapshot and validates the parsed
// payload for the keys the dashboard needs. Any failure yields a synthesized
// snapshot; the bool reports which path was taken.
func MarketData(ctx context.Context, market, location string) (interface{}, bool) {
	prompt := fmt.Sprintf("Generate market data for %s in JSON format with commodities, prices, and insights. Keep it realistic for Indian markets. The JSON object must contain marketName, marketAnalysis, commodities (array), aiInsights and nearbyMarkets.", market)

	text, err := Generate(ctx, prompt)
	if err != nil {
		log.Printf("Market data error: %v", err)
		return fallbackMarketData(market, location), false
	}

	raw, err := ExtractJSONObject(text)
	if err != nil {
		log.Printf("Market data parse error: %v", err)
		return fallbackMarketData(market, location), false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("Market data JSON error: %v", err)
		return fallbackMarketData(market, location), false
	}

	commodities, ok := payload["commodities"].([]interface{})
	if !ok || len(commodities) == 0 {
		return fallbackMarketData(market, location), false
	}
	if payload["aiInsights"] == nil || payload["marketAnalysis"] == nil {
		return fallbackMarketData(market, location), false
	}

	return payload, true
}

type commodityTemplate struct {
	name      string
	basePrice float64
	category  string
	seasonal  string
}

var commodityTemplates = []commodityTemplate{
	{"Tomato", 45, "vegetable", "winter"},
	{"Onion", 35, "vegetable", "storage"},
	{"Potato", 25, "vegetable", "harvest"},
	{"Rice", 55, "grain", "post-harvest"},
	{"Wheat", 28, "grain", "rabi"},
	{"Apple", 120, "fruit", "winter"},
	{"Banana", 40, "fruit", "year-round"},
	{"Cauliflower", 35, "vegetable", "winter"},
}

// fallbackMarketData synthesizes a complete snapshot. Prices and nearby
// distances are presentation filler; the caller labels the whole payload as
// not AI-sourced.
func fallbackMarketData(market, location string) *MarketSnapshot {
	if location == "" {
		location = "India"
	}

	commodities := make([]CommodityReport, 0, len(commodityTemplates))
	for _, tpl := range commodityTemplates {
		currentPrice := dynamicPrice(tpl.basePrice, market)
		changePct := (currentPrice - tpl.basePrice) / tpl.basePrice * 100

		sign := ""
		if changePct > 0 {
			sign = "+"
		}

		outlook := "remain stable"
		if rand.Float64() > 0.5 {
			outlook = "show minor fluctuations"
		}

		commodities = append(commodities, CommodityReport{
			Name:         tpl.name,
			CurrentPrice: currentPrice,
			Unit:         "kg",
			Category:     tpl.category,
			WeeklyTrend:  weeklyTrend(currentPrice),
			PriceAnalysis: PriceMovement{
				ChangePercentage: fmt.Sprintf("%s%.1f%%", sign, changePct),
				ChangeReason:     fmt.Sprintf("Price influenced by %s season factors, local supply conditions, and market-specific demand patterns in %s", tpl.seasonal, market),
				MarketForces: []string{
					tpl.seasonal + " seasonal impact",
					"Local supply dynamics",
					"Transportation costs",
					"Market demand patterns",
				},
				FutureOutlook: fmt.Sprintf("Prices expected to %s based on seasonal trends and supply forecasts", outlook),
			},
			DemandLevel:    pick("high", "medium", "low"),
			QualityGrade:   pick("A", "B", "C"),
			SeasonalImpact: tpl.seasonal + " season affecting supply and quality patterns",
			SupplyStatus:   pick("Adequate", "Good", "Limited") + " supply with regional variations",
		})
	}

	return &MarketSnapshot{
		MarketName:  market,
		Location:    location,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		MarketAnalysis: MarketAnalysis{
			OverallCondition:  fmt.Sprintf("%s is experiencing steady trading activity with normal seasonal patterns. Market infrastructure is functioning well with good vendor participation.", market),
			SeasonalFactors:   "Seasonal crops are arriving at market while storage crops maintain steady supply. Weather affects transportation timing but overall supply remains stable.",
			SupplyChainStatus: "Transportation networks operating normally with minor regional delays. Cold storage facilities maintaining good inventory levels.",
			DemandPatterns:    fmt.Sprintf("Consistent demand patterns observed in %s with steady demand for staples. Festival season approaching may increase demand.", market),
		},
		Commodities: commodities,
		AIInsights: AIInsights{
			MarketSentiment:  fmt.Sprintf("%s showing positive market sentiment with stable commodity pricing and good trading volumes. Vendor confidence remains high with steady customer flow.", market),
			TodayHighlight:   fmt.Sprintf("Strong performance in seasonal vegetables with %s benefiting from supply advantages. Quality produce commanding premium prices.", market),
			WeeklyPrediction: "Market analysis suggests stable pricing trends for the coming week with minor seasonal adjustments.",
			BestSellingTime:  "6:00 AM - 10:00 AM (morning rush) and 4:00 PM - 7:00 PM (evening peak)",
			PriceDrivers: []PriceDriver{
				{Factor: "Seasonal supply patterns", Impact: "medium", Explanation: "Season affecting crop availability and transportation schedules"},
				{Factor: "Local demand dynamics", Impact: "medium", Explanation: fmt.Sprintf("%s specific consumer preferences and buying patterns", market)},
				{Factor: "Transportation efficiency", Impact: "low", Explanation: "Stable fuel costs and good road conditions supporting normal logistics"},
			},
			RiskFactors: []RiskFactor{
				{Risk: "Weather disruptions", Probability: "low", Impact: "Could temporarily affect supply chain timing", Mitigation: "Monitor weather forecasts and maintain buffer inventory"},
				{Risk: "Seasonal demand shifts", Probability: "medium", Impact: "May affect specific commodity prices", Mitigation: "Diversify product mix and track demand patterns"},
			},
			Opportunities: []Opportunity{
				{Opportunity: "Premium seasonal produce", Timeframe: "Next 2-3 weeks", Potential: "15-25% higher margins on quality products"},
				{Opportunity: "Festival season preparation", Timeframe: "Coming month", Potential: "Increased volume sales and customer acquisition"},
			},
			StrategicAdvice: fmt.Sprintf("Focus on quality seasonal produce and build strong supplier relationships. %s offers good opportunities for vendors who maintain consistent quality and competitive pricing.", market),
		},
		NearbyMarkets: nearbyMarkets(market),
		WeatherImpact: WeatherImpact{
			CurrentConditions: "Clear weather supporting normal market operations with good visibility and road conditions",
			Forecast:          "Stable weather expected for the next week with minimal disruption to supply chains",
			SeasonalTrends:    "Current season affecting crop cycles and transportation timing",
		},
		EconomicFactors: EconomicFactors{
			Inflation:          "Moderate inflation of 4-6% affecting input costs but manageable for most commodities",
			FuelPrices:         "Stable diesel prices supporting consistent transportation costs",
			GovernmentPolicies: "Supportive agricultural policies including MSP and storage subsidies",
			ExportImportTrends: "Balanced trade flows supporting domestic price stability",
		},
	}
}

// dynamicPrice perturbs the base price by a multiplier derived from the
// market's name plus ±15% noise.
func dynamicPrice(basePrice float64, market string) float64 {
	lower := strings.ToLower(market)

	multiplier := 1.0
	switch {
	case strings.Contains(lower, "wholesale") || strings.Contains(lower, "azadpur"):
		multiplier = 0.9
	case strings.Contains(lower, "premium") || strings.Contains(lower, "organic"):
		multiplier = 1.3
	case strings.Contains(lower, "local") || strings.Contains(lower, "farmers"):
		multiplier = 1.1
	}

	variation := (rand.Float64() - 0.5) * 0.3
	return math.Round(basePrice * multiplier * (1 + variation))
}

func weeklyTrend(basePrice float64) []TrendPoint {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	factors := []string{
		"Lower Monday demand after weekend",
		"Gradual demand increase",
		"Mid-week market stability",
		"Increased buying activity",
		"Weekend preparation buying",
		"Peak weekend demand",
		"Market adjustment and closure effects",
	}

	trend := make([]TrendPoint, 0, len(days))
	for i, day := range days {
		dayMultiplier := 1.0
		if i == 0 {
			dayMultiplier = 0.95
		} else if i >= 4 {
			dayMultiplier = 1.05
		}
		trend = append(trend, TrendPoint{
			Day:     day,
			Price:   math.Round(basePrice * dayMultiplier * (1 + (rand.Float64()-0.5)*0.1)),
			Factors: factors[i],
		})
	}
	return trend
}

func nearbyMarkets(market string) []NearbyMarket {
	wholesaleName := "Central Wholesale Market"
	if strings.Contains(market, "Central") {
		wholesaleName = "Regional Wholesale Market"
	}

	return []NearbyMarket{
		{
			Name:               wholesaleName,
			Distance:           fmt.Sprintf("%d.%d km", rand.Intn(5)+2, rand.Intn(9)),
			AvgPriceDifference: randomDiff(0.5, 8, 2),
			Speciality:         "Bulk commodities and wholesale trading",
			Advantages:         "Lower prices for bulk purchases, wider variety",
			TransportCost:      fmt.Sprintf("₹%d per quintal", rand.Intn(30)+40),
		},
		{
			Name:               "Local Farmers Market",
			Distance:           fmt.Sprintf("%d.%d km", rand.Intn(3)+1, rand.Intn(9)),
			AvgPriceDifference: randomDiff(0.3, 5, 1),
			Speciality:         "Fresh farm produce and organic options",
			Advantages:         "Direct from farmers, fresher produce",
			TransportCost:      fmt.Sprintf("₹%d per quintal", rand.Intn(20)+15),
		},
		{
			Name:               "Regional Distribution Hub",
			Distance:           fmt.Sprintf("%d.%d km", rand.Intn(8)+5, rand.Intn(9)),
			AvgPriceDifference: randomDiff(0.6, 6, 3),
			Speciality:         "Processed and packaged goods",
			Advantages:         "Consistent supply, standardized quality",
			TransportCost:      fmt.Sprintf("₹%d per quintal", rand.Intn(40)+60),
		},
	}
}

func randomDiff(upChance float64, spread, base int) string {
	sign := "-"
	if rand.Float64() > upChance {
		sign = "+"
	}
	return fmt.Sprintf("%s%d%%", sign, rand.Intn(spread)+base)
}

func pick(options ...string) string {
	return options[rand.Intn(len(options))]
}
