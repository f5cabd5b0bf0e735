package serp

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DataPoint is one extracted (or synthesized) commodity price observation.
type DataPoint struct {
	Commodity  string  `json:"commodity"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit,omitempty"`
	Change     float64 `json:"change"`
	Market     string  `json:"market"`
	Source     string  `json:"source"`
	Timestamp  string  `json:"timestamp"`
	URL        string  `json:"url,omitempty"`
	Title      string  `json:"title,omitempty"`
	Snippet    string  `json:"snippet,omitempty"`
	Confidence string  `json:"confidence"`
	Note       string  `json:"note,omitempty"`
}

// Price bounds for values matched in organic result text. Anything outside
// is treated as noise (phone numbers, pin codes, tonnage figures).
const (
	minPlausiblePrice = 1
	maxPlausiblePrice = 10000
)

var (
	rupeePrice = regexp.MustCompile(`₹\s*(\d+(?:,\d+)*(?:\.\d+)?)`)

	// Tried in order; the unit-suffixed form wins over a bare ₹ amount.
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)₹\s*(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:per|/)\s*(?:kg|quintal|ton)`),
		regexp.MustCompile(`₹\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(?:rs|rupees?)\s*\.?\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d+(?:,\d+)*(?:\.\d+)?)\s*(?:rs|rupees?)`),
	}

	commodityInText = regexp.MustCompile(`(?i)\b(tomato|onion|potato|rice|wheat|carrot|cabbage|spinach|apple|banana|mango|grapes|cauliflower|brinjal|okra|peas|beans|corn|sugarcane|cotton|groundnut|cumin)\b`)

	cityInText = regexp.MustCompile(`(?i)\b(delhi|mumbai|bangalore|chennai|kolkata|pune|hyderabad|ahmedabad|jaipur|lucknow|kanpur|nagpur|indore|bhopal|patna|guwahati|chandigarh|kochi|coimbatore|madurai|vijayawada|visakhapatnam|thiruvananthapuram|bhubaneswar|raipur|ranchi|gurgaon|noida|faridabad|ghaziabad|agra|meerut|varanasi|allahabad|jodhpur|udaipur|ajmer|bikaner|kota|bharatpur|alwar|sikar|pali|bhilwara|tonk|churu|jhunjhunu|dausa|karauli|dholpur|baran|jhalawar|banswara|dungarpur|pratapgarh|rajsamand|chittorgarh|nagaur|hanumangarh)\b`)
)

// Vocabulary matched by substring against the user's phrase.
var knownCommodities = []string{
	"tomato", "onion", "potato", "rice", "wheat", "carrot", "cabbage",
	"spinach", "apple", "banana", "mango", "grapes", "cauliflower",
	"brinjal", "okra", "peas", "beans", "corn", "sugarcane", "cotton",
	"groundnut", "cumin", "turmeric", "coriander", "chili", "garlic",
	"ginger", "lemon", "orange", "pomegranate", "watermelon", "cucumber",
}

// BuildSearchQuery turns the user phrase into the primary search query.
func BuildSearchQuery(query string) string {
	return query + " market price India mandi wholesale rate today"
}

// BuildAlternateQuery is the single retry used when the primary query
// yields nothing extractable.
func BuildAlternateQuery(query string) string {
	commodity := ExtractCommodity(query)
	if commodity == "" {
		commodity = query
	}
	return commodity + " price rate mandi market India today"
}

// ExtractCommodity substring-matches the fixed vocabulary against the user
// phrase. Returns "" when nothing matches.
func ExtractCommodity(query string) string {
	queryLower := strings.ToLower(query)
	for _, commodity := range knownCommodities {
		if strings.Contains(queryLower, commodity) {
			return commodity
		}
	}
	return ""
}

// Process runs the full extraction over one SERP response: answer box, then
// knowledge graph, then the first eight relevant organic results, keeping the
// first occurrence per case-insensitive commodity name.
func Process(results *SearchResults, query, location string) []DataPoint {
	var points []DataPoint

	if results.AnswerBox != nil {
		if p := ExtractFromAnswerBox(results.AnswerBox, query); p != nil {
			points = append(points, *p)
		}
	}

	if results.KnowledgeGraph != nil {
		if p := ExtractFromKnowledgeGraph(results.KnowledgeGraph, query); p != nil {
			points = append(points, *p)
		}
	}

	relevant := filterRelevant(results.OrganicResults)
	if len(relevant) > 8 {
		relevant = relevant[:8]
	}
	for i, result := range relevant {
		if p := ExtractFromResult(result, query, location, i); p != nil {
			points = append(points, *p)
		}
	}

	return Dedupe(points)
}

// ExtractFromAnswerBox pulls a currency-prefixed number out of the answer
// box title/snippet.
func ExtractFromAnswerBox(box *AnswerBox, query string) *DataPoint {
	text := box.Title + " " + box.Snippet
	m := rupeePrice.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	price, err := parsePrice(m[1])
	if err != nil {
		return nil
	}

	commodity := ExtractCommodity(query)
	if commodity == "" {
		commodity = "Market Commodity"
	}

	return &DataPoint{
		Commodity:  titleCase(commodity),
		Price:      price,
		Change:     0, // answer boxes carry no change data
		Market:     "National Average",
		Source:     "SERP Answer Box",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		URL:        box.Link,
		Title:      box.Title,
		Confidence: "high",
	}
}

// ExtractFromKnowledgeGraph scans knowledge-graph attributes for a field
// whose name mentions "price".
func ExtractFromKnowledgeGraph(kg *KnowledgeGraph, query string) *DataPoint {
	for _, attr := range kg.Attributes {
		if !strings.Contains(strings.ToLower(attr.Name), "price") || attr.Value == "" {
			continue
		}
		m := rupeePrice.FindStringSubmatch(attr.Value)
		if m == nil {
			continue
		}
		price, err := parsePrice(m[1])
		if err != nil {
			continue
		}

		commodity := ExtractCommodity(query)
		if commodity == "" {
			commodity = kg.Title
		}
		if commodity == "" {
			commodity = "Market Commodity"
		}

		return &DataPoint{
			Commodity:  titleCase(commodity),
			Price:      price,
			Change:     0,
			Market:     "Knowledge Graph",
			Source:     "SERP Knowledge Graph",
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Confidence: "high",
		}
	}
	return nil
}

// ExtractFromResult applies the price patterns to one organic result,
// accepting only values inside the plausible range.
func ExtractFromResult(result OrganicResult, query, location string, index int) *DataPoint {
	fullText := result.Title + " " + result.Snippet

	var price float64
	found := false
	for _, pattern := range pricePatterns {
		for _, m := range pattern.FindAllStringSubmatch(fullText, -1) {
			p, err := parsePrice(m[1])
			if err != nil {
				continue
			}
			if p >= minPlausiblePrice && p <= maxPlausiblePrice {
				price = p
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil
	}

	commodity := ExtractCommodity(query)
	if commodity == "" {
		if m := commodityInText.FindStringSubmatch(fullText); m != nil {
			commodity = strings.ToLower(m[1])
		}
	}
	if commodity == "" {
		commodity = fmt.Sprintf("Commodity %d", index+1)
	}

	market := location
	if market == "" {
		market = "Local Market"
	}
	if m := cityInText.FindStringSubmatch(fullText); m != nil {
		market = titleCase(strings.ToLower(m[1]))
	}

	return &DataPoint{
		Commodity:  titleCase(commodity),
		Price:      price,
		Unit:       "kg",
		Change:     RealisticChange(commodity),
		Market:     market,
		Source:     "SERP Organic Results",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		URL:        result.Link,
		Title:      truncate(result.Title, 100),
		Snippet:    truncate(result.Snippet, 200),
		Confidence: "medium",
	}
}

// Dedupe keeps the first occurrence per case-insensitive commodity name.
func Dedupe(points []DataPoint) []DataPoint {
	seen := make(map[string]bool, len(points))
	out := points[:0:0]
	for _, p := range points {
		key := strings.ToLower(p.Commodity)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// RealisticChange fabricates a day-over-day percentage change scaled by the
// commodity's volatility class. It is presentation filler, not measured data;
// callers must label anything carrying it as estimated.
func RealisticChange(commodity string) float64 {
	volatility := volatilityFor(commodity)
	change := (rand.Float64() - 0.5) * 2 * volatility * 100
	return roundTo1(change)
}

var (
	volatileCommodities = []string{"tomato", "onion", "potato", "cauliflower"}
	stableCommodities   = []string{"rice", "wheat", "sugar"}
)

func volatilityFor(commodity string) float64 {
	lower := strings.ToLower(commodity)
	for _, c := range volatileCommodities {
		if strings.Contains(lower, c) {
			return 0.15
		}
	}
	for _, c := range stableCommodities {
		if strings.Contains(lower, c) {
			return 0.03
		}
	}
	return 0.05
}

func filterRelevant(results []OrganicResult) []OrganicResult {
	var out []OrganicResult
	for _, r := range results {
		title := strings.ToLower(r.Title)
		snippet := strings.ToLower(r.Snippet)
		if strings.Contains(title, "price") || strings.Contains(title, "rate") || strings.Contains(title, "mandi") ||
			strings.Contains(snippet, "₹") || strings.Contains(snippet, "rupee") || strings.Contains(snippet, "price") ||
			strings.Contains(snippet, "market") || strings.Contains(snippet, "wholesale") || strings.Contains(snippet, "retail") {
			out = append(out, r)
		}
	}
	return out
}

func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

func titleCase(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// truncate cuts at a rune boundary; titles and snippets carry "₹".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func roundTo1(f float64) float64 {
	return float64(int(f*10+copysignHalf(f))) / 10
}

func copysignHalf(f float64) float64 {
	if f < 0 {
		return -0.5
	}
	return 0.5
}
