package serp

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	got := BuildSearchQuery("tomato prices in Pune")
	assert.Equal(t, "tomato prices in Pune market price India mandi wholesale rate today", got)
}

func TestBuildAlternateQuery(t *testing.T) {
	assert.Equal(t, "onion price rate mandi market India today", BuildAlternateQuery("fresh onion rates"))
	// No known commodity: the whole phrase is reused.
	assert.Equal(t, "dragon fruit price rate mandi market India today", BuildAlternateQuery("dragon fruit"))
}

func TestExtractCommodity(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Tomato price today", "tomato"},
		{"what is the rate of CAULIFLOWER in delhi", "cauliflower"},
		{"turmeric wholesale", "turmeric"},
		{"gold price", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractCommodity(tt.query), "query %q", tt.query)
	}
}

func TestExtractFromAnswerBox(t *testing.T) {
	box := &AnswerBox{
		Title:   "Tomato price today",
		Snippet: "The average retail price is ₹45 per kg across major mandis.",
		Link:    "https://example.com/tomato",
	}
	p := ExtractFromAnswerBox(box, "tomato price")
	require.NotNil(t, p)
	assert.Equal(t, "Tomato", p.Commodity)
	assert.Equal(t, 45.0, p.Price)
	assert.Equal(t, 0.0, p.Change)
	assert.Equal(t, "National Average", p.Market)
	assert.Equal(t, "SERP Answer Box", p.Source)
	assert.Equal(t, "high", p.Confidence)
}

func TestExtractFromAnswerBoxNoPrice(t *testing.T) {
	box := &AnswerBox{Title: "Tomato growing guide", Snippet: "How to plant tomatoes at home."}
	assert.Nil(t, ExtractFromAnswerBox(box, "tomato"))
}

func TestExtractFromAnswerBoxCommaPrice(t *testing.T) {
	box := &AnswerBox{Snippet: "Wheat quintal rate ₹2,150 at Khanna mandi"}
	p := ExtractFromAnswerBox(box, "wheat")
	require.NotNil(t, p)
	assert.Equal(t, 2150.0, p.Price)
}

func TestExtractFromKnowledgeGraph(t *testing.T) {
	kg := &KnowledgeGraph{
		Title: "Onion",
		Attributes: []KGAttribute{
			{Name: "Scientific name", Value: "Allium cepa"},
			{Name: "Average price", Value: "₹35 per kg"},
		},
	}
	p := ExtractFromKnowledgeGraph(kg, "onion rates")
	require.NotNil(t, p)
	assert.Equal(t, "Onion", p.Commodity)
	assert.Equal(t, 35.0, p.Price)
	assert.Equal(t, "SERP Knowledge Graph", p.Source)
}

func TestExtractFromResultPatternsAndBounds(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    float64
		ok      bool
	}{
		{"per-kg form", "Fresh tomato available at ₹45 per kg in the wholesale market", 45, true},
		{"bare rupee", "Mandi price report: tomato ₹38 today", 38, true},
		{"rs prefix", "Tomato selling at Rs. 42 in the retail market", 42, true},
		{"amount then rupees", "market price 40 rupees for tomato", 40, true},
		{"too large rejected", "Bulk tonnage listing at ₹15000 per kg", 0, false},
		{"no number", "Tomato market overview and price trends", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := OrganicResult{Title: "Tomato price", Snippet: tt.snippet}
			p := ExtractFromResult(r, "tomato", "Pune", 0)
			if !tt.ok {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Price)
			assert.Equal(t, "kg", p.Unit)
			assert.Equal(t, "SERP Organic Results", p.Source)
			assert.Equal(t, "medium", p.Confidence)
		})
	}
}

func TestExtractFromResultMarketFromCity(t *testing.T) {
	r := OrganicResult{Title: "Onion price in Delhi", Snippet: "Azadpur mandi onion ₹32 per kg"}
	p := ExtractFromResult(r, "onion", "Pune", 0)
	require.NotNil(t, p)
	assert.Equal(t, "Delhi", p.Market)
}

func TestExtractFromResultFallbackNames(t *testing.T) {
	// Commodity neither in the query nor the text, no location.
	r := OrganicResult{Title: "Mandi price update", Snippet: "Today's rate is ₹60 per kg"}
	p := ExtractFromResult(r, "something obscure", "", 2)
	require.NotNil(t, p)
	assert.Equal(t, "Commodity 3", p.Commodity)
	assert.Equal(t, "Local Market", p.Market)
}

func TestDedupeCaseInsensitive(t *testing.T) {
	points := []DataPoint{
		{Commodity: "Tomato", Price: 45},
		{Commodity: "tomato", Price: 50},
		{Commodity: "Onion", Price: 35},
		{Commodity: "TOMATO", Price: 55},
	}
	out := Dedupe(points)
	require.Len(t, out, 2)
	assert.Equal(t, "Tomato", out[0].Commodity)
	assert.Equal(t, 45.0, out[0].Price)
	assert.Equal(t, "Onion", out[1].Commodity)
}

func TestProcessPrefersAnswerBoxAndDedupes(t *testing.T) {
	results := &SearchResults{
		AnswerBox: &AnswerBox{Snippet: "Tomato retail price ₹45 per kg"},
		OrganicResults: []OrganicResult{
			{Title: "Tomato mandi price", Snippet: "wholesale ₹38 per kg"},
			{Title: "Unrelated gardening blog", Snippet: "how to water plants"},
		},
	}
	points := Process(results, "tomato", "Pune")
	require.Len(t, points, 1)
	assert.Equal(t, "SERP Answer Box", points[0].Source)
	assert.Equal(t, 45.0, points[0].Price)
}

func TestProcessIrrelevantResultsFiltered(t *testing.T) {
	results := &SearchResults{
		OrganicResults: []OrganicResult{
			{Title: "Tomato recipes", Snippet: "Delicious curry with ₹ingredients"},
			{Title: "Onion price today", Snippet: "mandi rate ₹30 per kg"},
		},
	}
	points := Process(results, "vegetables", "")
	require.Len(t, points, 1)
	assert.Equal(t, "Onion", points[0].Commodity)
}

func TestRealisticChangeVolatilityBounds(t *testing.T) {
	tests := []struct {
		commodity string
		maxAbs    float64
	}{
		{"tomato", 15},
		{"Onion", 15},
		{"rice", 3},
		{"wheat flour", 3},
		{"mango", 5},
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			change := RealisticChange(tt.commodity)
			assert.LessOrEqual(t, change, tt.maxAbs, "commodity %s", tt.commodity)
			assert.GreaterOrEqual(t, change, -tt.maxAbs, "commodity %s", tt.commodity)
		}
	}
}

func TestTruncateMultibyteSafe(t *testing.T) {
	// A rupee sign straddling the cut must not leave invalid UTF-8 behind.
	s := strings.Repeat("₹9 ", 80)
	out := truncate(s, 100)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 100, utf8.RuneCountInString(out))

	assert.Equal(t, "short", truncate("short", 100))
}

func TestTitleCaseMultibyteSafe(t *testing.T) {
	assert.Equal(t, "Tomato", titleCase("tomato"))
	out := titleCase("₹ rates")
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "₹ rates", out)
	assert.Equal(t, "", titleCase(""))
}

func TestTruncation(t *testing.T) {
	long := strings.Repeat("x", 300)
	r := OrganicResult{Title: "Tomato price " + long, Snippet: "₹45 per kg " + long}
	p := ExtractFromResult(r, "tomato", "", 0)
	require.NotNil(t, p)
	assert.Len(t, p.Title, 100)
	assert.Len(t, p.Snippet, 200)
}
