package serp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackKnownCommodity(t *testing.T) {
	points := Fallback("tomato price today", "Pune")
	require.Len(t, points, 1)

	p := points[0]
	assert.Equal(t, "Tomato", p.Commodity)
	assert.Equal(t, 45.0, p.Price)
	assert.Equal(t, "Pune", p.Market)
	assert.Equal(t, FallbackSource, p.Source)
	assert.Equal(t, "low", p.Confidence)
	assert.NotEmpty(t, p.Note)
	assert.LessOrEqual(t, math.Abs(p.Change), 15.0)
}

func TestFallbackUnknownCommodity(t *testing.T) {
	points := Fallback("dragonfruit rates", "")
	require.Len(t, points, 1)

	p := points[0]
	assert.Equal(t, "Market Commodity", p.Commodity)
	assert.Equal(t, 50.0, p.Price)
	assert.Equal(t, "Local Market", p.Market)
	assert.Equal(t, FallbackSource, p.Source)
}

func TestFallbackPriceTable(t *testing.T) {
	tests := []struct {
		query string
		want  float64
	}{
		{"onion", 35},
		{"potato", 25},
		{"rice", 55},
		{"wheat", 28},
		{"apple", 120},
		{"cauliflower", 35},
	}
	for _, tt := range tests {
		points := Fallback(tt.query, "Delhi")
		require.Len(t, points, 1, "query %q", tt.query)
		assert.Equal(t, tt.want, points[0].Price, "query %q", tt.query)
	}
}
