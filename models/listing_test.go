package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListingRequest() ListingRequest {
	return ListingRequest{
		Type:        "seller",
		ProductName: "Onions",
		Category:    "Vegetables",
		Quantity:    f64(500),
		Unit:        "kg",
		Location:    "Nashik",
		Description: "Fresh red onions, harvested this week",
		UserName:    "Ravi Kumar",
	}
}

func TestListingRequestValid(t *testing.T) {
	r := validListingRequest()
	require.NoError(t, r.Validate())
}

func TestListingRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ListingRequest)
		wantErr string
	}{
		{"missing type", func(r *ListingRequest) { r.Type = "" }, "required fields"},
		{"missing quantity", func(r *ListingRequest) { r.Quantity = nil }, "required fields"},
		{"missing userName", func(r *ListingRequest) { r.UserName = " " }, "required fields"},
		{"bad type", func(r *ListingRequest) { r.Type = "trader" }, `type must be either "buyer" or "seller"`},
		{"bad category", func(r *ListingRequest) { r.Category = "Electronics" }, "category must be one of"},
		{"bad unit", func(r *ListingRequest) { r.Unit = "crates" }, "unit must be one of"},
		{"zero quantity", func(r *ListingRequest) { r.Quantity = f64(0) }, "quantity must be greater than 0"},
		{"negative quantity", func(r *ListingRequest) { r.Quantity = f64(-10) }, "quantity must be greater than 0"},
		{"negative price", func(r *ListingRequest) { r.PricePerUnit = f64(-1) }, "price per unit cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validListingRequest()
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestListingRequestExtendedEnums(t *testing.T) {
	// Listings allow Dairy and bags, which inventory does not.
	r := validListingRequest()
	r.Category = "Dairy"
	r.Unit = "bags"
	require.NoError(t, r.Validate())
}

func TestListingRequestZeroPriceAllowed(t *testing.T) {
	r := validListingRequest()
	r.PricePerUnit = f64(0)
	require.NoError(t, r.Validate())
}

func TestListingBuildDefaults(t *testing.T) {
	r := validListingRequest()
	require.NoError(t, r.Validate())

	l := r.Listing("ravi@example.com")
	assert.Equal(t, "ravi@example.com", l.UserID)
	assert.Equal(t, "ravi@example.com", l.UserEmail)
	assert.True(t, l.IsActive, "isActive defaults to true")
	assert.Nil(t, l.PricePerUnit)
	assert.False(t, l.CreatedAt.IsZero())
}

func TestListingBuildExplicitInactive(t *testing.T) {
	r := validListingRequest()
	inactive := false
	r.IsActive = &inactive
	require.NoError(t, r.Validate())
	assert.False(t, r.Listing("ravi@example.com").IsActive)
}
