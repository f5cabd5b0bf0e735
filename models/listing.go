package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allowed enum values for buyer/seller listings. Listings accept two more
// categories and one more unit than inventory items do.
var (
	ListingTypes      = []string{"buyer", "seller"}
	ListingCategories = []string{"Vegetables", "Fruits", "Grains", "Pulses", "Spices", "Dairy", "Other"}
	ListingUnits      = []string{"kg", "quintal", "ton", "pieces", "liters", "bags"}
)

// Listing is a public buyer or seller advertisement. Contact fields override
// the owner's account-level contact info when set.
type Listing struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string             `bson:"userId" json:"userId"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	UserName        string             `bson:"userName" json:"userName"`
	UserPhone       string             `bson:"userPhone,omitempty" json:"userPhone,omitempty"`
	UserWhatsApp    string             `bson:"userWhatsApp,omitempty" json:"userWhatsApp,omitempty"`
	Type            string             `bson:"type" json:"type"`
	ProductName     string             `bson:"productName" json:"productName"`
	Category        string             `bson:"category" json:"category"`
	Quantity        float64            `bson:"quantity" json:"quantity"`
	Unit            string             `bson:"unit" json:"unit"`
	PricePerUnit    *float64           `bson:"pricePerUnit,omitempty" json:"pricePerUnit,omitempty"`
	Location        string             `bson:"location" json:"location"`
	Description     string             `bson:"description" json:"description"`
	ContactEmail    string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactPhone    string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactWhatsApp string             `bson:"contactWhatsApp,omitempty" json:"contactWhatsApp,omitempty"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ListingRequest is the POST/PUT body for listings.
type ListingRequest struct {
	Type            string   `json:"type"`
	ProductName     string   `json:"productName"`
	Category        string   `json:"category"`
	Quantity        *float64 `json:"quantity"`
	Unit            string   `json:"unit"`
	PricePerUnit    *float64 `json:"pricePerUnit"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
	ContactWhatsApp string   `json:"contactWhatsApp"`
	UserName        string   `json:"userName"`
	UserPhone       string   `json:"userPhone"`
	UserWhatsApp    string   `json:"userWhatsApp"`
	IsActive        *bool    `json:"isActive"`
}

func (r *ListingRequest) Validate() error {
	r.Type = strings.TrimSpace(r.Type)
	r.ProductName = strings.TrimSpace(r.ProductName)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	r.Location = strings.TrimSpace(r.Location)
	r.Description = strings.TrimSpace(r.Description)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	r.ContactPhone = strings.TrimSpace(r.ContactPhone)
	r.ContactWhatsApp = strings.TrimSpace(r.ContactWhatsApp)
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserPhone = strings.TrimSpace(r.UserPhone)
	r.UserWhatsApp = strings.TrimSpace(r.UserWhatsApp)

	if r.Type == "" || r.ProductName == "" || r.Category == "" || r.Quantity == nil ||
		r.Unit == "" || r.Location == "" || r.Description == "" || r.UserName == "" {
		return fmt.Errorf("required fields: type, productName, category, quantity, unit, location, description, userName")
	}

	if !containsString(ListingTypes, r.Type) {
		return fmt.Errorf(`type must be either "buyer" or "seller"`)
	}
	if !containsString(ListingCategories, r.Category) {
		return fmt.Errorf("category must be one of: %s", strings.Join(ListingCategories, ", "))
	}
	if !containsString(ListingUnits, r.Unit) {
		return fmt.Errorf("unit must be one of: %s", strings.Join(ListingUnits, ", "))
	}

	if *r.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	if r.PricePerUnit != nil && *r.PricePerUnit < 0 {
		return fmt.Errorf("price per unit cannot be negative")
	}

	return nil
}

// Listing builds the document to persist for the given owner. isActive
// defaults to true when the request leaves it unset.
func (r *ListingRequest) Listing(ownerEmail string) Listing {
	now := time.Now().UTC()
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Listing{
		UserID:          ownerEmail,
		UserEmail:       ownerEmail,
		UserName:        r.UserName,
		UserPhone:       r.UserPhone,
		UserWhatsApp:    r.UserWhatsApp,
		Type:            r.Type,
		ProductName:     r.ProductName,
		Category:        r.Category,
		Quantity:        *r.Quantity,
		Unit:            r.Unit,
		PricePerUnit:    r.PricePerUnit,
		Location:        r.Location,
		Description:     r.Description,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		ContactWhatsApp: r.ContactWhatsApp,
		IsActive:        active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
