package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allowed enum values for inventory items.
var (
	InventoryCategories = []string{"Vegetables", "Fruits", "Grains", "Pulses", "Spices", "Other"}
	InventoryUnits      = []string{"kg", "quintal", "ton", "pieces", "liters"}
)

// InventoryItem is one stock entry owned by a user. (userId, name) is unique
// per owner, case-insensitively.
type InventoryItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	CurrentStock float64            `bson:"currentStock" json:"currentStock"`
	Unit         string             `bson:"unit" json:"unit"`
	MinThreshold float64            `bson:"minThreshold" json:"minThreshold"`
	MaxCapacity  float64            `bson:"maxCapacity" json:"maxCapacity"`
	AvgPrice     float64            `bson:"avgPrice" json:"avgPrice"`
	LowStock     bool               `bson:"-" json:"isLowStock"`
	LastUpdated  time.Time          `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsLowStock reports whether the item has fallen to its reorder threshold.
// Handlers stamp the result onto LowStock, which is computed, never stored.
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinThreshold
}

// InventoryItemRequest is the POST/PUT body for inventory items. Numeric
// fields are pointers so a missing field can be told apart from zero.
type InventoryItemRequest struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	CurrentStock *float64 `json:"currentStock"`
	Unit         string   `json:"unit"`
	MinThreshold *float64 `json:"minThreshold"`
	MaxCapacity  *float64 `json:"maxCapacity"`
	AvgPrice     *float64 `json:"avgPrice"`
}

// Validate trims strings and enforces the field constraints. It mirrors the
// 400-path checks of the API contract exactly.
func (r *InventoryItemRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)

	if r.Name == "" || r.Category == "" || r.Unit == "" ||
		r.CurrentStock == nil || r.MinThreshold == nil || r.MaxCapacity == nil || r.AvgPrice == nil {
		return fmt.Errorf("all fields are required")
	}

	if !containsString(InventoryCategories, r.Category) {
		return fmt.Errorf("category must be one of: %s", strings.Join(InventoryCategories, ", "))
	}
	if !containsString(InventoryUnits, r.Unit) {
		return fmt.Errorf("unit must be one of: %s", strings.Join(InventoryUnits, ", "))
	}

	if *r.CurrentStock < 0 || *r.MinThreshold < 0 || *r.MaxCapacity <= 0 || *r.AvgPrice < 0 {
		return fmt.Errorf("invalid values: stock, threshold, and price must be non-negative, capacity must be positive")
	}

	if *r.MaxCapacity <= *r.MinThreshold {
		return fmt.Errorf("maximum capacity must be greater than minimum threshold")
	}

	return nil
}

// Item builds the document to persist for the given owner. The caller fills
// in timestamps and the id.
func (r *InventoryItemRequest) Item(userID string) InventoryItem {
	now := time.Now().UTC()
	return InventoryItem{
		UserID:       userID,
		Name:         r.Name,
		Category:     r.Category,
		CurrentStock: *r.CurrentStock,
		Unit:         r.Unit,
		MinThreshold: *r.MinThreshold,
		MaxCapacity:  *r.MaxCapacity,
		AvgPrice:     *r.AvgPrice,
		LastUpdated:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
