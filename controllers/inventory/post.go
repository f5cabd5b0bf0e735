package inventorycontroller

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// nameFilter matches an item name exactly, case-insensitively.
func nameFilter(userID, name string) bson.M {
	return bson.M{
		"userId": userID,
		"name": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(name) + "$",
			Options: "i",
		},
	}
}

// POST /api/inventory
func CreateInventoryItem(c *gin.Context) {
	email := c.GetString("user_email")

	var req models.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll, err := db.Collection(db.InventoryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}

	// Duplicate name check (case-insensitive, per owner)
	count, err := coll.CountDocuments(c.Request.Context(), nameFilter(email, req.Name))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An item with this name already exists in your inventory"})
		return
	}

	item := req.Item(email)
	result, err := coll.InsertOne(c.Request.Context(), item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "An item with this name already exists in your inventory"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	item.LowStock = item.IsLowStock()

	c.JSON(http.StatusCreated, item)
}
