package inventorycontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// PUT /api/inventory/:id
// Full-document update; last write wins.
func UpdateInventoryItem(c *gin.Context) {
	email := c.GetString("user_email")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inventory item ID"})
		return
	}

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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}

	ctx := c.Request.Context()

	// 1️⃣ Item must exist and belong to the caller
	var existing models.InventoryItem
	err = coll.FindOne(ctx, bson.M{"_id": id, "userId": email}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}

	// 2️⃣ New name must not collide with a different item of the same owner
	conflictFilter := nameFilter(email, req.Name)
	conflictFilter["_id"] = bson.M{"$ne": id}
	conflicts, err := coll.CountDocuments(ctx, conflictFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}
	if conflicts > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An item with this name already exists in your inventory"})
		return
	}

	// 3️⃣ Apply the update and return the fresh document
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":         req.Name,
		"category":     req.Category,
		"currentStock": *req.CurrentStock,
		"unit":         req.Unit,
		"minThreshold": *req.MinThreshold,
		"maxCapacity":  *req.MaxCapacity,
		"avgPrice":     *req.AvgPrice,
		"lastUpdated":  now,
		"updatedAt":    now,
	}}

	var updated models.InventoryItem
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}
	updated.LowStock = updated.IsLowStock()

	c.JSON(http.StatusOK, updated)
}
