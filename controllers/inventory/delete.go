package inventorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Naren1520/Vanijya-Ai/db"
)

// DELETE /api/inventory/:id
func DeleteInventoryItem(c *gin.Context) {
	email := c.GetString("user_email")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inventory item ID"})
		return
	}

	coll, err := db.Collection(db.InventoryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}

	// Ownership check doubles as the existence check: a foreign item is
	// indistinguishable from a missing one.
	result, err := coll.DeleteOne(c.Request.Context(), bson.M{"_id": id, "userId": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
