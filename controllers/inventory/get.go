package inventorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// GET /api/inventory
// Optional query param: category ("all" disables the filter).
func GetInventory(c *gin.Context) {
	email := c.GetString("user_email")

	filter := bson.M{"userId": email}
	if category := c.Query("category"); category != "" && category != "all" {
		filter["category"] = category
	}

	coll, err := db.Collection(db.InventoryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := coll.Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	defer cursor.Close(c.Request.Context())

	items := []models.InventoryItem{}
	if err := cursor.All(c.Request.Context(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	for i := range items {
		items[i].LowStock = items[i].IsLowStock()
	}

	c.JSON(http.StatusOK, items)
}
