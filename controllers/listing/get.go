package listingcontroller

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// GET /api/buyer-seller
// Public browse endpoint. Only active listings are visible; optional
// type/category/location filters, newest first, capped at 50.
func GetListings(c *gin.Context) {
	filter := bson.M{"isActive": true}

	if t := c.Query("type"); t == "buyer" || t == "seller" {
		filter["type"] = t
	}
	if category := c.Query("category"); category != "" && category != "all" {
		filter["category"] = category
	}
	if location := c.Query("location"); location != "" {
		filter["location"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(location),
			Options: "i",
		}
	}

	coll, err := db.Collection(db.ListingsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(50)

	cursor, err := coll.Find(c.Request.Context(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}
	defer cursor.Close(c.Request.Context())

	listings := []models.Listing{}
	if err := cursor.All(c.Request.Context(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GET /api/buyer-seller/my-listings
// The caller's own listings, active or not.
func GetMyListings(c *gin.Context) {
	email := c.GetString("user_email")

	coll, err := db.Collection(db.ListingsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user listings"})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(c.Request.Context(), bson.M{"userId": email}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user listings"})
		return
	}
	defer cursor.Close(c.Request.Context())

	listings := []models.Listing{}
	if err := cursor.All(c.Request.Context(), &listings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user listings"})
		return
	}

	c.JSON(http.StatusOK, listings)
}
