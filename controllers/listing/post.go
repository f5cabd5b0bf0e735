package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// POST /api/buyer-seller
func CreateListing(c *gin.Context) {
	email := c.GetString("user_email")

	var req models.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coll, err := db.Collection(db.ListingsCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	listing := req.Listing(email)
	result, err := coll.InsertOne(c.Request.Context(), listing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}

	c.JSON(http.StatusCreated, listing)
}
