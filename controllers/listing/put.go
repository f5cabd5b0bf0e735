package listingcontroller

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

// PUT /api/buyer-seller/:id
func UpdateListing(c *gin.Context) {
	email := c.GetString("user_email")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	ctx := c.Request.Context()

	// Listing must exist and belong to the caller
	var existing models.Listing
	err = coll.FindOne(ctx, bson.M{"_id": id, "userId": email}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found or you do not have permission to edit it"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	set := bson.M{
		"userName":        req.UserName,
		"userPhone":       req.UserPhone,
		"userWhatsApp":    req.UserWhatsApp,
		"type":            req.Type,
		"productName":     req.ProductName,
		"category":        req.Category,
		"quantity":        *req.Quantity,
		"unit":            req.Unit,
		"location":        req.Location,
		"description":     req.Description,
		"contactEmail":    req.ContactEmail,
		"contactPhone":    req.ContactPhone,
		"contactWhatsApp": req.ContactWhatsApp,
		"isActive":        active,
		"updatedAt":       time.Now().UTC(),
	}
	if req.PricePerUnit != nil {
		set["pricePerUnit"] = *req.PricePerUnit
	}

	update := bson.M{"$set": set}
	if req.PricePerUnit == nil {
		update["$unset"] = bson.M{"pricePerUnit": ""}
	}

	var updated models.Listing
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
