package listingcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Naren1520/Vanijya-Ai/db"
)

const listingsNS = "vanijya_ai.buyer_seller_listings"

func validListingBody() string {
	return `{
		"type": "seller", "productName": "Onions", "category": "Vegetables",
		"quantity": 500, "unit": "kg", "location": "Nashik",
		"description": "Fresh red onions", "userName": "Ravi Kumar"
	}`
}

func listingContext(method, path, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_email", "ravi@example.com")
	return w, c
}

func onionsDoc() bson.D {
	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "userId", Value: "ravi@example.com"},
		{Key: "userEmail", Value: "ravi@example.com"},
		{Key: "userName", Value: "Ravi Kumar"},
		{Key: "type", Value: "seller"},
		{Key: "productName", Value: "Onions"},
		{Key: "category", Value: "Vegetables"},
		{Key: "quantity", Value: 500.0},
		{Key: "unit", Value: "kg"},
		{Key: "location", Value: "Nashik"},
		{Key: "description", Value: "Fresh red onions"},
		{Key: "isActive", Value: true},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func TestCreateListingThenBrowse(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("create then browse round trip", func(mt *mtest.T) {
		db.SetClient(mt.Client)
		defer db.SetClient(nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		w, c := listingContext(http.MethodPost, "/api/buyer-seller", validListingBody())
		CreateListing(c)

		require.Equal(mt, http.StatusCreated, w.Code)
		assert.Contains(mt, w.Body.String(), `"productName":"Onions"`)
		assert.Contains(mt, w.Body.String(), `"isActive":true`)
		assert.Contains(mt, w.Body.String(), `"userEmail":"ravi@example.com"`)

		// The stored listing comes back on the public browse read.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, listingsNS, mtest.FirstBatch, onionsDoc()))

		w2, c2 := listingContext(http.MethodGet, "/api/buyer-seller", "")
		GetListings(c2)

		require.Equal(mt, http.StatusOK, w2.Code)
		assert.Contains(mt, w2.Body.String(), `"productName":"Onions"`)
		assert.Contains(mt, w2.Body.String(), `"quantity":500`)
	})
}

func TestUpdateListingNotOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("foreign listing reads as missing", func(mt *mtest.T) {
		db.SetClient(mt.Client)
		defer db.SetClient(nil)

		// Owner-scoped lookup finds nothing.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, listingsNS, mtest.FirstBatch))

		w, c := updateContext(primitive.NewObjectID().Hex(), validListingBody())
		UpdateListing(c)

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), "permission to edit")
	})
}

func TestUpdateListingReturnsFreshDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("update returns the stored state", func(mt *mtest.T) {
		db.SetClient(mt.Client)
		defer db.SetClient(nil)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, listingsNS, mtest.FirstBatch, onionsDoc()), // owned
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: onionsDoc()}),    // findAndModify
		)

		w, c := updateContext(primitive.NewObjectID().Hex(), validListingBody())
		UpdateListing(c)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), `"productName":"Onions"`)
	})
}

func TestDeleteListingNotOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("foreign listing reads as missing", func(mt *mtest.T) {
		db.SetClient(mt.Client)
		defer db.SetClient(nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		w, c := listingContext(http.MethodDelete, "/api/buyer-seller/x", "")
		c.Params = gin.Params{{Key: "id", Value: primitive.NewObjectID().Hex()}}
		DeleteListing(c)

		assert.Equal(mt, http.StatusNotFound, w.Code)
		assert.Contains(mt, w.Body.String(), "permission to delete")
	})
}

func TestDeleteListingOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	mt.Run("owned listing deletes", func(mt *mtest.T) {
		db.SetClient(mt.Client)
		defer db.SetClient(nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		w, c := listingContext(http.MethodDelete, "/api/buyer-seller/x", "")
		c.Params = gin.Params{{Key: "id", Value: primitive.NewObjectID().Hex()}}
		DeleteListing(c)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Contains(mt, w.Body.String(), "deleted successfully")
	})
}
