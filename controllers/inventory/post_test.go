package inventorycontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestContext(method, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/inventory", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_email", "farmer@example.com")
	return w, c
}

func TestCreateInventoryItemInvalidBody(t *testing.T) {
	w, c := newTestContext(http.MethodPost, "{not json")
	CreateInventoryItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestCreateInventoryItemMissingFields(t *testing.T) {
	w, c := newTestContext(http.MethodPost, `{"name": "Tomatoes"}`)
	CreateInventoryItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "all fields are required")
}

func TestCreateInventoryItemCapacityBelowThreshold(t *testing.T) {
	body := `{
		"name": "Tomatoes", "category": "Vegetables", "currentStock": 10,
		"unit": "kg", "minThreshold": 50, "maxCapacity": 40, "avgPrice": 25
	}`
	w, c := newTestContext(http.MethodPost, body)
	CreateInventoryItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "maximum capacity must be greater than minimum threshold")
}

func TestNameFilterQuotesRegexMeta(t *testing.T) {
	filter := nameFilter("farmer@example.com", "Chili (Green)")
	assert.Equal(t, "farmer@example.com", filter["userId"])

	re, ok := filter["name"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "i", re.Options)
	assert.Equal(t, `^Chili \(Green\)$`, re.Pattern)
}
