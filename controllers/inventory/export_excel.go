package inventorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Naren1520/Vanijya-Ai/db"
	"github.com/Naren1520/Vanijya-Ai/models"
)

// GET /api/inventory/export-excel
// Downloads the caller's full inventory as a spreadsheet.
func ExportInventoryToExcel(c *gin.Context) {
	email := c.GetString("user_email")

	coll, err := db.Collection(db.InventoryCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := coll.Find(c.Request.Context(), bson.M{"userId": email}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	defer cursor.Close(c.Request.Context())

	var items []models.InventoryItem
	if err := cursor.All(c.Request.Context(), &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	// Header row
	headers := []string{
		"Name", "Category", "CurrentStock", "Unit",
		"MinThreshold", "MaxCapacity", "AvgPrice", "LastUpdated",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, item := range items {
		row := sheet.AddRow()

		row.AddCell().SetValue(item.Name)
		row.AddCell().SetValue(item.Category)
		row.AddCell().SetValue(item.CurrentStock)
		row.AddCell().SetValue(item.Unit)
		row.AddCell().SetValue(item.MinThreshold)
		row.AddCell().SetValue(item.MaxCapacity)
		row.AddCell().SetValue(item.AvgPrice)
		row.AddCell().SetValue(item.LastUpdated.Format("2006-01-02 15:04:05"))
	}

	// Set response headers for download
	c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	// Write file to response
	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
