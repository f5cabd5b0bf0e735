package routes

import (
	aicontroller "github.com/Naren1520/Vanijya-Ai/controllers/ai"
	healthcontroller "github.com/Naren1520/Vanijya-Ai/controllers/health"
	inventorycontroller "github.com/Naren1520/Vanijya-Ai/controllers/inventory"
	listingcontroller "github.com/Naren1520/Vanijya-Ai/controllers/listing"
	marketcontroller "github.com/Naren1520/Vanijya-Ai/controllers/market"
	usercontroller "github.com/Naren1520/Vanijya-Ai/controllers/user"
	weathercontroller "github.com/Naren1520/Vanijya-Ai/controllers/weather"
	"github.com/Naren1520/Vanijya-Ai/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers all “/api/*” endpoints.
func SetupAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// ──────────────── Marketplace (public browse) ────────────────
		api.GET("/buyer-seller", listingcontroller.GetListings) // GET /api/buyer-seller

		// ──────────────── User Profiles ────────────────
		api.GET("/users/profile", usercontroller.GetProfile)            // GET /api/users/profile?email=
		api.POST("/users/profile", usercontroller.CreateOrUpdateProfile) // POST /api/users/profile
		api.PUT("/users/profile", usercontroller.UpdateProfile)          // PUT /api/users/profile

		// ──────────────── Market Intelligence ────────────────
		api.POST("/live-market-data", marketcontroller.LiveMarketData) // POST /api/live-market-data
		api.GET("/market-data", aicontroller.MarketDataGet)            // GET /api/market-data
		api.POST("/market-data", aicontroller.MarketDataPost)          // POST /api/market-data
		api.POST("/analyze-price", aicontroller.AnalyzePrice)          // POST /api/analyze-price
		api.POST("/negotiation-phrases", aicontroller.NegotiationPhrases)
		api.POST("/translate", aicontroller.Translate)

		// ──────────────── Weather ────────────────
		api.GET("/weather", weathercontroller.GetWeather) // GET /api/weather?location=|lat=&lon=

		// ──────────────── Diagnostics ────────────────
		api.GET("/test-gemini", aicontroller.TestGemini)
		api.GET("/test-weather-key", weathercontroller.TestWeatherKey)
		api.GET("/health/database", healthcontroller.DatabaseHealth)

		// ──────────────── Protected (JWT) ────────────────
		protected := api.Group("")
		protected.Use(middleware.ValidateToken)
		{
			// Inventory
			protected.GET("/inventory", inventorycontroller.GetInventory)
			protected.POST("/inventory", inventorycontroller.CreateInventoryItem)
			protected.PUT("/inventory/:id", inventorycontroller.UpdateInventoryItem)
			protected.DELETE("/inventory/:id", inventorycontroller.DeleteInventoryItem)
			protected.GET("/inventory/export-excel", inventorycontroller.ExportInventoryToExcel)

			// Marketplace (owner-scoped)
			protected.POST("/buyer-seller", listingcontroller.CreateListing)
			protected.GET("/buyer-seller/my-listings", listingcontroller.GetMyListings)
			protected.PUT("/buyer-seller/:id", listingcontroller.UpdateListing)
			protected.DELETE("/buyer-seller/:id", listingcontroller.DeleteListing)
		}
	}
}
