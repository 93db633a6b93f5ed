package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backoffice-backend/controllers"
	"backoffice-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the API surface.
func SetupRouter(
	rc *controllers.RoomInfoController,
	rac *controllers.RoomAccountController,
	ctc *controllers.CategoryTypeController,
	qtc *controllers.QuantityTypeController,
	fic *controllers.FoodInventoryController,
	fcc *controllers.FoodCategoryController,
	spc *controllers.StockProductController,
	tc *controllers.TableController,
	vc *controllers.VendorController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Flat path kept for dashboard compatibility.
		api.GET("/checkedOutGuests", rac.GetCheckedOutGuests)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		accounts := api.Group("/room-accounts")
		{
			accounts.GET("", rac.GetRoomAccounts)
			accounts.POST("", rac.CreateRoomAccount)
			accounts.GET("/:id", rac.GetRoomAccountByID)
			accounts.POST("/:id/checkout", rac.CheckoutRoomAccount)
		}

		categoryTypes := api.Group("/category-types")
		{
			categoryTypes.GET("", ctc.GetCategoryTypes)
			categoryTypes.POST("", ctc.CreateCategoryType)
			categoryTypes.DELETE("/:id", ctc.DeleteCategoryType)
		}

		quantityTypes := api.Group("/quantity-types")
		{
			quantityTypes.GET("", qtc.GetQuantityTypes)
			quantityTypes.POST("", qtc.CreateQuantityType)
			quantityTypes.DELETE("/:id", qtc.DeleteQuantityType)
		}

		inventory := api.Group("/food-inventory")
		{
			inventory.GET("", fic.GetItems)
			inventory.POST("", fic.CreateItem)
			inventory.PATCH("/:id", fic.UpdateItem)
			inventory.DELETE("/:id", fic.DeleteItem)
		}

		foodCategories := api.Group("/food-categories")
		{
			foodCategories.GET("", fcc.GetCategories)
			foodCategories.POST("", fcc.CreateCategory)
			foodCategories.GET("/:id/items", fcc.GetCategoryItems)
			foodCategories.PATCH("/:id", fcc.UpdateCategory)
			foodCategories.DELETE("/:id", fcc.DeleteCategory)
		}

		stock := api.Group("/stock-products")
		{
			stock.GET("", spc.GetProducts)
			stock.POST("", spc.CreateProduct)
			stock.PATCH("/:id", spc.UpdateProduct)
			stock.DELETE("/:id", spc.DeleteProduct)
		}

		tables := api.Group("/tables")
		{
			tables.GET("", tc.GetTables)
			tables.POST("", tc.CreateTable)
			tables.DELETE("/:id", tc.DeleteTable)
		}

		vendors := api.Group("/vendors")
		{
			vendors.GET("", vc.GetVendors)
			vendors.POST("", vc.CreateVendorGroup)
			vendors.PATCH("/:id", vc.UpdateVendorGroup)
			vendors.DELETE("/:id", vc.DeleteVendorGroup)
		}
	}

	return r
}
