package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dbvertexphp/hunger-safari-subadmin/internal/config"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/handlers"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/middleware"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/session"
	"github.com/dbvertexphp/hunger-safari-subadmin/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		log.Fatal(err)
	}

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, store)

	log.Println("Console upstream:", cfg.UpstreamBaseURL)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/signin", handlers.SignIn(client))
	r.POST("/signout", handlers.SignOut(client))

	restaurantView := handlers.NewRestaurantView(client)
	subcategoriesView := handlers.NewSubcategoriesView(client)
	menuItemsView := handlers.NewMenuItemsView(client)
	ordersView := handlers.NewOrdersView(client)

	admin := r.Group("/")
	admin.Use(middleware.RequireSession(store))
	{
		admin.GET("/dashboard", handlers.Dashboard(client))
		admin.GET("/dashboard/all", handlers.DashboardAll(client))

		admin.GET("/restaurant", restaurantView.Get())
		admin.PUT("/restaurant", restaurantView.Update())
		admin.GET("/restaurant/edit", restaurantView.Edit())
		admin.POST("/restaurant/edit", restaurantView.OpenEdit())
		admin.DELETE("/restaurant/edit", restaurantView.CloseEdit())

		admin.GET("/subcategories", subcategoriesView.List())
		admin.GET("/subcategories/all", subcategoriesView.ListAll())
		admin.GET("/subcategories/unassigned", subcategoriesView.ListUnassigned())
		admin.POST("/subcategories", subcategoriesView.Create())
		admin.GET("/subcategories/edit", subcategoriesView.Edit())
		admin.POST("/subcategories/:id/edit", subcategoriesView.OpenEdit())
		admin.DELETE("/subcategories/edit/close", subcategoriesView.CloseEdit())
		admin.PUT("/subcategories/:id", subcategoriesView.Update())
		admin.DELETE("/subcategories/:id", subcategoriesView.Delete())

		admin.GET("/menuitems", menuItemsView.List())
		admin.POST("/menuitems", menuItemsView.Create())
		admin.GET("/menuitems/edit", menuItemsView.Edit())
		admin.POST("/menuitems/:id/edit", menuItemsView.OpenEdit())
		admin.DELETE("/menuitems/edit/close", menuItemsView.CloseEdit())
		admin.PUT("/menuitems/:id", menuItemsView.Update())
		admin.DELETE("/menuitems/:id", menuItemsView.Delete())

		admin.GET("/orders", ordersView.List())
		admin.PATCH("/orders/:id/status", ordersView.UpdateStatus())
		admin.PATCH("/orders/:id/payment", ordersView.UpdatePayment())
		admin.DELETE("/orders/:id", ordersView.Delete())
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
