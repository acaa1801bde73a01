package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/server/http/handlers"
	"github.com/quickserve/quickserve/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, manager handlers.SyncManager, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, manager)
	orderHandler := handlers.NewOrderHandler(facade, manager)
	menuHandler := handlers.NewMenuHandler(facade)
	restaurantHandler := handlers.NewRestaurantHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/session", authHandler.TableSession)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/restaurants/:id/menu", menuHandler.CustomerList)

	customer := authed.Group("")
	customer.Use(middleware.RequireRole(model.RoleCustomer))
	customer.POST("/orders", orderHandler.Checkout)
	customer.GET("/restaurants", orderHandler.Restaurants)

	staff := authed.Group("")
	staff.Use(middleware.RequireRole(model.RoleVendor, model.RoleAdmin))
	staff.POST("/orders/:id/status", orderHandler.UpdateStatus)
	staff.POST("/orders/:id/dismiss", orderHandler.Dismiss)
	staff.GET("/orders/export.csv", orderHandler.Export)

	vendor := authed.Group("/vendor")
	vendor.Use(middleware.RequireRole(model.RoleVendor))
	vendor.GET("/menu", menuHandler.VendorList)
	vendor.POST("/menu", menuHandler.Create)
	vendor.PUT("/menu/:id", menuHandler.Update)
	vendor.DELETE("/menu/:id", menuHandler.Archive)
	vendor.GET("/restaurant", restaurantHandler.Get)
	vendor.POST("/restaurant/online", restaurantHandler.SetOnline)
	vendor.PUT("/restaurant/profile", restaurantHandler.UpdateProfile)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/vendors", adminHandler.ListVendors)
	admin.POST("/vendors/:id/active", adminHandler.SetVendorActive)
	admin.GET("/restaurants", restaurantHandler.ListAll)
	admin.GET("/areas", adminHandler.ListAreas)
	admin.POST("/areas", adminHandler.CreateArea)
	admin.PUT("/areas/:id", adminHandler.UpdateArea)
	admin.POST("/areas/:id/active", adminHandler.SetAreaActive)

	return engine
}
