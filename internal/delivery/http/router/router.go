// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pocketratings/internal/delivery/http/middleware"
	"pocketratings/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	LocationHandler *handler.LocationHandler
	PurchaseHandler *handler.PurchaseHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	locationHandler *handler.LocationHandler
	purchaseHandler *handler.PurchaseHandler
	reviewHandler   *handler.ReviewHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		locationHandler: params.LocationHandler,
		purchaseHandler: params.PurchaseHandler,
		reviewHandler:   params.ReviewHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes. Reads of the catalog are public, every write is authenticated.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	auth := r.authMiddleware.Authenticate

	v1.GET("/version", handler.Version)
	v1.POST("/auth/login", r.userHandler.Login)

	users := v1.Group("/users")
	{
		users.POST("", r.userHandler.RegisterUser)
		users.GET("/me", r.userHandler.GetMe, auth)
		users.DELETE("/:id", r.userHandler.DeleteUser, auth)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryHandler.GetTree)
		categories.GET("/:id", r.categoryHandler.GetCategory)
		categories.POST("", r.categoryHandler.CreateCategory, auth)
		categories.PATCH("/:id", r.categoryHandler.UpdateCategory, auth)
		categories.DELETE("/:id", r.categoryHandler.DeleteCategory, auth)
	}

	products := v1.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct, auth)
		products.PATCH("/:id", r.productHandler.UpdateProduct, auth)
		products.DELETE("/:id", r.productHandler.DeleteProduct, auth)
	}

	locations := v1.Group("/locations")
	{
		locations.GET("", r.locationHandler.ListLocations)
		locations.GET("/:id", r.locationHandler.GetLocation)
		locations.POST("", r.locationHandler.CreateLocation, auth)
		locations.PATCH("/:id", r.locationHandler.UpdateLocation, auth)
		locations.DELETE("/:id", r.locationHandler.DeleteLocation, auth)
	}

	purchases := v1.Group("/purchases", auth)
	{
		purchases.GET("", r.purchaseHandler.ListPurchases)
		purchases.GET("/:id", r.purchaseHandler.GetPurchase)
		purchases.POST("", r.purchaseHandler.CreatePurchase)
		purchases.PATCH("/:id", r.purchaseHandler.UpdatePurchase)
		purchases.DELETE("/:id", r.purchaseHandler.DeletePurchase)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.ListReviews)
		reviews.GET("/:id", r.reviewHandler.GetReview)
		reviews.POST("", r.reviewHandler.CreateReview, auth)
		reviews.PATCH("/:id", r.reviewHandler.UpdateReview, auth)
		reviews.DELETE("/:id", r.reviewHandler.DeleteReview, auth)
	}
}
