// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comanda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	SystemHandler  *handler.SystemHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	systemHandler  *handler.SystemHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		systemHandler:  params.SystemHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// View-cache generations for the UI's staleness checks
	e.GET("/views", r.systemHandler.GetViewGenerations)

	// Catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/ingredients", r.catalogHandler.ListIngredients)
		catalogGroup.POST("/ingredients", r.catalogHandler.CreateIngredient)
		catalogGroup.PUT("/ingredients/:id", r.catalogHandler.UpdateIngredient)
		catalogGroup.DELETE("/ingredients/:id", r.catalogHandler.DeleteIngredient)

		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.POST("/products", r.catalogHandler.CreateProduct)
		catalogGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		catalogGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/delivered", r.orderHandler.ToggleDelivered)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}
}
