// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"sitesnap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StorefrontHandler *handler.StorefrontHandler
	MetricsHandler    http.Handler `name:"metricsHandler" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	storefrontHandler *handler.StorefrontHandler
	metricsHandler    http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		storefrontHandler: params.StorefrontHandler,
		metricsHandler:    params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	storefront := e.Group("/api/storefront")
	{
		storefront.GET("", r.storefrontHandler.GetCatalog)
		storefront.POST("/checkout", r.storefrontHandler.Checkout)
		storefront.GET("/products/:id/inquiry", r.storefrontHandler.Inquiry)
		storefront.GET("/qr", r.storefrontHandler.QRCode)
	}
}
