// Package router contains routing setup for the console HTTP delivery.
package router

import (
	"console/internal/delivery/http/middleware"
	"console/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	VendorHandler     *handler.VendorHandler
	ProductHandler    *handler.ProductHandler
	OrderHandler      *handler.OrderHandler
	PaymentHandler    *handler.PaymentHandler
	ReviewHandler     *handler.ReviewHandler
	CategoryHandler   *handler.CategoryHandler
	WithdrawalHandler *handler.WithdrawalHandler
	DeletionHandler   *handler.DeletionHandler
	DashboardHandler  *handler.DashboardHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the console.
func (r *router) RegisterRoutes(e *echo.Echo) {
	session := r.params.SessionMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/session", r.params.AuthHandler.Session)
	}

	// Console routes require an authenticated staff session
	admin := e.Group("/admin")
	admin.Use(session.RequireAuth)
	{
		admin.GET("/dashboard/stats", r.params.DashboardHandler.Stats)

		admin.GET("/users", r.params.UserHandler.List)
		admin.GET("/users/:id", r.params.UserHandler.Get)
		admin.PATCH("/users/:id/suspend", r.params.UserHandler.Suspend)
		admin.PATCH("/users/:id/activate", r.params.UserHandler.Activate)
		admin.POST("/users/:id/deletion", r.params.UserHandler.RequestDeletion)

		admin.GET("/vendors", r.params.VendorHandler.List)
		admin.GET("/vendors/:id", r.params.VendorHandler.Get)
		admin.PATCH("/vendors/:id/approve", r.params.VendorHandler.Approve)
		admin.PATCH("/vendors/:id/reject", r.params.VendorHandler.Reject)
		admin.POST("/vendors/:id/deletion", r.params.VendorHandler.RequestDeletion)

		admin.GET("/products", r.params.ProductHandler.List)
		admin.GET("/products/:id", r.params.ProductHandler.Get)
		admin.PATCH("/products/:id/approve", r.params.ProductHandler.Approve)
		admin.PATCH("/products/:id/reject", r.params.ProductHandler.Reject)
		admin.DELETE("/products/:id", r.params.ProductHandler.Delete)

		admin.GET("/orders", r.params.OrderHandler.List)
		admin.GET("/orders/:id", r.params.OrderHandler.Get)

		admin.GET("/payments", r.params.PaymentHandler.List)
		admin.GET("/payments/:id", r.params.PaymentHandler.Get)
		admin.PATCH("/payments/:id/status", r.params.PaymentHandler.SetStatus)

		admin.GET("/reviews", r.params.ReviewHandler.List)
		admin.PATCH("/reviews/:id/moderate", r.params.ReviewHandler.Moderate)

		admin.GET("/categories", r.params.CategoryHandler.List)
		admin.POST("/categories", r.params.CategoryHandler.Create)
		admin.PATCH("/categories/:id", r.params.CategoryHandler.Update)
		admin.DELETE("/categories/:id", r.params.CategoryHandler.Delete)

		admin.GET("/withdrawals", r.params.WithdrawalHandler.List)
		admin.PATCH("/withdrawals/:id/decide", r.params.WithdrawalHandler.Decide)

		admin.GET("/deletions", r.params.DeletionHandler.List)
	}

	// Superadmin-only routes
	super := admin.Group("")
	super.Use(session.RequireSuperAdmin)
	{
		super.POST("/signup", r.params.AuthHandler.Signup)
		super.POST("/deletions/:id/decide", r.params.DeletionHandler.Decide)
	}
}
