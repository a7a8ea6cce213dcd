// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicedesk/internal/delivery/api/middleware"
	"servicedesk/internal/delivery/api/router/handler"
	"servicedesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ComplaintHandler *handler.ComplaintHandler
	BillingHandler   *handler.BillingHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	complaintHandler *handler.ComplaintHandler
	billingHandler   *handler.BillingHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		complaintHandler: params.ComplaintHandler,
		billingHandler:   params.BillingHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Any authenticated role; visibility is checked per complaint
	apiV1.GET("/complaints/:id/qr", r.complaintHandler.GetComplaintLabel)

	clientGroup := apiV1.Group("/client/complaints")
	clientGroup.Use(r.authMiddleware.RequireRole(entity.RoleClient))
	{
		clientGroup.POST("", r.complaintHandler.CreateComplaint)
		clientGroup.GET("", r.complaintHandler.ListComplaints)
		clientGroup.GET("/:id", r.complaintHandler.GetComplaint)
		clientGroup.PATCH("/:id", r.complaintHandler.UpdateComplaint)
		clientGroup.DELETE("/:id", r.complaintHandler.DeleteComplaint)
	}

	technicianGroup := apiV1.Group("/technician")
	technicianGroup.Use(r.authMiddleware.RequireRole(entity.RoleTechnician))
	{
		technicianGroup.POST("/complaints", r.complaintHandler.CreateComplaint)
		technicianGroup.GET("/complaints", r.complaintHandler.ListAssigned)
		technicianGroup.GET("/complaints/:id", r.complaintHandler.GetComplaint)
		technicianGroup.PATCH("/complaints/:id/status", r.complaintHandler.UpdateStatus)

		technicianGroup.POST("/billing", r.billingHandler.CreateBilling)
		technicianGroup.GET("/billing", r.billingHandler.ListBilling)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/complaints", r.complaintHandler.CreateComplaint)
		adminGroup.GET("/complaints", r.complaintHandler.ListComplaints)
		adminGroup.GET("/complaints/:id", r.complaintHandler.GetComplaint)
		adminGroup.PATCH("/complaints/:id", r.complaintHandler.UpdateComplaint)
		adminGroup.DELETE("/complaints/:id", r.complaintHandler.DeleteComplaint)
		adminGroup.POST("/complaints/:id/assign", r.complaintHandler.AssignComplaint)
		adminGroup.GET("/complaints/:id/notifications", r.complaintHandler.ListNotifications)

		adminGroup.GET("/billing", r.billingHandler.ListBilling)
		adminGroup.GET("/billing/:id", r.billingHandler.GetBilling)
		adminGroup.PUT("/billing/:id", r.billingHandler.UpdateBilling)
	}
}
