// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/coliving-manager/backend/internal/integration/entrypoint/controller"
	"github.com/coliving-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	propertyController *controller.PropertyController
	tenantController   *controller.TenantController
	leaseController    *controller.LeaseController
	paymentController  *controller.PaymentController
	expenseController  *controller.ExpenseController
	taskController     *controller.TaskController
	reportController   *controller.ReportController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	propertyController *controller.PropertyController,
	tenantController *controller.TenantController,
	leaseController *controller.LeaseController,
	paymentController *controller.PaymentController,
	expenseController *controller.ExpenseController,
	taskController *controller.TaskController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		propertyController: propertyController,
		tenantController:   tenantController,
		leaseController:    leaseController,
		paymentController:  paymentController,
		expenseController:  expenseController,
		taskController:     taskController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Property and room routes (require authentication)
		if r.propertyController != nil && r.authMiddleware != nil {
			properties := v1.Group("/properties")
			properties.Use(r.authMiddleware.Authenticate())
			{
				properties.GET("", r.propertyController.List)
				properties.POST("", r.propertyController.Create)
				properties.GET("/:id", r.propertyController.Get)
				properties.PUT("/:id", r.propertyController.Update)
				properties.DELETE("/:id", r.propertyController.Delete)
				properties.POST("/:id/rooms", r.propertyController.CreateRoom)
				properties.PUT("/:id/rooms/:roomId", r.propertyController.UpdateRoom)
				properties.DELETE("/:id/rooms/:roomId", r.propertyController.DeleteRoom)
			}
		}

		// Tenant routes (require authentication)
		if r.tenantController != nil && r.authMiddleware != nil {
			tenants := v1.Group("/tenants")
			tenants.Use(r.authMiddleware.Authenticate())
			{
				tenants.GET("", r.tenantController.List)
				tenants.POST("", r.tenantController.Create)
				tenants.PUT("/:id", r.tenantController.Update)
				tenants.POST("/:id/archive", r.tenantController.Archive)
			}
		}

		// Lease routes (require authentication)
		if r.leaseController != nil && r.authMiddleware != nil {
			leases := v1.Group("/leases")
			leases.Use(r.authMiddleware.Authenticate())
			{
				leases.GET("", r.leaseController.List)
				leases.POST("", r.leaseController.Create)
				leases.GET("/expiring", r.leaseController.ListExpiring)
				leases.POST("/:id/terminate", r.leaseController.Terminate)
			}
		}

		// Payment routes (require authentication)
		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.paymentController.List)
				payments.POST("", r.paymentController.Record)
				payments.PATCH("/:id/status", r.paymentController.UpdateStatus)
				payments.DELETE("/:id", r.paymentController.Delete)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.POST("/suggest-category", r.expenseController.SuggestCategory)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Task routes (require authentication)
		if r.taskController != nil && r.authMiddleware != nil {
			tasks := v1.Group("/tasks")
			tasks.Use(r.authMiddleware.Authenticate())
			{
				tasks.GET("", r.taskController.List)
				tasks.POST("", r.taskController.Create)
				tasks.PUT("/:id", r.taskController.Update)
				tasks.DELETE("/:id", r.taskController.Delete)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/financial", r.reportController.GetFinancialReport)
				reports.GET("/profit-loss", r.reportController.GetProfitLossStatement)
				reports.GET("/cash-flow", r.reportController.GetCashFlowAnalysis)
				reports.GET("/tax-summary", r.reportController.GetTaxSummary)
			}
		}
	}
}
