package router

import (
	"banking_customer_backend/internal/auth"
	"banking_customer_backend/internal/handlers"
	"banking_customer_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Role names issued by the identity provider for this client.
const (
	AdminRole = "admin_client_role"
	UserRole  = "user_client_role"
)

// SetupCustomerRoutes sets up the customer routes.
// Write operations require the admin role; reads accept admin or user.
func SetupCustomerRoutes(apiGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler, verifier *auth.TokenVerifier, clientID string) {
	customerRoutes := apiGroup.Group("/customers")
	customerRoutes.Use(middleware.AuthMiddleware(verifier, clientID))

	customerWriteRoutes := customerRoutes.Group("")
	customerWriteRoutes.Use(middleware.RequireRoles(AdminRole))
	{
		customerWriteRoutes.POST("", customerHandler.CreateCustomer)
		customerWriteRoutes.PUT("/:id", customerHandler.UpdateCustomer)
		customerWriteRoutes.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	customerReadRoutes := customerRoutes.Group("")
	customerReadRoutes.Use(middleware.RequireRoles(AdminRole, UserRole))
	{
		customerReadRoutes.GET("", customerHandler.GetCustomers)
		customerReadRoutes.GET("/:id", customerHandler.GetCustomerByID)
	}
}
