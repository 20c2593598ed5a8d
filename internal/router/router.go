package router

import (
	"database/sql"

	"banking_customer_backend/internal/auth"
	"banking_customer_backend/internal/handlers"
	"banking_customer_backend/internal/repositories"
	"banking_customer_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application: repositories, services
// and handlers are constructed explicitly and wired into the route groups.
func Setup(engine *gin.Engine, db *sql.DB, verifier *auth.TokenVerifier, clientID string) {
	// Initialize Repositories
	customerRepo := repositories.NewCustomerRepository(db)

	// Initialize Services
	customerService := services.NewCustomerService(customerRepo, db)

	// Initialize Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)

	api := engine.Group("/api")
	SetupCustomerRoutes(api, customerHandler, verifier, clientID)
}
