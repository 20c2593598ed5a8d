package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"banking_customer_backend/internal/auth"
	"banking_customer_backend/internal/database"
	"banking_customer_backend/internal/middleware"
	"banking_customer_backend/internal/router"
	"banking_customer_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "customer_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "customer_password")
	dbName := utils.Getenv("DB_NAME", "customer_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	// Initialize Database
	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// Token verification settings. The identity provider signs with RS256;
	// the HS256 shared secret is the local-development fallback.
	verifier, err := auth.NewTokenVerifier(auth.VerifierConfig{
		Secret:       utils.Getenv("AUTH_JWT_SECRET", ""),
		PublicKeyPEM: utils.Getenv("AUTH_JWT_PUBLIC_KEY", ""),
		Issuer:       utils.Getenv("AUTH_ISSUER", ""),
	})
	if err != nil {
		utils.LogError(err, "Failed to configure token verifier")
		log.Fatalf("Failed to configure token verifier: %v", err)
	}
	clientID := utils.Getenv("AUTH_CLIENT_ID", "spring-customerapp-client")

	engine := gin.Default()

	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, database.GetDB(), verifier, clientID)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
