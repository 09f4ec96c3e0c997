// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "AnonHire-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"AnonHire-backend/internal/controller/applicant"
	"AnonHire-backend/internal/controller/stats"
	"AnonHire-backend/internal/middleware"
	"AnonHire-backend/internal/utilities"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrgins := []string{"*"}
	if allowOrginsStr := os.Getenv("ALLOW_ORIGIN"); allowOrginsStr != "" {
		allowOrgins = strings.Split(allowOrginsStr, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowOrgins,
		AllowMethods: []string{"GET", "POST", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middleware.EnvRateLimitMiddleware())

	applicantController := applicant.NewApplicantController(s.Store)
	statsController := stats.NewStatsController(s.Store)

	api := r.Group("/api")
	{
		api.GET("/health", s.healthHandler)

		api.POST("/applicants", middleware.SizeLimit(1<<20), applicantController.SubmitHandler)
		api.GET("/applicants", applicantController.ListHandler)
		api.GET("/applicants/:anonymousId", applicantController.ContactHandler)
		api.PATCH("/applicants/:anonymousId/status", applicantController.UpdateStatusHandler)

		api.GET("/stats", statsController.StatsHandler)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Endpoint not found"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// healthHandler condenses the database health report into the service health
// response.
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Status, message and timestamp"
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	dbHealth := s.DB.Health()

	status := "ok"
	message := dbHealth["message"]
	if dbHealth["status"] != "up" {
		status = "degraded"
		message = "Database is unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
