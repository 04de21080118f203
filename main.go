// main.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bdist/saude-api/config"
	"github.com/bdist/saude-api/endpoint"
	"github.com/bdist/saude-api/middleware"
	"github.com/bdist/saude-api/model"
	"github.com/bdist/saude-api/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log := util.Log()

	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectPostgres()
	if err != nil {
		log.Fatalf("Error connecting to Postgres: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Clinic{}, &model.Nurse{}, &model.Doctor{}, &model.Patient{},
		&model.Shift{}, &model.TimeSlot{}, &model.Appointment{},
		&model.Prescription{}, &model.Observation{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	// Redis is optional; without it the rate limiter fails open.
	if _, err := config.ConnectRedis(); err != nil {
		log.Warnf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	router.GET("/", endpoint.ListClinics)
	router.GET("/c/:clinica", endpoint.ListSpecialties)
	router.GET("/c/:clinica/:especialidade", endpoint.ListAvailability)

	writeLimiter := middleware.RateLimiter(middleware.RateLimitConfig{})
	router.POST("/a/:clinica/registar", writeLimiter, endpoint.RegisterAppointment)
	router.POST("/a/:clinica/cancelar", writeLimiter, endpoint.CancelAppointment)
	router.DELETE("/a/:clinica/cancelar", writeLimiter, endpoint.CancelAppointment)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	address := fmt.Sprintf(":%d", cfg.AppPort)
	log.Infof("%s listening on %s", cfg.AppName, address)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
