// Package server assembles the Fiber application and its global middleware.
package server

import (
	"encoding/json"
	"strings"
	"time"

	"pharmacy-pos-backend/config"
	_ "pharmacy-pos-backend/docs" // Import generated docs
	"pharmacy-pos-backend/routes"
	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// matchOriginPattern checks if an origin matches a pattern with a single wildcard
func matchOriginPattern(pattern, origin string) bool {
	if !strings.Contains(pattern, "*") {
		return false
	}

	parts := strings.Split(pattern, "*")
	if len(parts) != 2 {
		return false
	}

	return strings.HasPrefix(origin, parts[0]) && strings.HasSuffix(origin, parts[1])
}

// errorHandler answers errors that escaped a handler. Fiber errors keep their
// status and message; anything else is logged and reported as a generic 500.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}
	return c.Status(code).JSON(utils.ErrorResponse{Success: false, Error: message})
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        86400, // 24 hours
	}

	// If origins contain wildcard, don't use credentials
	if len(cfg.CorsOrigins) == 1 && cfg.CorsOrigins[0] == "*" {
		corsCfg.AllowOrigins = []string{"*"}
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	corsCfg.AllowOriginsFunc = func(origin string) bool {
		for _, allowedOrigin := range cfg.CorsOrigins {
			allowedOrigin = strings.TrimSpace(allowedOrigin)
			if origin == allowedOrigin || matchOriginPattern(allowedOrigin, origin) {
				return true
			}
		}
		return false
	}
	corsCfg.AllowCredentials = true
	return corsCfg
}

// New builds the application with global middleware and all routes mounted
func New(cfg *config.Config, db *gorm.DB, tokens *utils.TokenService) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
		AppName:      cfg.AppName,
		ServerHeader: "Fiber",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(corsConfig(cfg)))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 60 * time.Second,
	}))

	routes.SetupRoutes(app, cfg, db, tokens)
	return app
}
