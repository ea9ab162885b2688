package routes

import (
	"time"

	"pharmacy-pos-backend/config"
	"pharmacy-pos-backend/controllers"
	"pharmacy-pos-backend/middleware"
	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"gorm.io/gorm"
)

// Version is reported by the health check and the version command
const Version = "1.0.0"

func SetupRoutes(app *fiber.App, cfg *config.Config, db *gorm.DB, tokens *utils.TokenService) {

	// Controllers
	authController := controllers.NewAuthController(db, tokens)
	storeController := controllers.NewStoreController(db)
	salesController := controllers.NewSalesController(db)
	paymentController := controllers.NewPaymentController(db)
	loginActivityController := controllers.NewLoginActivityController(db)
	userController := controllers.NewUserController(db)

	// Public routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(utils.SuccessResponse{
			Success: true,
			Message: "Health check successful",
			Data: fiber.Map{
				"application": cfg.AppName,
				"version":     Version,
				"status":      "ok",
				"time":        time.Now().Format(time.RFC3339),
			},
		})
	})

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API documentation registered by the docs package
	app.Get("/docs/doc.json", func(c fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "API documentation not available")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	// Swagger UI HTML page
	app.Get("/docs", func(c fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="SwaggerUI" />
  <title>Pharmacy POS API - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/doc.json',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>`
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	})

	// Auth routes (public)
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)
	api.Post("/token/refresh", authController.RefreshToken)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(tokens))

	// Store routes
	storeRoutes := protected.Group("/store")
	storeRoutes.Get("/", storeController.GetStores)
	storeRoutes.Post("/", storeController.CreateStore)
	storeRoutes.Get("/:id", storeController.GetStore)
	storeRoutes.Put("/:id", storeController.UpdateStore)
	storeRoutes.Patch("/:id", storeController.PatchStore)
	storeRoutes.Delete("/:id", storeController.DeleteStore)

	// Sales routes, also mounted under the singular alias
	for _, prefix := range []string{"/sales", "/sale"} {
		salesRoutes := protected.Group(prefix)
		salesRoutes.Get("/", salesController.GetSales)
		salesRoutes.Post("/", salesController.CreateSale)
		salesRoutes.Get("/:id", salesController.GetSale)
		salesRoutes.Put("/:id", salesController.UpdateSale)
		salesRoutes.Patch("/:id", salesController.PatchSale)
		salesRoutes.Delete("/:id", salesController.DeleteSale)
	}

	// Payment routes
	paymentRoutes := protected.Group("/payment")
	paymentRoutes.Get("/", paymentController.GetPayments)
	paymentRoutes.Post("/", paymentController.CreatePayment)
	paymentRoutes.Get("/:id", paymentController.GetPayment)
	paymentRoutes.Put("/:id", paymentController.UpdatePayment)
	paymentRoutes.Patch("/:id", paymentController.PatchPayment)
	paymentRoutes.Delete("/:id", paymentController.DeletePayment)

	// Login activity routes (read-only)
	loginActivityRoutes := protected.Group("/login-activity")
	loginActivityRoutes.Get("/", loginActivityController.GetLoginActivities)
	loginActivityRoutes.Get("/:id", loginActivityController.GetLoginActivity)

	// User administration (admin only)
	userRoutes := protected.Group("/users", middleware.AdminMiddleware(db))
	userRoutes.Get("/", userController.GetUsers)
	userRoutes.Get("/:id", userController.GetUser)
	userRoutes.Delete("/:id", userController.DeleteUser)
}
