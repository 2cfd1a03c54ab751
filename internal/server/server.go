package server

import (
	"log"

	"onemore-backend/internal/bootstrap"
	"onemore-backend/internal/config"
	"onemore-backend/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return serverutils.Ok(ctx, fiber.Map{"status": "ok"})
	})

	requireAuth := serverutils.NewAuthMiddleware(c.AuthService)

	c.AuthController.RegisterRoutes(api, requireAuth)
	c.RecordController.RegisterRoutes(api, requireAuth)
	c.CatalogController.RegisterRoutes(api, requireAuth)
	c.WorkoutController.RegisterRoutes(api, requireAuth)
	c.NutritionController.RegisterRoutes(api, requireAuth)
	c.SocialController.RegisterRoutes(api, requireAuth)
	c.ChatbotController.RegisterRoutes(api, requireAuth)
}
