package api

import (
	"calc-catalog/docs"
	"calc-catalog/internal/api/handlers"
	"calc-catalog/pkg/config"
	"calc-catalog/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	toolHandler *handlers.ToolHandler,
	serverCfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	_ = docs.SwaggerInfo // registers the spec with swag
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Get("/categories", toolHandler.ListCategories)

	tools := api.Group("/tools")
	tools.Get("/:category", toolHandler.ListTools)
	tools.Get("/:category/:slug", toolHandler.GetTool)
	tools.Get("/:category/:slug/related", toolHandler.RelatedTools)

	return app
}
