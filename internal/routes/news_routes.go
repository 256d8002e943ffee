package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupNewsRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewNewsHandler(deps.News)

	// Berita bisa dibaca publik
	app.Get("/api/news", hdl.GetAll)
	app.Get("/api/news/:id", hdl.GetByID)

	// Kelola berita: Operator dan Admin
	api := app.Group("/api/news", middleware.Auth, middleware.Role(model.RoleOperator, model.RoleAdmin))
	api.Post("/", hdl.Save)
	api.Put("/:id", hdl.Save)
	api.Delete("/:id", hdl.Delete)
}
