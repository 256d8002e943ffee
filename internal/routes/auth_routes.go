package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupAuthRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewAuthHandler(deps.Members)

	api := app.Group("/api/auth")

	// Login tanpa password, cukup email terdaftar
	api.Post("/login", hdl.Login)

	api.Get("/profile", middleware.Auth, hdl.GetProfile)

	// Mode simulasi: Admin/Pimpinan memerankan anggota lain
	api.Post("/simulation/start", middleware.Auth, middleware.Role(model.RoleAdmin, model.RolePimpinan), hdl.StartSimulation)
	api.Post("/simulation/end", middleware.Auth, hdl.EndSimulation)
}
