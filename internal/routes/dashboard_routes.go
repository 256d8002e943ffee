package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
)

func SetupDashboardRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewDashboardHandler(deps.Members, deps.Complaints, deps.Directives, deps.Sppds, deps.FinanceUC, deps.DirectiveUC)

	api := app.Group("/api/dashboard", middleware.Auth)

	api.Get("/stats", hdl.GetStats)
}
