package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupFinanceRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewFinanceHandler(deps.FinanceUC)

	api := app.Group("/api/finance", middleware.Auth)

	// Buku kas bisa dilihat Bendahara dan Pimpinan
	api.Get("/", middleware.Role(model.RoleBendahara, model.RolePimpinan, model.RoleAdmin), hdl.GetAll)
	api.Get("/summary", middleware.Role(model.RoleBendahara, model.RolePimpinan, model.RoleAdmin), hdl.Summary)

	// Pencatatan transaksi hanya oleh Bendahara
	api.Post("/", middleware.Role(model.RoleBendahara, model.RoleAdmin), hdl.Save)
	api.Put("/:id", middleware.Role(model.RoleBendahara, model.RoleAdmin), hdl.Save)
	api.Delete("/:id", middleware.Role(model.RoleBendahara, model.RoleAdmin), hdl.Delete)
}
