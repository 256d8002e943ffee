package routes

import (
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/handler"
	"bpbd-portal-backend/internal/middleware"
	"bpbd-portal-backend/internal/model"
)

func SetupReimbursementRoutes(app *fiber.App, deps *Deps) {
	hdl := handler.NewReimbursementHandler(deps.ReimbursementUC, deps.Reimbursements, deps.Members)

	api := app.Group("/api/reimbursements", middleware.Auth)

	api.Get("/", hdl.GetAll)

	// Semua anggota yang login boleh mengajukan
	api.Post("/", hdl.Create)

	// Pimpinan memutuskan, Bendahara membayar
	api.Post("/:id/setujui", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Setujui)
	api.Post("/:id/tolak", middleware.Role(model.RolePimpinan, model.RoleAdmin), hdl.Tolak)
	api.Post("/:id/bayar", middleware.Role(model.RoleBendahara, model.RoleAdmin), hdl.Bayar)
}
