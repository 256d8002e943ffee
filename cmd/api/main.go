package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bpbd-portal-backend/config"
	"bpbd-portal-backend/internal/routes"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic("Gagal menyiapkan logger: " + err.Error())
	}
	defer log.Sync()

	fmt.Println("2. Menyiapkan data dir...")
	config.OpenStore(log)
	fmt.Println("3. Data dir siap! Menyiapkan routes...")

	deps := routes.NewDeps(config.Store, log)

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	// Serve Static Files (lampiran laporan, foto anggota)
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, deps)
	routes.SetupMemberRoutes(app, deps)
	routes.SetupNewsRoutes(app, deps)
	routes.SetupComplaintRoutes(app, deps)
	routes.SetupDirectiveRoutes(app, deps)
	routes.SetupSPPDRoutes(app, deps)
	routes.SetupFinanceRoutes(app, deps)
	routes.SetupReimbursementRoutes(app, deps)
	routes.SetupMasterDataRoutes(app, deps)
	routes.SetupAdminRoutes(app, deps)
	routes.SetupDashboardRoutes(app, deps)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
