package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bpbd-portal-backend/config"
	"bpbd-portal-backend/internal/database"
)

// Menimpa seluruh isi data dir dengan dataset default. Jalankan sekali untuk
// setup awal atau untuk mereset data demo.
func main() {
	fmt.Println("1. Memulai seeder... Mencoba load .env...")
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

	fmt.Println("3. Menulis dataset default...")
	if err := database.SeedAll(config.Store, log); err != nil {
		panic("Gagal menulis dataset default: " + err.Error())
	}

	fmt.Println("4. Selesai! Semua koleksi berisi data default.")
}
