package config

import (
	"go.uber.org/zap"

	"bpbd-portal-backend/internal/store"
)

var Store *store.Store

// OpenStore menyiapkan data dir berisi file-file koleksi JSON.
// DATA_DIR default ./data agar bisa langsung jalan tanpa .env.
func OpenStore(log *zap.Logger) {
	dir := GetEnv("DATA_DIR", "./data")

	st, err := store.Open(dir, log)
	if err != nil {
		panic("Gagal menyiapkan data dir: " + err.Error())
	}

	Store = st
}
