package config

import (
	"os"
	"strconv"
)

// Helper untuk membaca environment variable dengan nilai default
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret dipakai handler login dan middleware Auth. Harus sama di keduanya.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "rahasia_negara"))
}
