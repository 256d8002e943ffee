package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/usecase"
)

var validate = validator.New()

// writeUsecaseError memetakan error alur kerja ke status HTTP.
// Dipakai semua handler agar pemetaannya seragam.
func writeUsecaseError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrBukanWewenang),
		errors.Is(err, usecase.ErrBukanPenerimaTugas):
		status = fiber.StatusForbidden
	case errors.Is(err, usecase.ErrDataKosong),
		errors.Is(err, usecase.ErrCatatanKosong),
		errors.Is(err, usecase.ErrBelumDilihat):
		status = fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrTransisiTidakValid),
		errors.Is(err, usecase.ErrEntriSistem),
		errors.Is(err, usecase.ErrMasihDigunakan),
		errors.Is(err, usecase.ErrSudahDibayar),
		errors.Is(err, repository.ErrDuplicateID):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
