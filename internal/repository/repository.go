package repository

import "errors"

var (
	ErrNotFound    = errors.New("data tidak ditemukan")
	ErrDuplicateID = errors.New("id sudah digunakan")
)
