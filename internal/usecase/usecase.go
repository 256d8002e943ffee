package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Error-error alur kerja. Handler memetakannya ke status HTTP.
var (
	ErrTransisiTidakValid = errors.New("transisi status tidak valid")
	ErrBukanWewenang      = errors.New("anda tidak memiliki wewenang untuk aksi ini")
	ErrBukanPenerimaTugas = errors.New("anda bukan penerima tugas ini")
	ErrBelumDilihat       = errors.New("tugas belum ditandai dilihat")
	ErrCatatanKosong      = errors.New("catatan penolakan wajib diisi")
	ErrDataKosong         = errors.New("data wajib tidak boleh kosong")
	ErrEntriSistem        = errors.New("entri bawaan sistem tidak dapat diubah atau dihapus")
	ErrMasihDigunakan     = errors.New("masih digunakan oleh anggota")
	ErrSudahDibayar       = errors.New("reimbursement sudah pernah dibayar")
)

// nowISO meniru format toISOString data lama (UTC, presisi milidetik).
func nowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}
