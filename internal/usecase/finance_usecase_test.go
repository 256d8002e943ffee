package usecase

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newFinanceFixture(t *testing.T, sppdSeed []model.SPPD) (*FinanceUsecase, repository.SPPDRepository) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	finance := repository.NewFinanceRepository(st, nil)
	sppds := repository.NewSPPDRepository(st, sppdSeed)
	return NewFinanceUsecase(finance, sppds, zap.NewNop()), sppds
}

func TestFinanceSummary(t *testing.T) {
	uc, _ := newFinanceFixture(t, nil)

	uc.SaveTransaction(model.FinancialTransaction{Description: "Donasi", Type: model.TransaksiPemasukan, Amount: 10000000})
	uc.SaveTransaction(model.FinancialTransaction{Description: "BBM", Type: model.TransaksiPengeluaran, Amount: 1500000})
	uc.SaveTransaction(model.FinancialTransaction{Description: "ATK", Type: model.TransaksiPengeluaran, Amount: 500000})

	s := uc.Summary()
	if s.TotalPemasukan != 10000000 || s.TotalPengeluaran != 2000000 || s.Saldo != 8000000 {
		t.Errorf("ringkasan salah: %+v", s)
	}
}

func TestFinanceSaveMengisiDefault(t *testing.T) {
	uc, _ := newFinanceFixture(t, nil)

	tx, err := uc.SaveTransaction(model.FinancialTransaction{Description: "Donasi", Type: model.TransaksiPemasukan, Amount: 100})
	if err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}
	if tx.ID == "" || tx.Date == "" {
		t.Errorf("id/tanggal tidak diisi: %+v", tx)
	}

	if _, err := uc.SaveTransaction(model.FinancialTransaction{Description: "  ", Amount: 1}); !errors.Is(err, ErrDataKosong) {
		t.Errorf("deskripsi kosong: %v", err)
	}
}

func TestFinanceCocokkanRealisasiSPPD(t *testing.T) {
	uc, sppds := newFinanceFixture(t, []model.SPPD{
		{ID: "sppd-1", NomorSurat: "090/SPPD/2024/001", Status: model.SppdSelesai},
		{ID: "sppd-2", NomorSurat: "090/SPPD/2024/002", Status: model.SppdSelesai},
	})

	_, err := uc.SaveTransaction(model.FinancialTransaction{
		Description: "Biaya perjalanan SPPD 090/SPPD/2024/002 ke Jakarta",
		Type:        model.TransaksiPengeluaran,
		Amount:      2750000,
	})
	if err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}

	s2, _ := sppds.FindByID("sppd-2")
	if s2.RealisasiBiaya == nil || *s2.RealisasiBiaya != 2750000 {
		t.Errorf("realisasi sppd-2 tidak terisi: %+v", s2.RealisasiBiaya)
	}
	s1, _ := sppds.FindByID("sppd-1")
	if s1.RealisasiBiaya != nil {
		t.Errorf("realisasi sppd-1 tidak boleh terisi")
	}

	// Nomor surat yang memuat kata SPPD ikut memicu pencocokan
	uc.SaveTransaction(model.FinancialTransaction{
		Description: "Pembelian 090/SPPD/2024/001 bahan logistik",
		Type:        model.TransaksiPengeluaran,
		Amount:      100,
	})
	s1, _ = sppds.FindByID("sppd-1")
	if s1.RealisasiBiaya == nil {
		t.Errorf("deskripsi memuat SPPD dan nomor surat, harusnya cocok")
	}
}

func TestFinanceCreateTolakIDGanda(t *testing.T) {
	uc, _ := newFinanceFixture(t, nil)

	tx := model.FinancialTransaction{ID: "fin-x", Date: "2024-12-01", Description: "Tes", Type: model.TransaksiPengeluaran, Amount: 1}
	if err := uc.CreateTransaction(tx); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if err := uc.CreateTransaction(tx); !errors.Is(err, repository.ErrDuplicateID) {
		t.Errorf("id ganda: %v", err)
	}
}
