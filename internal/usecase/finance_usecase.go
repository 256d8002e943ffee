package usecase

import (
	"strings"

	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// FinanceUsecase mengelola buku kas. Penyimpanan transaksi juga menjalankan
// pencocokan realisasi SPPD: heuristik substring nomor surat di deskripsi,
// bukan relasi referensial, jadi bisa salah cocok pada penomoran ambigu.
type FinanceUsecase struct {
	finance repository.FinanceRepository
	sppds   repository.SPPDRepository
	log     *zap.Logger
}

func NewFinanceUsecase(finance repository.FinanceRepository, sppds repository.SPPDRepository, log *zap.Logger) *FinanceUsecase {
	return &FinanceUsecase{finance: finance, sppds: sppds, log: log}
}

// SaveTransaction meng-upsert transaksi yang dicatat Bendahara.
func (u *FinanceUsecase) SaveTransaction(t model.FinancialTransaction) (*model.FinancialTransaction, error) {
	if strings.TrimSpace(t.Description) == "" {
		return nil, ErrDataKosong
	}
	if t.ID == "" {
		t.ID = newID("fin-")
	}
	if t.Date == "" {
		t.Date = nowISO()
	}
	if err := u.finance.Save(t); err != nil {
		return nil, err
	}
	u.cocokkanRealisasiSPPD(t)
	return &t, nil
}

// CreateTransaction menolak id ganda; dipakai jalur pembayaran reimbursement.
func (u *FinanceUsecase) CreateTransaction(t model.FinancialTransaction) error {
	if err := u.finance.Create(t); err != nil {
		return err
	}
	u.cocokkanRealisasiSPPD(t)
	return nil
}

func (u *FinanceUsecase) DeleteTransaction(id string) error {
	return u.finance.Delete(id)
}

func (u *FinanceUsecase) GetAll() []model.FinancialTransaction {
	return u.finance.GetAll()
}

// FinanceSummary adalah ringkasan dasbor keuangan.
type FinanceSummary struct {
	TotalPemasukan   float64 `json:"totalPemasukan"`
	TotalPengeluaran float64 `json:"totalPengeluaran"`
	Saldo            float64 `json:"saldo"`
}

func (u *FinanceUsecase) Summary() FinanceSummary {
	var s FinanceSummary
	for _, t := range u.finance.GetAll() {
		switch t.Type {
		case model.TransaksiPemasukan:
			s.TotalPemasukan += t.Amount
		case model.TransaksiPengeluaran:
			s.TotalPengeluaran += t.Amount
		}
	}
	s.Saldo = s.TotalPemasukan - s.TotalPengeluaran
	return s
}

// cocokkanRealisasiSPPD mengisi realisasiBiaya SPPD pertama yang nomor
// suratnya muncul sebagai substring di deskripsi transaksi.
func (u *FinanceUsecase) cocokkanRealisasiSPPD(t model.FinancialTransaction) {
	if !strings.Contains(t.Description, "SPPD") {
		return
	}
	for _, s := range u.sppds.GetAll() {
		if s.NomorSurat == "" || !strings.Contains(t.Description, s.NomorSurat) {
			continue
		}
		amount := t.Amount
		s.RealisasiBiaya = &amount
		if err := u.sppds.Update(s); err != nil {
			u.log.Warn("gagal memperbarui realisasi SPPD",
				zap.String("sppd_id", s.ID), zap.Error(err))
		}
		return
	}
}
