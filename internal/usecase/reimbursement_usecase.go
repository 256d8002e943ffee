package usecase

import (
	"errors"
	"fmt"
	"strings"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// ReimbursementUsecase menjalankan alur reimbursement:
// Menunggu Persetujuan → Disetujui|Ditolak → Dibayar.
// Pembayaran mensintesis tepat satu transaksi ledger ber-id deterministik.
type ReimbursementUsecase struct {
	requests repository.ReimbursementRepository
	finance  *FinanceUsecase
}

func NewReimbursementUsecase(requests repository.ReimbursementRepository, finance *FinanceUsecase) *ReimbursementUsecase {
	return &ReimbursementUsecase{requests: requests, finance: finance}
}

type ReimbursementInput struct {
	Amount      float64
	Category    string
	Description string
	ProofUrl    string
	ProofName   string
}

// Create: pengaju distempel dari sesi; bukti wajib dilampirkan.
func (u *ReimbursementUsecase) Create(in ReimbursementInput, requester model.Member) (*model.ReimbursementRequest, error) {
	if in.Amount <= 0 || strings.TrimSpace(in.ProofUrl) == "" {
		return nil, ErrDataKosong
	}
	req := model.ReimbursementRequest{
		ID:            newID("reimburse-"),
		RequesterId:   requester.ID,
		RequesterName: requester.NamaLengkap,
		Date:          nowISO(),
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Status:        model.ReimburseMenungguPersetujuan,
		ProofUrl:      in.ProofUrl,
		ProofName:     in.ProofName,
	}
	if err := u.requests.Create(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Setujui: aksi Pimpinan.
func (u *ReimbursementUsecase) Setujui(id, approverID string) (*model.ReimbursementRequest, error) {
	req, err := u.requests.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.ReimburseMenungguPersetujuan {
		return nil, ErrTransisiTidakValid
	}
	req.Status = model.ReimburseDisetujui
	req.ApprovedById = approverID
	if err := u.requests.Update(*req); err != nil {
		return nil, err
	}
	return req, nil
}

// Tolak: aksi Pimpinan; catatan penolakan dikirim sebagai field terstruktur.
func (u *ReimbursementUsecase) Tolak(id, catatan string) (*model.ReimbursementRequest, error) {
	if strings.TrimSpace(catatan) == "" {
		return nil, ErrCatatanKosong
	}
	req, err := u.requests.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.ReimburseMenungguPersetujuan {
		return nil, ErrTransisiTidakValid
	}
	req.Status = model.ReimburseDitolak
	req.RejectionNotes = catatan
	if err := u.requests.Update(*req); err != nil {
		return nil, err
	}
	return req, nil
}

// Bayar: Bendahara membayar pengajuan yang Disetujui. Transaksi ledger dibuat
// lebih dulu; id `fin-reimburse-<id>` membuat pembayaran ganda gagal karena
// tabrakan id sebelum status pengajuan tersentuh.
func (u *ReimbursementUsecase) Bayar(id string, bendahara model.Member) (*model.ReimbursementRequest, error) {
	req, err := u.requests.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != model.ReimburseDisetujui {
		return nil, ErrTransisiTidakValid
	}
	t := model.FinancialTransaction{
		ID:          model.ReimbursementTransactionID(req.ID),
		Date:        nowISO(),
		Description: fmt.Sprintf("Pembayaran reimbursement untuk %s: %s", req.RequesterName, req.Description),
		Category:    model.KategoriReimbursement,
		Type:        model.TransaksiPengeluaran,
		Amount:      req.Amount,
	}
	if err := u.finance.CreateTransaction(t); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrSudahDibayar
		}
		return nil, err
	}
	req.Status = model.ReimburseDibayar
	req.PaidById = bendahara.ID
	req.PaidDate = t.Date
	if err := u.requests.Update(*req); err != nil {
		return nil, err
	}
	return req, nil
}
