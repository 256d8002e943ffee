package model

const (
	TransaksiPemasukan   = "Pemasukan"
	TransaksiPengeluaran = "Pengeluaran"
)

const KategoriReimbursement = "Reimbursement"

type FinancialTransaction struct {
	ID                    string  `json:"id"`
	Date                  string  `json:"date"` // ISO string
	Description           string  `json:"description"`
	Category              string  `json:"category"`
	Type                  string  `json:"type"` // Pemasukan / Pengeluaran
	Amount                float64 `json:"amount"`
	AttachmentUrl         string  `json:"attachmentUrl,omitempty"`
	AttachmentName        string  `json:"attachmentName,omitempty"`
	LinkedReimbursementId string  `json:"linkedReimbursementId,omitempty"`
}

const (
	ReimburseMenungguPersetujuan = "Menunggu Persetujuan"
	ReimburseDisetujui           = "Disetujui"
	ReimburseDitolak             = "Ditolak"
	ReimburseDibayar             = "Dibayar"
)

type ReimbursementRequest struct {
	ID             string  `json:"id"`
	RequesterId    string  `json:"requesterId"`
	RequesterName  string  `json:"requesterName"`
	Date           string  `json:"date"` // ISO string
	Amount         float64 `json:"amount"`
	Category       string  `json:"category"` // Operasional Harian / SPPD
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	ProofUrl       string  `json:"proofUrl"`
	ProofName      string  `json:"proofName"`
	RejectionNotes string  `json:"rejectionNotes,omitempty"`
	ApprovedById   string  `json:"approvedById,omitempty"`
	PaidById       string  `json:"paidById,omitempty"`
	PaidDate       string  `json:"paidDate,omitempty"`
}

// ReimbursementTransactionID menurunkan id transaksi ledger dari id pengajuan.
// Id yang deterministik membuat pembayaran ganda terdeteksi sebagai tabrakan id.
func ReimbursementTransactionID(requestID string) string {
	return "fin-reimburse-" + requestID
}
