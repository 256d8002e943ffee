package model

import (
	"encoding/json"
	"fmt"
)

// Status pengaduan, berurutan sesuai alur penanganan.
const (
	PengaduanBaru               = "Baru"
	PengaduanMenungguSekretaris = "Menunggu Diproses Sekretaris"
	PengaduanMenungguDisposisi  = "Menunggu Disposisi Pimpinan"
	PengaduanDidisposisikan     = "Didisposisikan ke Seksi"
	PengaduanDikerjakanSeksi    = "Dikerjakan oleh Seksi"
	PengaduanLaporanSelesai     = "Laporan Selesai"
	PengaduanDitutup            = "Ditutup"
)

// Pemilik pengaduan saat berada di tangan sebuah role (bukan seksi).
const (
	OwnerOperator   = "operator"
	OwnerSekretaris = "sekretaris"
	OwnerPimpinan   = "pimpinan"
)

// ComplaintOwner adalah tagged union: pengaduan dipegang oleh sebuah role
// (operator/sekretaris/pimpinan) ATAU oleh sebuah seksi (disimpan id seksi).
// Di penyimpanan bentuknya tetap string tunggal agar kompatibel dengan data lama.
type ComplaintOwner struct {
	Role    string
	SeksiID string
}

func OwnerRole(name string) ComplaintOwner  { return ComplaintOwner{Role: name} }
func OwnerSeksi(id string) ComplaintOwner   { return ComplaintOwner{SeksiID: id} }
func (o ComplaintOwner) IsRole(name string) bool { return o.Role == name }
func (o ComplaintOwner) IsSeksi() bool      { return o.SeksiID != "" }

func (o ComplaintOwner) String() string {
	if o.Role != "" {
		return o.Role
	}
	return o.SeksiID
}

func (o ComplaintOwner) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *ComplaintOwner) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("currentOwner harus berupa string: %w", err)
	}
	switch s {
	case OwnerOperator, OwnerSekretaris, OwnerPimpinan:
		*o = ComplaintOwner{Role: s}
	default:
		*o = ComplaintOwner{SeksiID: s}
	}
	return nil
}

// CompletionReport adalah laporan penyelesaian yang dilampirkan Kepala Seksi.
type CompletionReport struct {
	Notes          string `json:"notes"`
	AttachmentUrl  string `json:"attachmentUrl,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	Timestamp      string `json:"timestamp"`
}

type Complaint struct {
	ID               string            `json:"id"`
	NamaPelapor      string            `json:"namaPelapor"`
	Telepon          string            `json:"telepon"`
	Email            string            `json:"email"`
	JenisLaporan     string            `json:"jenisLaporan"`
	LokasiKejadian   string            `json:"lokasiKejadian"`
	Content          string            `json:"content"`
	Status           string            `json:"status"`
	Timestamp        string            `json:"timestamp"`
	CurrentOwner     ComplaintOwner    `json:"currentOwner"`
	DispositionNotes string            `json:"dispositionNotes,omitempty"`
	CompletionReport *CompletionReport `json:"completionReport,omitempty"`
}
