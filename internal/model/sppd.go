package model

const (
	SppdMenungguPersetujuan = "Menunggu Persetujuan"
	SppdDisetujui           = "Disetujui"
	SppdDitolak             = "Ditolak"
	SppdLaporanDiterima     = "Laporan Diterima"
	SppdSelesai             = "Selesai"
	SppdDiarsipkan          = "Diarsipkan"
)

// SPPD adalah Surat Perintah Perjalanan Dinas.
type SPPD struct {
	ID               string   `json:"id"`
	NomorSurat       string   `json:"nomorSurat"`
	DasarHukum       string   `json:"dasarHukum"`
	Untuk            string   `json:"untuk"`
	Tujuan           string   `json:"tujuan"`
	TanggalBerangkat string   `json:"tanggalBerangkat"`
	TanggalKembali   string   `json:"tanggalKembali"`
	PenerimaTugasIds []string `json:"penerimaTugasIds"`
	PembuatId        string   `json:"pembuatId"`             // Sekretaris
	PenyetujuId      string   `json:"penyetujuId,omitempty"` // Pimpinan
	Status           string   `json:"status"`
	CatatanPenolakan string   `json:"catatanPenolakan,omitempty"`
	DibuatTanggal    string   `json:"dibuatTanggal"`
	AnggaranTotal    *float64 `json:"anggaranTotal,omitempty"`
	RealisasiBiaya   *float64 `json:"realisasiBiaya,omitempty"`
}

// SPPDReport adalah laporan perjalanan per penerima tugas. Id komposit
// menjamin maksimal satu laporan per (sppd, anggota).
type SPPDReport struct {
	ID             string `json:"id"` // `${sppdId}-${memberId}`
	SppdId         string `json:"sppdId"`
	MemberId       string `json:"memberId"`
	HasilKegiatan  string `json:"hasilKegiatan"`
	Kendala        string `json:"kendala"`
	Saran          string `json:"saran"`
	LampiranUrl    string `json:"lampiranUrl,omitempty"`
	LampiranName   string `json:"lampiranName,omitempty"`
	DikirimTanggal string `json:"dikirimTanggal"`
}

func SPPDReportID(sppdID, memberID string) string {
	return sppdID + "-" + memberID
}
