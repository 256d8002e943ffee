package usecase

import (
	"strings"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// SPPDUsecase menjalankan alur surat perintah perjalanan dinas:
// Menunggu Persetujuan → Disetujui|Ditolak → Laporan Diterima → Selesai → Diarsipkan.
type SPPDUsecase struct {
	sppds   repository.SPPDRepository
	reports repository.SPPDReportRepository
}

func NewSPPDUsecase(sppds repository.SPPDRepository, reports repository.SPPDReportRepository) *SPPDUsecase {
	return &SPPDUsecase{sppds: sppds, reports: reports}
}

type SPPDInput struct {
	NomorSurat       string
	DasarHukum       string
	Untuk            string
	Tujuan           string
	TanggalBerangkat string
	TanggalKembali   string
	PenerimaTugasIds []string
	AnggaranTotal    *float64
}

// Create: Sekretaris membuat SPPD baru. Pembuat dan tanggal distempel di sini,
// bukan dari client.
func (u *SPPDUsecase) Create(in SPPDInput, pembuatID string) (*model.SPPD, error) {
	if strings.TrimSpace(in.NomorSurat) == "" || len(in.PenerimaTugasIds) == 0 {
		return nil, ErrDataKosong
	}
	s := model.SPPD{
		ID:               newID("sppd-"),
		NomorSurat:       in.NomorSurat,
		DasarHukum:       in.DasarHukum,
		Untuk:            in.Untuk,
		Tujuan:           in.Tujuan,
		TanggalBerangkat: in.TanggalBerangkat,
		TanggalKembali:   in.TanggalKembali,
		PenerimaTugasIds: in.PenerimaTugasIds,
		PembuatId:        pembuatID,
		Status:           model.SppdMenungguPersetujuan,
		DibuatTanggal:    nowISO(),
		AnggaranTotal:    in.AnggaranTotal,
	}
	if err := u.sppds.Create(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update mengganti field surat; field alur kerja (status, pembuat, penyetuju,
// tanggal dibuat, realisasi) tidak tersentuh.
func (u *SPPDUsecase) Update(id string, in SPPDInput) (*model.SPPD, error) {
	s, err := u.sppds.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.NomorSurat = in.NomorSurat
	s.DasarHukum = in.DasarHukum
	s.Untuk = in.Untuk
	s.Tujuan = in.Tujuan
	s.TanggalBerangkat = in.TanggalBerangkat
	s.TanggalKembali = in.TanggalKembali
	s.PenerimaTugasIds = in.PenerimaTugasIds
	s.AnggaranTotal = in.AnggaranTotal
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return s, nil
}

// Setujui: Pimpinan menyetujui; id penyetuju direkam.
func (u *SPPDUsecase) Setujui(id, penyetujuID string) (*model.SPPD, error) {
	s, err := u.sppds.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s.Status != model.SppdMenungguPersetujuan {
		return nil, ErrTransisiTidakValid
	}
	s.Status = model.SppdDisetujui
	s.PenyetujuId = penyetujuID
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return s, nil
}

// Tolak: Pimpinan menolak; catatan penolakan wajib diisi.
func (u *SPPDUsecase) Tolak(id, penyetujuID, catatan string) (*model.SPPD, error) {
	if strings.TrimSpace(catatan) == "" {
		return nil, ErrCatatanKosong
	}
	s, err := u.sppds.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s.Status != model.SppdMenungguPersetujuan {
		return nil, ErrTransisiTidakValid
	}
	s.Status = model.SppdDitolak
	s.PenyetujuId = penyetujuID
	s.CatatanPenolakan = catatan
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return s, nil
}

type SPPDReportInput struct {
	HasilKegiatan string
	Kendala       string
	Saran         string
	LampiranUrl   string
	LampiranName  string
}

// SubmitReport: penerima tugas mengirim laporan perjalanan. Laporan PERTAMA
// langsung mengubah SPPD menjadi Laporan Diterima tanpa menunggu penerima
// lain (perilaku lama yang dipertahankan); kiriman berikutnya meng-upsert
// laporan masing-masing anggota.
func (u *SPPDUsecase) SubmitReport(sppdID, memberID string, in SPPDReportInput) (*model.SPPDReport, error) {
	s, err := u.sppds.FindByID(sppdID)
	if err != nil {
		return nil, err
	}
	if s.Status != model.SppdDisetujui && s.Status != model.SppdLaporanDiterima {
		return nil, ErrTransisiTidakValid
	}
	penerima := false
	for _, id := range s.PenerimaTugasIds {
		if id == memberID {
			penerima = true
			break
		}
	}
	if !penerima {
		return nil, ErrBukanPenerimaTugas
	}
	rep := model.SPPDReport{
		ID:             model.SPPDReportID(sppdID, memberID),
		SppdId:         sppdID,
		MemberId:       memberID,
		HasilKegiatan:  in.HasilKegiatan,
		Kendala:        in.Kendala,
		Saran:          in.Saran,
		LampiranUrl:    in.LampiranUrl,
		LampiranName:   in.LampiranName,
		DikirimTanggal: nowISO(),
	}
	if err := u.reports.Upsert(rep); err != nil {
		return nil, err
	}
	s.Status = model.SppdLaporanDiterima
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return &rep, nil
}

// Selesaikan: Pimpinan menandai laporan sudah direviu.
func (u *SPPDUsecase) Selesaikan(id string) (*model.SPPD, error) {
	s, err := u.sppds.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s.Status != model.SppdLaporanDiterima {
		return nil, ErrTransisiTidakValid
	}
	s.Status = model.SppdSelesai
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return s, nil
}

// Arsipkan: satu-satunya transisi milik Sekretaris setelah persetujuan.
func (u *SPPDUsecase) Arsipkan(id string) (*model.SPPD, error) {
	s, err := u.sppds.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s.Status != model.SppdSelesai {
		return nil, ErrTransisiTidakValid
	}
	s.Status = model.SppdDiarsipkan
	if err := u.sppds.Update(*s); err != nil {
		return nil, err
	}
	return s, nil
}
