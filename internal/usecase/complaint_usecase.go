package usecase

import (
	"strings"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// ComplaintUsecase menjalankan rantai penanganan pengaduan:
// Baru → Menunggu Diproses Sekretaris → Menunggu Disposisi Pimpinan →
// Didisposisikan ke Seksi → Dikerjakan oleh Seksi → Laporan Selesai → Ditutup.
// Setiap transisi memvalidasi status sebelumnya; urutan tidak bisa dilompati.
type ComplaintUsecase struct {
	complaints repository.ComplaintRepository
	sections   repository.SectionRepository
}

func NewComplaintUsecase(complaints repository.ComplaintRepository, sections repository.SectionRepository) *ComplaintUsecase {
	return &ComplaintUsecase{complaints: complaints, sections: sections}
}

type ComplaintInput struct {
	NamaPelapor    string
	Telepon        string
	Email          string
	JenisLaporan   string
	LokasiKejadian string
	Content        string
}

// Create dipanggil dari form publik. Pengaduan baru selalu masuk ke operator.
func (u *ComplaintUsecase) Create(in ComplaintInput) (*model.Complaint, error) {
	if strings.TrimSpace(in.NamaPelapor) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrDataKosong
	}
	c := model.Complaint{
		ID:             newID("comp-"),
		NamaPelapor:    in.NamaPelapor,
		Telepon:        in.Telepon,
		Email:          in.Email,
		JenisLaporan:   in.JenisLaporan,
		LokasiKejadian: in.LokasiKejadian,
		Content:        in.Content,
		Status:         model.PengaduanBaru,
		Timestamp:      nowISO(),
		CurrentOwner:   model.OwnerRole(model.OwnerOperator),
	}
	if err := u.complaints.Create(c); err != nil {
		return nil, err
	}
	return &c, nil
}

// TeruskanKeSekretaris: aksi Operator atas pengaduan Baru.
func (u *ComplaintUsecase) TeruskanKeSekretaris(id string) (*model.Complaint, error) {
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanBaru {
		return nil, ErrTransisiTidakValid
	}
	c.Status = model.PengaduanMenungguSekretaris
	c.CurrentOwner = model.OwnerRole(model.OwnerSekretaris)
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// TeruskanKePimpinan: Sekretaris meneruskan untuk disposisi.
func (u *ComplaintUsecase) TeruskanKePimpinan(id string) (*model.Complaint, error) {
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanMenungguSekretaris {
		return nil, ErrTransisiTidakValid
	}
	c.Status = model.PengaduanMenungguDisposisi
	c.CurrentOwner = model.OwnerRole(model.OwnerPimpinan)
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// Disposisi: Pimpinan memilih seksi tujuan dan menitipkan catatan bebas.
func (u *ComplaintUsecase) Disposisi(id, seksiID, catatan string) (*model.Complaint, error) {
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanMenungguDisposisi {
		return nil, ErrTransisiTidakValid
	}
	if _, err := u.sections.FindByID(seksiID); err != nil {
		return nil, err
	}
	c.Status = model.PengaduanDidisposisikan
	c.CurrentOwner = model.OwnerSeksi(seksiID)
	c.DispositionNotes = catatan
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// Kerjakan: Kepala Seksi dari seksi yang dituju mengakui disposisi.
func (u *ComplaintUsecase) Kerjakan(id string, actor model.Member) (*model.Complaint, error) {
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanDidisposisikan {
		return nil, ErrTransisiTidakValid
	}
	if err := u.cekSeksiActor(c, actor); err != nil {
		return nil, err
	}
	c.Status = model.PengaduanDikerjakanSeksi
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// LaporanSelesai: Kepala Seksi melampirkan laporan penyelesaian; pengaduan
// kembali ke pimpinan untuk ditutup.
func (u *ComplaintUsecase) LaporanSelesai(id string, actor model.Member, notes, attachmentUrl, attachmentName string) (*model.Complaint, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrDataKosong
	}
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanDikerjakanSeksi {
		return nil, ErrTransisiTidakValid
	}
	if err := u.cekSeksiActor(c, actor); err != nil {
		return nil, err
	}
	c.Status = model.PengaduanLaporanSelesai
	c.CurrentOwner = model.OwnerRole(model.OwnerPimpinan)
	c.CompletionReport = &model.CompletionReport{
		Notes:          notes,
		AttachmentUrl:  attachmentUrl,
		AttachmentName: attachmentName,
		Timestamp:      nowISO(),
	}
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// Tutup: Pimpinan (atau Admin, lewat gating route) menutup pengaduan. Terminal.
func (u *ComplaintUsecase) Tutup(id string) (*model.Complaint, error) {
	c, err := u.complaints.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.Status != model.PengaduanLaporanSelesai {
		return nil, ErrTransisiTidakValid
	}
	c.Status = model.PengaduanDitutup
	if err := u.complaints.Update(*c); err != nil {
		return nil, err
	}
	return c, nil
}

// cekSeksiActor memastikan pengaduan sedang dipegang seksi milik actor.
// Member menyimpan NAMA seksi, currentOwner menyimpan ID seksi.
func (u *ComplaintUsecase) cekSeksiActor(c *model.Complaint, actor model.Member) error {
	if !c.CurrentOwner.IsSeksi() {
		return ErrBukanWewenang
	}
	sec, err := u.sections.FindByName(actor.Seksi)
	if err != nil || sec.ID != c.CurrentOwner.SeksiID {
		return ErrBukanWewenang
	}
	return nil
}
