package usecase

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newComplaintFixture(t *testing.T) (*ComplaintUsecase, repository.ComplaintRepository) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	complaints := repository.NewComplaintRepository(st, nil)
	sections := repository.NewSectionRepository(st, []model.SectionDefinition{
		{ID: "kedaruratan", Name: "Kedaruratan dan Logistik", IsSystem: true},
		{ID: "rehabilitasi", Name: "Rehabilitasi dan Rekonstruksi", IsSystem: true},
	})
	return NewComplaintUsecase(complaints, sections), complaints
}

func kasiKedaruratan() model.Member {
	return model.Member{ID: "mem-005", NamaLengkap: "Rudi", Role: model.RoleKepalaSeksi, Seksi: "Kedaruratan dan Logistik"}
}

func TestComplaintAlurLengkap(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	c, err := uc.Create(ComplaintInput{
		NamaPelapor:    "Budi",
		JenisLaporan:   "Laporan Kerusakan Infrastruktur",
		LokasiKejadian: "Jl. Raya Timur",
		Content:        "Jalan rusak parah setelah banjir",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != model.PengaduanBaru || !c.CurrentOwner.IsRole(model.OwnerOperator) {
		t.Fatalf("pengaduan baru harus milik operator, dapat %s/%s", c.Status, c.CurrentOwner)
	}

	if _, err := uc.TeruskanKeSekretaris(c.ID); err != nil {
		t.Fatalf("TeruskanKeSekretaris: %v", err)
	}
	if _, err := uc.TeruskanKePimpinan(c.ID); err != nil {
		t.Fatalf("TeruskanKePimpinan: %v", err)
	}

	d, err := uc.Disposisi(c.ID, "kedaruratan", "Segera tinjau lokasi")
	if err != nil {
		t.Fatalf("Disposisi: %v", err)
	}
	if d.CurrentOwner.SeksiID != "kedaruratan" || d.DispositionNotes != "Segera tinjau lokasi" {
		t.Errorf("disposisi tidak tercatat: %+v", d)
	}

	if _, err := uc.Kerjakan(c.ID, kasiKedaruratan()); err != nil {
		t.Fatalf("Kerjakan: %v", err)
	}

	l, err := uc.LaporanSelesai(c.ID, kasiKedaruratan(), "Jalan sudah ditambal", "/uploads/foto.jpg", "foto.jpg")
	if err != nil {
		t.Fatalf("LaporanSelesai: %v", err)
	}
	if l.CompletionReport == nil || l.CompletionReport.Notes != "Jalan sudah ditambal" {
		t.Errorf("laporan penyelesaian tidak tercatat: %+v", l.CompletionReport)
	}
	if !l.CurrentOwner.IsRole(model.OwnerPimpinan) {
		t.Error("setelah laporan selesai, pengaduan harus kembali ke pimpinan")
	}

	tu, err := uc.Tutup(c.ID)
	if err != nil {
		t.Fatalf("Tutup: %v", err)
	}
	if tu.Status != model.PengaduanDitutup {
		t.Errorf("status akhir: %s", tu.Status)
	}
}

func TestComplaintTransisiTidakBolehLompat(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	c, err := uc.Create(ComplaintInput{NamaPelapor: "Ani", Content: "Pohon tumbang"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Pengaduan Baru belum boleh didisposisikan atau ditutup
	if _, err := uc.Disposisi(c.ID, "kedaruratan", ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("Disposisi dari Baru: %v", err)
	}
	if _, err := uc.Tutup(c.ID); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("Tutup dari Baru: %v", err)
	}
	if _, err := uc.TeruskanKePimpinan(c.ID); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("TeruskanKePimpinan dari Baru: %v", err)
	}

	// Teruskan dua kali juga tidak boleh
	if _, err := uc.TeruskanKeSekretaris(c.ID); err != nil {
		t.Fatalf("TeruskanKeSekretaris: %v", err)
	}
	if _, err := uc.TeruskanKeSekretaris(c.ID); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("TeruskanKeSekretaris kedua: %v", err)
	}
}

func TestComplaintSeksiLainTidakBolehKerjakan(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	c, _ := uc.Create(ComplaintInput{NamaPelapor: "Budi", Content: "Tanggul jebol"})
	uc.TeruskanKeSekretaris(c.ID)
	uc.TeruskanKePimpinan(c.ID)
	if _, err := uc.Disposisi(c.ID, "kedaruratan", ""); err != nil {
		t.Fatalf("Disposisi: %v", err)
	}

	lain := model.Member{ID: "mem-009", Role: model.RoleKepalaSeksi, Seksi: "Rehabilitasi dan Rekonstruksi"}
	if _, err := uc.Kerjakan(c.ID, lain); !errors.Is(err, ErrBukanWewenang) {
		t.Errorf("seksi lain harusnya ditolak, dapat: %v", err)
	}

	tanpaSeksi := model.Member{ID: "mem-010", Role: model.RoleKepalaSeksi}
	if _, err := uc.Kerjakan(c.ID, tanpaSeksi); !errors.Is(err, ErrBukanWewenang) {
		t.Errorf("anggota tanpa seksi harusnya ditolak, dapat: %v", err)
	}
}

func TestComplaintDisposisiSeksiTidakAda(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	c, _ := uc.Create(ComplaintInput{NamaPelapor: "Budi", Content: "Banjir"})
	uc.TeruskanKeSekretaris(c.ID)
	uc.TeruskanKePimpinan(c.ID)

	if _, err := uc.Disposisi(c.ID, "seksi-tidak-ada", ""); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("disposisi ke seksi fiktif: %v", err)
	}
}

func TestComplaintCreateWajibIsi(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	if _, err := uc.Create(ComplaintInput{NamaPelapor: "  ", Content: "x"}); !errors.Is(err, ErrDataKosong) {
		t.Errorf("nama kosong: %v", err)
	}
	if _, err := uc.Create(ComplaintInput{NamaPelapor: "Budi", Content: ""}); !errors.Is(err, ErrDataKosong) {
		t.Errorf("isi kosong: %v", err)
	}
}

func TestComplaintLaporanSelesaiCatatanWajib(t *testing.T) {
	uc, _ := newComplaintFixture(t)

	c, _ := uc.Create(ComplaintInput{NamaPelapor: "Budi", Content: "Longsor"})
	uc.TeruskanKeSekretaris(c.ID)
	uc.TeruskanKePimpinan(c.ID)
	uc.Disposisi(c.ID, "kedaruratan", "")
	uc.Kerjakan(c.ID, kasiKedaruratan())

	if _, err := uc.LaporanSelesai(c.ID, kasiKedaruratan(), "   ", "", ""); !errors.Is(err, ErrDataKosong) {
		t.Errorf("catatan kosong: %v", err)
	}
}
