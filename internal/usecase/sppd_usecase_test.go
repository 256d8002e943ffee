package usecase

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newSPPDFixture(t *testing.T) (*SPPDUsecase, repository.SPPDRepository) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	sppds := repository.NewSPPDRepository(st, nil)
	reports := repository.NewSPPDReportRepository(st, nil)
	return NewSPPDUsecase(sppds, reports), sppds
}

func buatSPPD(t *testing.T, uc *SPPDUsecase) *model.SPPD {
	t.Helper()
	s, err := uc.Create(SPPDInput{
		NomorSurat:       "090/SPPD/2024/001",
		Untuk:            "Koordinasi penanggulangan banjir",
		Tujuan:           "BNPB Pusat, Jakarta",
		TanggalBerangkat: "2024-12-10",
		TanggalKembali:   "2024-12-12",
		PenerimaTugasIds: []string{"mem-005", "mem-006"},
	}, "mem-002")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return s
}

func TestSPPDCreate(t *testing.T) {
	uc, _ := newSPPDFixture(t)

	s := buatSPPD(t, uc)
	if s.Status != model.SppdMenungguPersetujuan || s.PembuatId != "mem-002" || s.DibuatTanggal == "" {
		t.Errorf("SPPD baru tidak lengkap: %+v", s)
	}

	if _, err := uc.Create(SPPDInput{NomorSurat: "", PenerimaTugasIds: []string{"mem-005"}}, "mem-002"); !errors.Is(err, ErrDataKosong) {
		t.Errorf("nomor surat kosong: %v", err)
	}
	if _, err := uc.Create(SPPDInput{NomorSurat: "090/X", PenerimaTugasIds: nil}, "mem-002"); !errors.Is(err, ErrDataKosong) {
		t.Errorf("tanpa penerima tugas: %v", err)
	}
}

func TestSPPDSetujuiDanTolak(t *testing.T) {
	uc, _ := newSPPDFixture(t)

	s := buatSPPD(t, uc)
	d, err := uc.Setujui(s.ID, "mem-001")
	if err != nil {
		t.Fatalf("Setujui: %v", err)
	}
	if d.Status != model.SppdDisetujui || d.PenyetujuId != "mem-001" {
		t.Errorf("persetujuan tidak tercatat: %+v", d)
	}

	// Sudah disetujui, tidak bisa diputuskan ulang
	if _, err := uc.Setujui(s.ID, "mem-001"); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("setujui kedua: %v", err)
	}
	if _, err := uc.Tolak(s.ID, "mem-001", "ganda"); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("tolak setelah setujui: %v", err)
	}

	lain := buatSPPD(t, uc)
	if _, err := uc.Tolak(lain.ID, "mem-001", "  "); !errors.Is(err, ErrCatatanKosong) {
		t.Errorf("tolak tanpa catatan: %v", err)
	}
	dt, err := uc.Tolak(lain.ID, "mem-001", "Anggaran tidak tersedia")
	if err != nil {
		t.Fatalf("Tolak: %v", err)
	}
	if dt.Status != model.SppdDitolak || dt.CatatanPenolakan != "Anggaran tidak tersedia" {
		t.Errorf("penolakan tidak tercatat: %+v", dt)
	}
}

func TestSPPDLaporanPertamaMengubahStatus(t *testing.T) {
	uc, sppds := newSPPDFixture(t)

	s := buatSPPD(t, uc)

	// Belum disetujui, belum boleh lapor
	if _, err := uc.SubmitReport(s.ID, "mem-005", SPPDReportInput{HasilKegiatan: "x"}); !errors.Is(err, ErrTransisiTidakValid) {
		t.Fatalf("lapor sebelum disetujui: %v", err)
	}

	uc.Setujui(s.ID, "mem-001")

	// Bukan penerima tugas
	if _, err := uc.SubmitReport(s.ID, "mem-999", SPPDReportInput{HasilKegiatan: "x"}); !errors.Is(err, ErrBukanPenerimaTugas) {
		t.Errorf("bukan penerima: %v", err)
	}

	// Laporan pertama langsung mengubah status, tanpa menunggu penerima lain
	r, err := uc.SubmitReport(s.ID, "mem-005", SPPDReportInput{HasilKegiatan: "Koordinasi selesai"})
	if err != nil {
		t.Fatalf("SubmitReport: %v", err)
	}
	if r.ID != model.SPPDReportID(s.ID, "mem-005") {
		t.Errorf("id laporan: %s", r.ID)
	}
	after, _ := sppds.FindByID(s.ID)
	if after.Status != model.SppdLaporanDiterima {
		t.Errorf("status setelah laporan pertama: %s", after.Status)
	}

	// Penerima kedua tetap bisa melapor setelah status berubah
	if _, err := uc.SubmitReport(s.ID, "mem-006", SPPDReportInput{HasilKegiatan: "Ikut koordinasi"}); err != nil {
		t.Fatalf("laporan kedua: %v", err)
	}
}

func TestSPPDSelesaiLaluArsip(t *testing.T) {
	uc, _ := newSPPDFixture(t)

	s := buatSPPD(t, uc)

	// Arsip hanya dari Selesai
	if _, err := uc.Arsipkan(s.ID); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("arsip dari awal: %v", err)
	}

	uc.Setujui(s.ID, "mem-001")
	if _, err := uc.Selesaikan(s.ID); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("selesaikan sebelum laporan: %v", err)
	}

	uc.SubmitReport(s.ID, "mem-005", SPPDReportInput{HasilKegiatan: "Selesai"})
	if _, err := uc.Selesaikan(s.ID); err != nil {
		t.Fatalf("Selesaikan: %v", err)
	}
	a, err := uc.Arsipkan(s.ID)
	if err != nil {
		t.Fatalf("Arsipkan: %v", err)
	}
	if a.Status != model.SppdDiarsipkan {
		t.Errorf("status akhir: %s", a.Status)
	}
}

func TestSPPDUpdateTidakMenyentuhAlur(t *testing.T) {
	uc, _ := newSPPDFixture(t)

	s := buatSPPD(t, uc)
	uc.Setujui(s.ID, "mem-001")

	upd, err := uc.Update(s.ID, SPPDInput{
		NomorSurat:       "090/SPPD/2024/001-REV",
		PenerimaTugasIds: []string{"mem-005"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.NomorSurat != "090/SPPD/2024/001-REV" {
		t.Errorf("nomor surat: %s", upd.NomorSurat)
	}
	if upd.Status != model.SppdDisetujui || upd.PenyetujuId != "mem-001" {
		t.Errorf("field alur ikut berubah: %+v", upd)
	}
}
