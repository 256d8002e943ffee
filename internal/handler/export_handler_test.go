package handler

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newBackupApp(t *testing.T) (*fiber.App, ExportDeps) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	deps := ExportDeps{
		Members:        repository.NewMemberRepository(st, nil),
		News:           repository.NewNewsRepository(st, nil),
		Complaints:     repository.NewComplaintRepository(st, nil),
		Directives:     repository.NewDirectiveRepository(st, nil),
		TaskReports:    repository.NewTaskReportRepository(st),
		Roles:          repository.NewRoleRepository(st, nil),
		Sections:       repository.NewSectionRepository(st, nil),
		Sppds:          repository.NewSPPDRepository(st, nil),
		SppdReports:    repository.NewSPPDReportRepository(st, nil),
		Jabatans:       repository.NewJabatanRepository(st, nil),
		Finance:        repository.NewFinanceRepository(st, nil),
		Reimbursements: repository.NewReimbursementRepository(st, nil),
	}
	hdl := NewExportHandler(deps)

	app := fiber.New()
	app.Get("/api/admin/export", hdl.Export)
	app.Post("/api/admin/import", hdl.Import)
	return app, deps
}

func exportBody(t *testing.T, app *fiber.App) []byte {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/admin/export", nil))
	if err != nil {
		t.Fatalf("app.Test export: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status export: %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("baca body: %v", err)
	}
	return b
}

func TestBackupRoundTrip(t *testing.T) {
	app, deps := newBackupApp(t)

	// Isi data yang menyentuh kedua bentuk union dan field opsional
	anggaran := 5000000.0
	deps.Members.Save(model.Member{ID: "mem-001", NamaLengkap: "Budi Hartono", Email: "pimpinan@bpbd.go.id", Role: model.RolePimpinan})
	deps.News.Save(model.News{ID: "news-001", Title: "Sosialisasi", Content: "Isi", Date: "2024-11-02T08:00:00.000Z"})
	deps.Complaints.Create(model.Complaint{ID: "comp-1", NamaPelapor: "Warga", Content: "Banjir", Status: model.PengaduanDidisposisikan, Timestamp: "2024-12-01T09:30:00.000Z", CurrentOwner: model.OwnerSeksi("kedaruratan"), DispositionNotes: "Segera"})
	deps.Complaints.Create(model.Complaint{ID: "comp-2", NamaPelapor: "Warga", Content: "Longsor", Status: model.PengaduanBaru, Timestamp: "2024-12-02T09:30:00.000Z", CurrentOwner: model.OwnerRole(model.OwnerOperator)})
	deps.Directives.Save(model.EmergencyDirective{ID: "dir-1", CreatedBy: "mem-001", Title: "Siaga", Status: model.DirectiveBaru, Date: "2024-12-01T07:00:00.000Z", AssignedTo: model.AssignAll()})
	deps.Directives.Save(model.EmergencyDirective{ID: "dir-2", CreatedBy: "mem-001", Title: "Patroli", Status: model.DirectiveBaru, Date: "2024-12-02T07:00:00.000Z", AssignedTo: model.AssignMembers([]string{"mem-001"})})
	deps.TaskReports.Create(model.TaskReport{ID: "mem-001-dir-1", MemberID: "mem-001", DirectiveID: "dir-1", Status: model.TaskDilihat})
	deps.Roles.Save(model.RoleDefinition{ID: "pimpinan", Name: "Pimpinan", IsSystem: true})
	deps.Sections.Save(model.SectionDefinition{ID: "kedaruratan", Name: "Kedaruratan dan Logistik", IsSystem: true})
	deps.Sppds.Create(model.SPPD{ID: "sppd-1", NomorSurat: "090/SPPD/2024/001", PenerimaTugasIds: []string{"mem-001"}, PembuatId: "mem-002", Status: model.SppdDisetujui, DibuatTanggal: "2024-12-01T07:00:00.000Z", AnggaranTotal: &anggaran})
	deps.SppdReports.Upsert(model.SPPDReport{ID: "sppd-1-mem-001", SppdId: "sppd-1", MemberId: "mem-001", HasilKegiatan: "Selesai", DikirimTanggal: "2024-12-12T10:00:00.000Z"})
	deps.Jabatans.Save(model.JabatanDefinition{ID: "jab-analis", Name: "Analis Kebencanaan"})
	deps.Finance.Create(model.FinancialTransaction{ID: "fin-1", Date: "2024-11-05T10:00:00.000Z", Description: "Donasi", Type: model.TransaksiPemasukan, Amount: 25000000})
	deps.Reimbursements.Create(model.ReimbursementRequest{ID: "reimburse-1", RequesterId: "mem-001", RequesterName: "Budi Hartono", Date: "2024-12-01T10:00:00.000Z", Amount: 350000, Status: model.ReimburseDibayar, ProofUrl: "/uploads/nota.jpg", PaidById: "mem-004", PaidDate: "2024-12-02T10:00:00.000Z"})

	first := exportBody(t, app)

	// Pulihkan ke instans kosong, lalu ekspor ulang dan bandingkan byte demi byte
	app2, _ := newBackupApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", bytes.NewReader(first))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app2.Test(req)
	if err != nil {
		t.Fatalf("app.Test import: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status import: %d", resp.StatusCode)
	}

	second := exportBody(t, app2)
	if !bytes.Equal(first, second) {
		t.Errorf("dokumen backup berubah setelah round-trip:\nsebelum: %s\nsesudah: %s", first, second)
	}

	// Semua 12 koleksi hadir sebagai key di dokumen
	for _, key := range []string{
		"members", "news", "complaints", "directives", "taskReports", "roles",
		"sections", "sppds", "sppdReports", "jabatans", "financialTransactions",
		"reimbursementRequests",
	} {
		if !strings.Contains(string(first), `"`+key+`"`) {
			t.Errorf("key %s tidak ada di dokumen backup", key)
		}
	}
}

func TestImportTanpaDataAnggotaDitolak(t *testing.T) {
	app, deps := newBackupApp(t)

	deps.Members.Save(model.Member{ID: "mem-001", NamaLengkap: "Budi"})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import", strings.NewReader(`{"news":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: %d", resp.StatusCode)
	}
	// Data lama tidak boleh tersentuh
	if len(deps.Members.GetAll()) != 1 {
		t.Errorf("koleksi ikut tertimpa oleh backup tidak valid")
	}
}
