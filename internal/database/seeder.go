package database

import (
	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/store"
)

// Dataset default, dipakai saat file koleksi belum ada atau tidak bisa dibaca,
// dan oleh cmd/seeder untuk mereset data dir.

func DefaultRoles() []model.RoleDefinition {
	return []model.RoleDefinition{
		{ID: "admin", Name: model.RoleAdmin, IsSystem: true},
		{ID: "pimpinan", Name: model.RolePimpinan, IsSystem: true},
		{ID: "sekretaris", Name: model.RoleSekretaris, IsSystem: true},
		{ID: "operator", Name: model.RoleOperator, IsSystem: true},
		{ID: "bendahara", Name: model.RoleBendahara, IsSystem: true},
		{ID: "kepala-seksi", Name: model.RoleKepalaSeksi, IsSystem: true},
		{ID: "anggota", Name: model.RoleAnggota, IsSystem: true},
	}
}

func DefaultSections() []model.SectionDefinition {
	return []model.SectionDefinition{
		{ID: "pencegahan", Name: "Pencegahan dan Kesiapsiagaan", IsSystem: true},
		{ID: "kedaruratan", Name: "Kedaruratan dan Logistik", IsSystem: true},
		{ID: "rehabilitasi", Name: "Rehabilitasi dan Rekonstruksi", IsSystem: true},
	}
}

func DefaultJabatans() []model.JabatanDefinition {
	return []model.JabatanDefinition{
		{ID: "jab-kalak", Name: "Kepala Pelaksana"},
		{ID: "jab-sekban", Name: "Sekretaris Badan"},
		{ID: "jab-kasi", Name: "Kepala Seksi"},
		{ID: "jab-analis", Name: "Analis Kebencanaan"},
		{ID: "jab-staf", Name: "Staf Administrasi"},
	}
}

func DefaultMembers() []model.Member {
	return []model.Member{
		{
			ID: "mem-001", NamaLengkap: "Budi Hartono", NomorID: "1987.001",
			TanggalLahir: "1975-04-12", JenisKelamin: "Laki-laki",
			Alamat: "Jl. Merdeka No. 1", Telepon: "081234567001",
			Email: "pimpinan@bpbd.go.id", Jabatan: "Kepala Pelaksana",
			TanggalBergabung: "2015-01-10", Status: model.StatusAktif,
			Bio: "Kepala Pelaksana BPBD.", Role: model.RolePimpinan,
		},
		{
			ID: "mem-002", NamaLengkap: "Siti Rahmawati", NomorID: "1990.002",
			TanggalLahir: "1982-09-03", JenisKelamin: "Perempuan",
			Alamat: "Jl. Diponegoro No. 5", Telepon: "081234567002",
			Email: "sekretaris@bpbd.go.id", Jabatan: "Sekretaris Badan",
			TanggalBergabung: "2016-03-01", Status: model.StatusAktif,
			Role: model.RoleSekretaris,
		},
		{
			ID: "mem-003", NamaLengkap: "Agus Salim", NomorID: "1992.003",
			TanggalLahir: "1988-01-20", JenisKelamin: "Laki-laki",
			Alamat: "Jl. Sudirman No. 12", Telepon: "081234567003",
			Email: "operator@bpbd.go.id", Jabatan: "Staf Administrasi",
			TanggalBergabung: "2018-07-15", Status: model.StatusAktif,
			Role: model.RoleOperator,
		},
		{
			ID: "mem-004", NamaLengkap: "Dewi Lestari", NomorID: "1993.004",
			TanggalLahir: "1990-11-08", JenisKelamin: "Perempuan",
			Alamat: "Jl. Gajah Mada No. 8", Telepon: "081234567004",
			Email: "bendahara@bpbd.go.id", Jabatan: "Staf Administrasi",
			TanggalBergabung: "2019-02-01", Status: model.StatusAktif,
			Role: model.RoleBendahara,
		},
		{
			ID: "mem-005", NamaLengkap: "Rudi Kurniawan", NomorID: "1991.005",
			TanggalLahir: "1985-06-17", JenisKelamin: "Laki-laki",
			Alamat: "Jl. Ahmad Yani No. 3", Telepon: "081234567005",
			Email: "kasi.kedaruratan@bpbd.go.id", Jabatan: "Kepala Seksi",
			TanggalBergabung: "2017-05-20", Status: model.StatusAktif,
			Role: model.RoleKepalaSeksi, Seksi: "Kedaruratan dan Logistik",
		},
		{
			ID: "mem-006", NamaLengkap: "Rina Marlina", NomorID: "1995.006",
			TanggalLahir: "1993-02-25", JenisKelamin: "Perempuan",
			Alamat: "Jl. Veteran No. 21", Telepon: "081234567006",
			Email: "rina@bpbd.go.id", Jabatan: "Analis Kebencanaan",
			TanggalBergabung: "2020-08-10", Status: model.StatusAktif,
			Role: model.RoleAnggota, Seksi: "Pencegahan dan Kesiapsiagaan",
		},
		{
			ID: "mem-007", NamaLengkap: "Administrator", NomorID: "0000.000",
			TanggalLahir: "1980-01-01", JenisKelamin: "Laki-laki",
			Alamat: "-", Telepon: "081234567000",
			Email: "admin@bpbd.go.id", Jabatan: "Staf Administrasi",
			TanggalBergabung: "2015-01-01", Status: model.StatusAktif,
			Role: model.RoleAdmin,
		},
	}
}

func DefaultNews() []model.News {
	return []model.News{
		{
			ID: "news-001", Title: "Sosialisasi Kesiapsiagaan Menghadapi Musim Hujan",
			Content:  "BPBD mengadakan sosialisasi kesiapsiagaan banjir dan tanah longsor bagi warga di wilayah rawan.",
			Category: "Edukasi", Date: "2024-11-02T08:00:00.000Z",
		},
		{
			ID: "news-002", Title: "Simulasi Evakuasi Gempa Bumi di Sekolah",
			Content:  "Kegiatan simulasi evakuasi dilaksanakan bersama siswa dan guru sebagai bagian dari program sekolah aman bencana.",
			Category: "Kegiatan", Date: "2024-11-20T08:00:00.000Z",
		},
	}
}

func DefaultComplaints() []model.Complaint {
	return []model.Complaint{
		{
			ID: "comp-001", NamaPelapor: "Warga Kelurahan Sukamaju",
			Telepon: "081298765432", JenisLaporan: "Laporan Kerusakan Infrastruktur",
			LokasiKejadian: "Jembatan Sungai Cimanuk",
			Content:        "Jembatan retak setelah banjir minggu lalu, mohon ditinjau.",
			Status:         model.PengaduanBaru,
			Timestamp:      "2024-12-01T09:30:00.000Z",
			CurrentOwner:   model.OwnerRole(model.OwnerOperator),
		},
	}
}

func DefaultDirectives() []model.EmergencyDirective {
	return []model.EmergencyDirective{
		{
			ID: "dir-001", CreatedBy: "mem-001",
			Title:       "Siaga Banjir Musim Hujan",
			Urgency:     "Tinggi", Status: model.DirectiveBaru,
			Date:        "2024-12-01T07:00:00.000Z",
			Description: "Seluruh anggota diminta memantau wilayah masing-masing dan melaporkan genangan.",
			AssignedTo:  model.AssignAll(),
		},
	}
}

func DefaultSppds() []model.SPPD { return []model.SPPD{} }

func DefaultSppdReports() []model.SPPDReport { return []model.SPPDReport{} }

func DefaultTransactions() []model.FinancialTransaction {
	return []model.FinancialTransaction{
		{
			ID: "fin-001", Date: "2024-11-05T10:00:00.000Z",
			Description: "Donasi CSR PT Maju Bersama",
			Category:    "Donasi", Type: model.TransaksiPemasukan, Amount: 25000000,
		},
		{
			ID: "fin-002", Date: "2024-11-18T14:00:00.000Z",
			Description: "Pembelian BBM kendaraan operasional",
			Category:    "BBM", Type: model.TransaksiPengeluaran, Amount: 1500000,
		},
	}
}

func DefaultReimbursements() []model.ReimbursementRequest {
	return []model.ReimbursementRequest{}
}

// SeedAll menimpa seluruh koleksi di data dir dengan dataset default.
func SeedAll(st *store.Store, log *zap.Logger) error {
	seeds := []struct {
		entity string
		data   any
	}{
		{"members", DefaultMembers()},
		{"news", DefaultNews()},
		{"complaints", DefaultComplaints()},
		{"directives", DefaultDirectives()},
		{"taskReports", []model.TaskReport{}},
		{"roles", DefaultRoles()},
		{"sections", DefaultSections()},
		{"sppds", DefaultSppds()},
		{"sppdReports", DefaultSppdReports()},
		{"jabatans", DefaultJabatans()},
		{"financialTransactions", DefaultTransactions()},
		{"reimbursementRequests", DefaultReimbursements()},
	}
	for _, s := range seeds {
		if err := st.Save(s.entity, s.data); err != nil {
			return err
		}
		log.Info("koleksi di-seed", zap.String("entity", s.entity))
	}
	return nil
}
