package usecase

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
	"bpbd-portal-backend/internal/store"
)

func newMasterDataFixture(t *testing.T) (*MasterDataUsecase, repository.MemberRepository) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	roles := repository.NewRoleRepository(st, []model.RoleDefinition{
		{ID: "pimpinan", Name: "Pimpinan", IsSystem: true},
		{ID: "role-relawan", Name: "Relawan"},
	})
	sections := repository.NewSectionRepository(st, []model.SectionDefinition{
		{ID: "kedaruratan", Name: "Kedaruratan dan Logistik", IsSystem: true},
		{ID: "seksi-humas", Name: "Humas"},
	})
	jabatans := repository.NewJabatanRepository(st, []model.JabatanDefinition{
		{ID: "jab-analis", Name: "Analis Kebencanaan"},
	})
	members := repository.NewMemberRepository(st, []model.Member{
		{ID: "mem-001", NamaLengkap: "Budi", Role: "Pimpinan"},
		{ID: "mem-006", NamaLengkap: "Rina", Role: "Relawan", Seksi: "Humas", Jabatan: "Analis Kebencanaan"},
	})
	return NewMasterDataUsecase(roles, sections, jabatans, members), members
}

func TestMasterDataEntriSistemTerkunci(t *testing.T) {
	uc, _ := newMasterDataFixture(t)

	if _, err := uc.SaveRole(model.RoleDefinition{ID: "pimpinan", Name: "Ketua"}); !errors.Is(err, ErrEntriSistem) {
		t.Errorf("edit role sistem: %v", err)
	}
	if err := uc.DeleteRole("pimpinan"); !errors.Is(err, ErrEntriSistem) {
		t.Errorf("hapus role sistem: %v", err)
	}
	if err := uc.DeleteSection("kedaruratan"); !errors.Is(err, ErrEntriSistem) {
		t.Errorf("hapus seksi sistem: %v", err)
	}
}

func TestMasterDataHapusYangMasihDipakai(t *testing.T) {
	uc, _ := newMasterDataFixture(t)

	if err := uc.DeleteRole("role-relawan"); !errors.Is(err, ErrMasihDigunakan) {
		t.Errorf("hapus role terpakai: %v", err)
	}
	if err := uc.DeleteSection("seksi-humas"); !errors.Is(err, ErrMasihDigunakan) {
		t.Errorf("hapus seksi terpakai: %v", err)
	}
	if err := uc.DeleteJabatan("jab-analis"); !errors.Is(err, ErrMasihDigunakan) {
		t.Errorf("hapus jabatan terpakai: %v", err)
	}
}

func TestMasterDataRenameMenjalar(t *testing.T) {
	uc, members := newMasterDataFixture(t)

	if _, err := uc.SaveRole(model.RoleDefinition{ID: "role-relawan", Name: "Relawan Inti"}); err != nil {
		t.Fatalf("SaveRole: %v", err)
	}
	if _, err := uc.SaveSection(model.SectionDefinition{ID: "seksi-humas", Name: "Hubungan Masyarakat"}); err != nil {
		t.Fatalf("SaveSection: %v", err)
	}
	if _, err := uc.SaveJabatan(model.JabatanDefinition{ID: "jab-analis", Name: "Analis Risiko Bencana"}); err != nil {
		t.Fatalf("SaveJabatan: %v", err)
	}

	m, err := members.FindByID("mem-006")
	if err != nil {
		t.Fatal(err)
	}
	if m.Role != "Relawan Inti" || m.Seksi != "Hubungan Masyarakat" || m.Jabatan != "Analis Risiko Bencana" {
		t.Errorf("rename tidak menjalar ke anggota: %+v", m)
	}
}

func TestMasterDataTambahBaru(t *testing.T) {
	uc, _ := newMasterDataFixture(t)

	def, err := uc.SaveRole(model.RoleDefinition{Name: "Instruktur", IsSystem: true})
	if err != nil {
		t.Fatalf("SaveRole: %v", err)
	}
	if def.ID == "" {
		t.Error("role baru harus diberi id")
	}
	// Flag isSystem dari client diabaikan
	if def.IsSystem {
		t.Error("role buatan pengguna tidak boleh jadi entri sistem")
	}

	if _, err := uc.SaveSection(model.SectionDefinition{Name: "  "}); !errors.Is(err, ErrDataKosong) {
		t.Errorf("nama kosong: %v", err)
	}
}
