package usecase

import (
	"strings"

	"bpbd-portal-backend/internal/model"
	"bpbd-portal-backend/internal/repository"
)

// MasterDataUsecase mengelola lookup table role/seksi/jabatan. Dua aturan yang
// dijaga di luar lapisan UI: entri sistem tidak bisa diubah/dihapus, dan entri
// yang masih dirujuk member (berdasarkan NAMA) tidak bisa dihapus. Rename
// menulis ulang semua member yang memakai nama lama.
type MasterDataUsecase struct {
	roles    repository.RoleRepository
	sections repository.SectionRepository
	jabatans repository.JabatanRepository
	members  repository.MemberRepository
}

func NewMasterDataUsecase(roles repository.RoleRepository, sections repository.SectionRepository, jabatans repository.JabatanRepository, members repository.MemberRepository) *MasterDataUsecase {
	return &MasterDataUsecase{roles: roles, sections: sections, jabatans: jabatans, members: members}
}

func (u *MasterDataUsecase) SaveRole(def model.RoleDefinition) (*model.RoleDefinition, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, ErrDataKosong
	}
	if def.ID == "" {
		def.ID = newID("role-")
		def.IsSystem = false
	} else if existing, err := u.roles.FindByID(def.ID); err == nil {
		if existing.IsSystem {
			return nil, ErrEntriSistem
		}
		def.IsSystem = false
		if existing.Name != def.Name {
			if err := u.members.RenameRole(existing.Name, def.Name); err != nil {
				return nil, err
			}
		}
	}
	if err := u.roles.Save(def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (u *MasterDataUsecase) DeleteRole(id string) error {
	def, err := u.roles.FindByID(id)
	if err != nil {
		return err
	}
	if def.IsSystem {
		return ErrEntriSistem
	}
	if u.members.RoleInUse(def.Name) {
		return ErrMasihDigunakan
	}
	return u.roles.Delete(id)
}

func (u *MasterDataUsecase) SaveSection(def model.SectionDefinition) (*model.SectionDefinition, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, ErrDataKosong
	}
	if def.ID == "" {
		def.ID = newID("seksi-")
		def.IsSystem = false
	} else if existing, err := u.sections.FindByID(def.ID); err == nil {
		if existing.IsSystem {
			return nil, ErrEntriSistem
		}
		def.IsSystem = false
		if existing.Name != def.Name {
			if err := u.members.RenameSeksi(existing.Name, def.Name); err != nil {
				return nil, err
			}
		}
	}
	if err := u.sections.Save(def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (u *MasterDataUsecase) DeleteSection(id string) error {
	def, err := u.sections.FindByID(id)
	if err != nil {
		return err
	}
	if def.IsSystem {
		return ErrEntriSistem
	}
	if u.members.SeksiInUse(def.Name) {
		return ErrMasihDigunakan
	}
	return u.sections.Delete(id)
}

func (u *MasterDataUsecase) SaveJabatan(def model.JabatanDefinition) (*model.JabatanDefinition, error) {
	if strings.TrimSpace(def.Name) == "" {
		return nil, ErrDataKosong
	}
	if def.ID == "" {
		def.ID = newID("jab-")
	} else if existing, err := u.jabatans.FindByID(def.ID); err == nil {
		if existing.Name != def.Name {
			if err := u.members.RenameJabatan(existing.Name, def.Name); err != nil {
				return nil, err
			}
		}
	}
	if err := u.jabatans.Save(def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (u *MasterDataUsecase) DeleteJabatan(id string) error {
	def, err := u.jabatans.FindByID(id)
	if err != nil {
		return err
	}
	if u.members.JabatanInUse(def.Name) {
		return ErrMasihDigunakan
	}
	return u.jabatans.Delete(id)
}
