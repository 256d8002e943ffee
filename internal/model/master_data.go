package model

// Data master lookup. Entri isSystem tidak boleh diubah namanya atau dihapus.

type RoleDefinition struct {
	ID       string `json:"id"`   // e.g. 'pimpinan'
	Name     string `json:"name"` // e.g. 'Pimpinan'
	IsSystem bool   `json:"isSystem"`
}

type SectionDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsSystem bool   `json:"isSystem"`
}

type JabatanDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
