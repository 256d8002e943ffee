package model

// BackupData adalah dokumen ekspor/impor seluruh koleksi. Urutan dan nama key
// mengikuti format file backup lama.
type BackupData struct {
	Members               []Member               `json:"members"`
	News                  []News                 `json:"news"`
	Complaints            []Complaint            `json:"complaints"`
	Directives            []EmergencyDirective   `json:"directives"`
	TaskReports           []TaskReport           `json:"taskReports"`
	Roles                 []RoleDefinition       `json:"roles"`
	Sections              []SectionDefinition    `json:"sections"`
	Sppds                 []SPPD                 `json:"sppds"`
	SppdReports           []SPPDReport           `json:"sppdReports"`
	Jabatans              []JabatanDefinition    `json:"jabatans"`
	FinancialTransactions []FinancialTransaction `json:"financialTransactions"`
	ReimbursementRequests []ReimbursementRequest `json:"reimbursementRequests"`
}
