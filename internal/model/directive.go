package model

import (
	"encoding/json"
	"fmt"
)

const (
	DirectiveBaru       = "Baru"
	DirectiveDikerjakan = "Dikerjakan"
	DirectiveSelesai    = "Selesai"
)

const (
	TaskDilihat    = "Dilihat"
	TaskDilaporkan = "Dilaporkan"
)

// DirectiveAssignment adalah tagged union: perintah ditujukan ke SEMUA anggota
// atau ke daftar id anggota tertentu. Di penyimpanan bentuknya literal "all"
// atau array id, mengikuti format data lama.
type DirectiveAssignment struct {
	All       bool
	MemberIDs []string
}

func AssignAll() DirectiveAssignment { return DirectiveAssignment{All: true} }

func AssignMembers(ids []string) DirectiveAssignment {
	return DirectiveAssignment{MemberIDs: ids}
}

// Includes melaporkan apakah anggota termasuk penerima perintah ini.
func (a DirectiveAssignment) Includes(memberID string) bool {
	if a.All {
		return true
	}
	for _, id := range a.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

func (a DirectiveAssignment) MarshalJSON() ([]byte, error) {
	if a.All {
		return json.Marshal("all")
	}
	if a.MemberIDs == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a.MemberIDs)
}

func (a *DirectiveAssignment) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "all" {
			return fmt.Errorf("assignedTo string hanya boleh bernilai \"all\", dapat %q", s)
		}
		*a = DirectiveAssignment{All: true}
		return nil
	}
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return fmt.Errorf("assignedTo harus \"all\" atau array id anggota: %w", err)
	}
	*a = DirectiveAssignment{MemberIDs: ids}
	return nil
}

type EmergencyDirective struct {
	ID             string              `json:"id"`
	CreatedBy      string              `json:"createdBy"`
	Title          string              `json:"title"`
	Urgency        string              `json:"urgency"` // Tinggi / Sedang / Rendah
	Status         string              `json:"status"`  // diatur manual oleh pembuat
	Date           string              `json:"date"`
	Description    string              `json:"description"`
	AssignedTo     DirectiveAssignment `json:"assignedTo"`
	AttachmentUrl  string              `json:"attachmentUrl,omitempty"`
	AttachmentName string              `json:"attachmentName,omitempty"`
}

// TaskReport adalah laporan per (anggota, perintah). Id komposit menjamin
// maksimal satu record per pasangan.
type TaskReport struct {
	ID             string `json:"id"` // `${memberId}-${directiveId}`
	MemberID       string `json:"memberId"`
	DirectiveID    string `json:"directiveId"`
	Status         string `json:"status"` // Dilihat / Dilaporkan
	ReportText     string `json:"reportText,omitempty"`
	ReportImageUrl string `json:"reportImageUrl,omitempty"`
	ReportedAt     string `json:"reportedAt,omitempty"`
}

func TaskReportID(memberID, directiveID string) string {
	return memberID + "-" + directiveID
}

// DirectiveProgress adalah agregasi kemajuan sebuah perintah. Jumlah penerima
// dihitung ulang saat query (untuk "all" mengikuti jumlah anggota saat ini).
type DirectiveProgress struct {
	DirectiveID   string `json:"directiveId"`
	AssignedCount int    `json:"assignedCount"`
	ViewedCount   int    `json:"viewedCount"`
	ReportedCount int    `json:"reportedCount"`
}
