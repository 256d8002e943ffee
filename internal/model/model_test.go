package model

import (
	"encoding/json"
	"testing"
)

func TestComplaintOwnerRoundTrip(t *testing.T) {
	cases := []struct {
		raw       string
		wantRole  string
		wantSeksi string
	}{
		{`"operator"`, OwnerOperator, ""},
		{`"sekretaris"`, OwnerSekretaris, ""},
		{`"pimpinan"`, OwnerPimpinan, ""},
		{`"kedaruratan"`, "", "kedaruratan"},
		{`"seksi-abc123"`, "", "seksi-abc123"},
	}
	for _, c := range cases {
		var o ComplaintOwner
		if err := json.Unmarshal([]byte(c.raw), &o); err != nil {
			t.Fatalf("unmarshal %s: %v", c.raw, err)
		}
		if o.Role != c.wantRole || o.SeksiID != c.wantSeksi {
			t.Errorf("%s: dapat role=%q seksi=%q", c.raw, o.Role, o.SeksiID)
		}
		b, err := json.Marshal(o)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		// Bentuk di penyimpanan harus tetap string tunggal
		if string(b) != c.raw {
			t.Errorf("round-trip %s menghasilkan %s", c.raw, b)
		}
	}
}

func TestDirectiveAssignmentAll(t *testing.T) {
	var a DirectiveAssignment
	if err := json.Unmarshal([]byte(`"all"`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !a.All {
		t.Error("literal \"all\" harusnya menandai semua anggota")
	}
	if !a.Includes("mem-xyz") {
		t.Error("assignment all harus mencakup anggota mana pun")
	}

	b, _ := json.Marshal(a)
	if string(b) != `"all"` {
		t.Errorf("marshal menghasilkan %s", b)
	}
}

func TestDirectiveAssignmentMembers(t *testing.T) {
	var a DirectiveAssignment
	if err := json.Unmarshal([]byte(`["mem-001","mem-002"]`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.All {
		t.Error("array id tidak boleh dianggap all")
	}
	if !a.Includes("mem-001") || a.Includes("mem-003") {
		t.Error("Includes salah menilai keanggotaan")
	}
}

func TestDirectiveAssignmentStringLain(t *testing.T) {
	var a DirectiveAssignment
	if err := json.Unmarshal([]byte(`"semua"`), &a); err == nil {
		t.Error("string selain \"all\" harusnya ditolak")
	}
}

func TestCompositeIDs(t *testing.T) {
	if got := TaskReportID("mem-001", "dir-001"); got != "mem-001-dir-001" {
		t.Errorf("TaskReportID: %s", got)
	}
	if got := SPPDReportID("sppd-001", "mem-002"); got != "sppd-001-mem-002" {
		t.Errorf("SPPDReportID: %s", got)
	}
	if got := ReimbursementTransactionID("reimburse-9"); got != "fin-reimburse-reimburse-9" {
		t.Errorf("ReimbursementTransactionID: %s", got)
	}
}
