package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestLoadBelumAda(t *testing.T) {
	st, err := Open(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	var items []string
	err = st.Load("members", &items)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("harusnya os.ErrNotExist, dapat: %v", err)
	}
}

func TestSaveLaluLoad(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	in := []map[string]string{{"id": "mem-001", "namaLengkap": "Budi"}}
	if err := st.Save("members", in); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// Nama file harus mengikuti pola bnpb:<entity>.json
	if _, err := os.Stat(filepath.Join(dir, "bnpb:members.json")); err != nil {
		t.Fatalf("file koleksi tidak ditemukan: %v", err)
	}

	var out []map[string]string
	if err := st.Load("members", &out); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(out) != 1 || out[0]["namaLengkap"] != "Budi" {
		t.Errorf("data tidak utuh setelah round-trip: %+v", out)
	}
}

func TestLoadKorup(t *testing.T) {
	dir := t.TempDir()
	st, err := Open(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bnpb:news.json"), []byte("{bukan json"), 0644); err != nil {
		t.Fatal(err)
	}

	var items []string
	if err := st.Load("news", &items); err == nil {
		t.Error("file korup harusnya mengembalikan error")
	}
}
