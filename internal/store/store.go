package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Namespace meniru prefix key penyimpanan lama: setiap koleksi disimpan utuh
// sebagai satu file JSON bernama `bnpb:<namaEntity>.json` di dalam data dir.
const Namespace = "bnpb"

// Store menulis-ulang seluruh koleksi pada setiap mutasi. Tidak ada versioning
// skema ataupun perbaikan file korup; file yang gagal dibaca dilaporkan lewat
// error dan pemanggil jatuh ke dataset default.
type Store struct {
	dir string
	log *zap.Logger
}

func Open(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("gagal menyiapkan data dir %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) path(entity string) string {
	return filepath.Join(s.dir, Namespace+":"+entity+".json")
}

// Load membaca satu koleksi. Mengembalikan os.ErrNotExist jika file belum ada.
func (s *Store) Load(entity string, v any) error {
	b, err := os.ReadFile(s.path(entity))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		s.log.Warn("file koleksi tidak bisa diparse, memakai dataset default",
			zap.String("entity", entity), zap.Error(err))
		return fmt.Errorf("koleksi %s korup: %w", entity, err)
	}
	return nil
}

// Save menyerialisasi koleksi dan menimpa filenya secara utuh.
func (s *Store) Save(entity string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("gagal serialisasi koleksi %s: %w", entity, err)
	}
	if err := os.WriteFile(s.path(entity), b, 0644); err != nil {
		s.log.Error("gagal menulis koleksi", zap.String("entity", entity), zap.Error(err))
		return err
	}
	return nil
}
