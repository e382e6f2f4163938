package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrCapacityExceeded yazılmak istenen değer medium'un kota sınırını aşıyor.
var ErrCapacityExceeded = errors.New("kayıt alanı kotası aşıldı")

// Medium tüm koleksiyonların paylaştığı kalıcı key-value katmanı.
// Farklı anahtarlara yazmalar birbirini bloklamaz ama kotayı paylaşır.
type Medium interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileMedium her anahtarı DATA_DIR altında ayrı bir dosyada tutar.
// MaxValueBytes localStorage kotasına denk gelen değer başı sınır;
// 0 ise sınırsız.
type FileMedium struct {
	dir           string
	maxValueBytes int
}

func NewFileMedium(dir string, maxValueBytes int) (*FileMedium, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("veri klasörü oluşturulamadı: %w", err)
	}
	return &FileMedium{dir: dir, maxValueBytes: maxValueBytes}, nil
}

func (m *FileMedium) path(key string) string {
	// Anahtarlar sabit koleksiyon isimleri; yine de path ayracı temizlenir
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(m.dir, key+".json")
}

func (m *FileMedium) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (m *FileMedium) Set(key string, value []byte) error {
	if m.maxValueBytes > 0 && len(value) > m.maxValueBytes {
		return ErrCapacityExceeded
	}
	tmp := m.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.path(key))
}

func (m *FileMedium) Delete(key string) error {
	err := os.Remove(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
