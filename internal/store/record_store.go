package store

import (
	"encoding/json"
	"errors"
	"log"
)

// Koleksiyon anahtarları ve session token anahtarı aynı medium'u paylaşır.
const (
	KeyMenuItems  = "mezecim_menu_items"
	KeyCategories = "mezecim_categories"
	KeyOrders     = "mezecim_orders"
	KeyAdminToken = "mezecim_admin_token"
)

// RecordStore tek bir koleksiyonu JSON dizisi olarak saklar. Kilitleme
// yok; aynı koleksiyona yarışan iki yazmadan son biten kazanır.
// Koleksiyonlar birbirinden tamamen bağımsızdır.
type RecordStore[T any] struct {
	key      string
	medium   Medium
	notifier *Notifier
	// sanitize kota aşımında ikinci deneme için koleksiyonun küçültülmüş
	// kopyasını üretir. nil ise ikinci deneme yapılmaz.
	sanitize func([]T) []T
}

func NewRecordStore[T any](key string, medium Medium, notifier *Notifier, sanitize func([]T) []T) *RecordStore[T] {
	return &RecordStore[T]{key: key, medium: medium, notifier: notifier, sanitize: sanitize}
}

func (s *RecordStore[T]) Topic() string { return s.key }

// Load kayıtlı koleksiyonu döndürür. Kayıt yoksa, okunamıyorsa veya
// liste olarak çözülemiyorsa def aynen geri verilir; çağırana asla
// hata sızmaz.
func (s *RecordStore[T]) Load(def []T) []T {
	raw, ok, err := s.medium.Get(s.key)
	if err != nil {
		log.Printf("[WARN] %s okunamadı, varsayılan kullanılıyor: %v", s.key, err)
		return def
	}
	if !ok {
		return def
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[WARN] %s bozuk, varsayılan kullanılıyor: %v", s.key, err)
		return def
	}
	if items == nil {
		// "null" geçerli JSON ama liste değil
		return def
	}
	return items
}

// Save koleksiyonun tamamını yazar ve değişiklik bildirimi yayınlar.
// Kota aşılırsa sanitize edilmiş kopya ile bir kez daha dener; o da
// yazılamazsa hata çağırana döner ve bildirim yayınlanmaz.
func (s *RecordStore[T]) Save(items []T) error {
	if err := s.write(items); err != nil {
		if !errors.Is(err, ErrCapacityExceeded) || s.sanitize == nil {
			return err
		}
		log.Printf("[WARN] %s kota aşımı, büyük payload'lar temizlenip tekrar deneniyor", s.key)
		if err := s.write(s.sanitize(items)); err != nil {
			return err
		}
	}
	s.notifier.Publish(s.key)
	return nil
}

// Reset yerel düzenlemeleri atıp koleksiyonu verilen varsayılana
// döndürür, bildirim yayınlar.
func (s *RecordStore[T]) Reset(def []T) error {
	if err := s.write(def); err != nil {
		return err
	}
	s.notifier.Publish(s.key)
	return nil
}

// Subscribe koleksiyonun topic'ine abone olur.
func (s *RecordStore[T]) Subscribe(fn func()) func() {
	return s.notifier.Subscribe(s.key, fn)
}

func (s *RecordStore[T]) write(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.medium.Set(s.key, raw)
}
