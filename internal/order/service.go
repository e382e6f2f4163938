package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"mezecim-backend/internal/models"
	"mezecim-backend/internal/store"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("sipariş bulunamadı")
	ErrInvalidStatus = errors.New("geçersiz sipariş durumu")
	ErrEmptyOrder    = errors.New("sipariş en az bir satır içermeli")
)

// Service sipariş koleksiyonunun tek sahibi. Siparişler yalnızca yerel
// store'da tutulur; oluşturulduktan sonra değişen tek alan status'tür,
// silme yolu yoktur.
type Service struct {
	store *store.RecordStore[models.Order]
}

func NewService(st *store.RecordStore[models.Order]) *Service {
	return &Service{store: st}
}

func (s *Service) List() []models.Order {
	return s.store.Load([]models.Order{})
}

// Create satırları birleştirip yeni siparişi listenin başına ekler.
// Aynı ürüne ait satırlar tek satıra toplanır, adetler toplanır.
func (s *Service) Create(table, note string, lines []models.OrderLine) (models.Order, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return models.Order{}, errors.New("masa etiketi zorunlu")
	}

	var merged []models.OrderLine
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		merged = MergeLine(merged, line)
	}
	if len(merged) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	o := models.Order{
		ID:        uuid.NewString(),
		Table:     table,
		CreatedAt: time.Now(),
		Status:    models.StatusNew,
		Note:      strings.TrimSpace(note),
		Items:     merged,
	}

	current := s.List()
	updated := append([]models.Order{o}, current...)
	if err := s.store.Save(updated); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// UpdateStatus siparişin durumunu değiştirir. Store akış sırasını
// zorlamaz; herhangi bir statü herhangi bir anda set edilebilir.
func (s *Service) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidStatus
	}

	current := s.List()
	for i := range current {
		if current[i].ID == id {
			current[i].Status = status
			if err := s.store.Save(current); err != nil {
				return models.Order{}, err
			}
			return current[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Watch sipariş koleksiyonu değişene ya da ctx bitene kadar bloklar.
// Değişiklik duyulursa true döner. Mutfak panosunun long-poll ucu
// bunun üzerinden beslenir.
func (s *Service) Watch(ctx context.Context) bool {
	ch := make(chan struct{}, 1)
	unsub := s.store.Subscribe(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	defer unsub()

	select {
	case <-ch:
		return true
	case <-ctx.Done():
		return false
	}
}

// Subscribe sipariş topic'ine abone olur.
func (s *Service) Subscribe(fn func()) func() {
	return s.store.Subscribe(fn)
}

// MergeLine satırı sete ekler; aynı ürün zaten varsa adet toplanır,
// satır asla çoğaltılmaz.
func MergeLine(lines []models.OrderLine, line models.OrderLine) []models.OrderLine {
	for i := range lines {
		if lines[i].ItemID == line.ItemID {
			out := make([]models.OrderLine, len(lines))
			copy(out, lines)
			out[i].Quantity += line.Quantity
			return out
		}
	}
	return append(append([]models.OrderLine{}, lines...), line)
}

// RemoveLine ürünü setten çıkarır; sette olmayan bir ürün için no-op.
func RemoveLine(lines []models.OrderLine, itemID string) []models.OrderLine {
	for i := range lines {
		if lines[i].ItemID == itemID {
			return append(append([]models.OrderLine{}, lines[:i]...), lines[i+1:]...)
		}
	}
	return lines
}
