package store

import (
	"log"
	"sync"
)

// Notifier süreç içi topic bazlı pub/sub. Payload taşımaz; abone olan
// taraf değişikliği duyunca veriyi kendisi yeniden çeker. Teslimat
// senkron ve kayıt sırasıyladır, süreç yeniden başlayınca abonelikler
// uçar.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscriber
}

type subscriber struct {
	id int
	fn func()
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string][]subscriber)}
}

// Subscribe callback'i kaydeder, aboneliği kaldıran disposer döndürür.
func (n *Notifier) Subscribe(topic string, fn func()) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs[topic] = append(n.subs[topic], subscriber{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		list := n.subs[topic]
		for i, s := range list {
			if s.id == id {
				n.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish o anki aboneleri kayıt sırasıyla senkron çağırır. Panic'leyen
// bir abone diğerlerinin teslimatını engellemez.
func (n *Notifier) Publish(topic string) {
	n.mu.Lock()
	list := make([]subscriber, len(n.subs[topic]))
	copy(list, n.subs[topic])
	n.mu.Unlock()

	for _, s := range list {
		deliver(topic, s.fn)
	}
}

func deliver(topic string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] %s abonesi panic'ledi: %v", topic, r)
		}
	}()
	fn()
}
