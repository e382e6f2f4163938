package store

import "testing"

func TestPublishInRegistrationOrder(t *testing.T) {
	n := NewNotifier()

	var order []int
	n.Subscribe("orders", func() { order = append(order, 1) })
	n.Subscribe("orders", func() { order = append(order, 2) })
	n.Subscribe("orders", func() { order = append(order, 3) })

	n.Publish("orders")

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("kayıt sırası korunmalı: %v", order)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	n := NewNotifier()

	count := 0
	unsub := n.Subscribe("menu", func() { count++ })

	n.Publish("menu")
	unsub()
	n.Publish("menu")

	if count != 1 {
		t.Errorf("unsubscribe sonrası teslimat olmamalı: %d", count)
	}

	// İkinci çağrı güvenli olmalı
	unsub()
	n.Publish("menu")
	if count != 1 {
		t.Errorf("çift unsubscribe yan etki yaratmamalı: %d", count)
	}
}

func TestPanickingSubscriberDoesNotBlockOthers(t *testing.T) {
	n := NewNotifier()

	delivered := false
	n.Subscribe("menu", func() { panic("abone patladı") })
	n.Subscribe("menu", func() { delivered = true })

	n.Publish("menu")

	if !delivered {
		t.Error("panic'leyen abone sonrakilerin teslimatını engellememeli")
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	n := NewNotifier()

	menuCount, orderCount := 0, 0
	n.Subscribe("menu", func() { menuCount++ })
	n.Subscribe("orders", func() { orderCount++ })

	n.Publish("orders")

	if menuCount != 0 || orderCount != 1 {
		t.Errorf("topic izolasyonu bozuk: menu=%d orders=%d", menuCount, orderCount)
	}
}

func TestUnsubscribeDuringPublishIsSafe(t *testing.T) {
	n := NewNotifier()

	var unsub func()
	count := 0
	unsub = n.Subscribe("menu", func() {
		count++
		unsub()
	})
	n.Subscribe("menu", func() { count++ })

	n.Publish("menu")
	n.Publish("menu")

	// İlk publish iki aboneyi de görür, ikincisi sadece kalanı
	if count != 3 {
		t.Errorf("beklenen 3 teslimat, alınan %d", count)
	}
}
