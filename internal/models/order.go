package models

import "time"

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
)

// AllStatuses mutfak akışındaki sırayla. Store sıralamayı zorlamaz,
// herhangi bir statü herhangi bir anda set edilebilir.
var AllStatuses = []OrderStatus{StatusNew, StatusPreparing, StatusReady, StatusServed}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusServed:
		return true
	}
	return false
}

// OrderLine sipariş anındaki isim ve fiyatın denormalize kopyasını taşır;
// menü ürünü sonradan değişse veya silinse de eski siparişler bozulmaz.
type OrderLine struct {
	ItemID   string        `json:"itemId"`
	Name     LocalizedText `json:"name"`
	Price    float64       `json:"price"`
	Quantity int           `json:"quantity"`
}

type Order struct {
	ID        string      `json:"id"`
	Table     string      `json:"table"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	Items     []OrderLine `json:"items"`
}

// Total satırların price*quantity toplamı.
func (o Order) Total() float64 {
	var sum float64
	for _, line := range o.Items {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}
