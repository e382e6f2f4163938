// Package analytics sipariş koleksiyonundan dashboard read-model'ini
// üretir. Saf dönüşümdür: I/O yok, yan etki yok; aynı sipariş seti,
// aynı pencere ve aynı değerlendirme anı her zaman aynı sonucu verir.
package analytics

import (
	"math"
	"sort"
	"time"

	"mezecim-backend/internal/models"
)

type Window string

const (
	WindowToday  Window = "today"
	Window7Days  Window = "7d"
	Window30Days Window = "30d"
	WindowAll    Window = "all"
)

// ParseWindow bilinmeyen değerleri 7 günlük pencereye düşürür.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowToday, Window7Days, Window30Days, WindowAll:
		return Window(s)
	}
	return Window7Days
}

// OtherCategory menüde karşılığı kalmamış ürün satırlarının toplandığı kova.
const OtherCategory = "other"

type ItemStat struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Metrics struct {
	TotalOrders     int                            `json:"totalOrders"`
	TotalRevenue    float64                        `json:"totalRevenue"`
	AvgOrder        int                            `json:"avgOrder"`
	ItemsCount      int                            `json:"itemsCount"`
	StatusCounts    map[models.OrderStatus]int     `json:"statusCounts"`
	RevenueByStatus map[models.OrderStatus]float64 `json:"revenueByStatus"`
	TopItems        []ItemStat                     `json:"topItems"`
	CategoryTotals  map[string]int                 `json:"categoryTotals"`
	Hourly          [24]int                        `json:"hourly"`
}

// CategoryLookup menü snapshot'ından ürün id → kategori id fonksiyonu
// üretir. Menüde olmayan id'ler için ikinci dönüş false'tur.
func CategoryLookup(items []models.MenuItem) func(itemID string) (string, bool) {
	byID := make(map[string]string, len(items))
	for _, item := range items {
		byID[item.ID] = item.Category
	}
	return func(itemID string) (string, bool) {
		cat, ok := byID[itemID]
		return cat, ok
	}
}

// Compute siparişleri pencereye göre bir kez filtreler ve altı metriği
// aynı filtrelenmiş set üzerinden üretir; metrik başına yeniden
// filtreleme yapılmaz, tek çağrı içinde tutarlılık garanti edilir.
func Compute(orders []models.Order, window Window, now time.Time, lang models.Language, categoryOf func(string) (string, bool)) Metrics {
	filtered := filterByWindow(orders, window, now)

	m := Metrics{
		StatusCounts:    make(map[models.OrderStatus]int, len(models.AllStatuses)),
		RevenueByStatus: make(map[models.OrderStatus]float64, len(models.AllStatuses)),
		CategoryTotals:  make(map[string]int),
		TopItems:        []ItemStat{},
	}
	// Hiç görünmeyen statüler de 0 olarak raporlanır
	for _, st := range models.AllStatuses {
		m.StatusCounts[st] = 0
		m.RevenueByStatus[st] = 0
	}

	// karşılaşma sırası korunur; eşit adetlerde stabil sıralama için
	itemOrder := []string{}
	itemStats := make(map[string]*ItemStat)

	for _, o := range filtered {
		m.TotalOrders++
		total := o.Total()
		m.TotalRevenue += total
		m.StatusCounts[o.Status]++
		m.RevenueByStatus[o.Status] += total
		m.Hourly[o.CreatedAt.Hour()]++

		for _, line := range o.Items {
			m.ItemsCount += line.Quantity

			stat, ok := itemStats[line.ItemID]
			if !ok {
				stat = &ItemStat{ItemID: line.ItemID, Name: line.Name.In(lang)}
				itemStats[line.ItemID] = stat
				itemOrder = append(itemOrder, line.ItemID)
			}
			stat.Quantity += line.Quantity
			stat.Revenue += line.Price * float64(line.Quantity)

			cat, ok := categoryOf(line.ItemID)
			if !ok || cat == "" {
				cat = OtherCategory
			}
			m.CategoryTotals[cat] += line.Quantity
		}
	}

	if m.TotalOrders > 0 {
		m.AvgOrder = int(math.Round(m.TotalRevenue / float64(m.TotalOrders)))
	}

	ranked := make([]ItemStat, 0, len(itemOrder))
	for _, id := range itemOrder {
		ranked = append(ranked, *itemStats[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	m.TopItems = ranked

	return m
}

func filterByWindow(orders []models.Order, window Window, now time.Time) []models.Order {
	if window == WindowAll {
		return orders
	}

	var start time.Time
	switch window {
	case WindowToday:
		// yerel takvim gününün başından şu ana
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Window30Days:
		start = now.Add(-30 * 24 * time.Hour)
	default: // 7d
		start = now.Add(-7 * 24 * time.Hour)
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.Before(start) {
			out = append(out, o)
		}
	}
	return out
}
