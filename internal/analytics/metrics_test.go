package analytics

import (
	"testing"
	"time"

	"mezecim-backend/internal/models"
)

func tr(s string) models.LocalizedText {
	return models.LocalizedText{TR: s, EN: s}
}

func noCategories(string) (string, bool) { return "", false }

func TestComputeBasicScenario(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 30, 0, 0, time.Local)
	orders := []models.Order{
		{
			ID: "o1", Status: models.StatusNew, CreatedAt: now.Add(-time.Hour),
			Items: []models.OrderLine{
				{ItemID: "A", Name: tr("Haydari"), Price: 85, Quantity: 2},
			},
		},
		{
			ID: "o2", Status: models.StatusServed, CreatedAt: now.Add(-2 * time.Hour),
			Items: []models.OrderLine{
				{ItemID: "A", Name: tr("Haydari"), Price: 85, Quantity: 1},
				{ItemID: "B", Name: tr("Atom"), Price: 95, Quantity: 1},
			},
		},
	}

	m := Compute(orders, WindowAll, now, models.LangTR, noCategories)

	if m.TotalOrders != 2 {
		t.Errorf("totalOrders=2 bekleniyordu: %d", m.TotalOrders)
	}
	if m.TotalRevenue != 350 {
		t.Errorf("totalRevenue=350 bekleniyordu: %v", m.TotalRevenue)
	}
	if m.AvgOrder != 175 {
		t.Errorf("avgOrder=175 bekleniyordu: %d", m.AvgOrder)
	}
	want := map[models.OrderStatus]int{
		models.StatusNew: 1, models.StatusServed: 1,
		models.StatusPreparing: 0, models.StatusReady: 0,
	}
	for st, n := range want {
		got, ok := m.StatusCounts[st]
		if !ok {
			t.Errorf("statusCounts %s anahtarı eksik olmamalı", st)
		}
		if got != n {
			t.Errorf("statusCounts[%s]=%d bekleniyordu: %d", st, n, got)
		}
	}
	if len(m.TopItems) != 2 {
		t.Fatalf("iki ürün bekleniyordu: %+v", m.TopItems)
	}
	if m.TopItems[0].ItemID != "A" || m.TopItems[0].Quantity != 3 || m.TopItems[0].Revenue != 255 {
		t.Errorf("top ürün A/3/255 olmalı: %+v", m.TopItems[0])
	}
	if m.TopItems[1].ItemID != "B" || m.TopItems[1].Quantity != 1 || m.TopItems[1].Revenue != 95 {
		t.Errorf("ikinci ürün B/1/95 olmalı: %+v", m.TopItems[1])
	}
	if m.ItemsCount != 4 {
		t.Errorf("itemsCount=4 bekleniyordu: %d", m.ItemsCount)
	}
	if m.CategoryTotals[OtherCategory] != 4 {
		t.Errorf("menüde olmayan ürünler other kovasına düşmeli: %+v", m.CategoryTotals)
	}
}

func TestComputeEmptyOrders(t *testing.T) {
	m := Compute(nil, WindowAll, time.Now(), models.LangTR, noCategories)

	if m.AvgOrder != 0 {
		t.Errorf("sıfır sipariş için avgOrder tam olarak 0 olmalı: %d", m.AvgOrder)
	}
	if m.TotalOrders != 0 || m.TotalRevenue != 0 {
		t.Errorf("boş set için toplamlar 0 olmalı: %+v", m)
	}
	if len(m.StatusCounts) != 4 {
		t.Errorf("dört statü anahtarı da bulunmalı: %+v", m.StatusCounts)
	}
	if len(m.TopItems) != 0 {
		t.Errorf("topItems boş olmalı: %+v", m.TopItems)
	}
}

func TestComputeWindowFiltering(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	mk := func(id string, created time.Time) models.Order {
		return models.Order{
			ID: id, Status: models.StatusServed, CreatedAt: created,
			Items: []models.OrderLine{{ItemID: "A", Name: tr("Haydari"), Price: 100, Quantity: 1}},
		}
	}
	orders := []models.Order{
		mk("today", now.Add(-2*time.Hour)),            // bugün
		mk("yesterday", now.Add(-26*time.Hour)),       // dün, 7d içinde
		mk("lastweek", now.Add(-10*24*time.Hour)),     // 30d içinde
		mk("old", now.Add(-45*24*time.Hour)),          // sadece all
	}

	cases := []struct {
		window Window
		want   int
	}{
		{WindowToday, 1},
		{Window7Days, 2},
		{Window30Days, 3},
		{WindowAll, 4},
	}
	for _, tc := range cases {
		m := Compute(orders, tc.window, now, models.LangTR, noCategories)
		if m.TotalOrders != tc.want {
			t.Errorf("%s penceresi için %d sipariş bekleniyordu: %d", tc.window, tc.want, m.TotalOrders)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	orders := []models.Order{
		{ID: "o1", Status: models.StatusNew, CreatedAt: now.Add(-time.Hour),
			Items: []models.OrderLine{
				{ItemID: "A", Name: tr("Haydari"), Price: 85, Quantity: 1},
				{ItemID: "B", Name: tr("Atom"), Price: 95, Quantity: 1},
				{ItemID: "C", Name: tr("Şakşuka"), Price: 90, Quantity: 1},
			}},
	}

	first := Compute(orders, Window7Days, now, models.LangTR, noCategories)
	for i := 0; i < 10; i++ {
		again := Compute(orders, Window7Days, now, models.LangTR, noCategories)
		if len(again.TopItems) != len(first.TopItems) {
			t.Fatalf("deterministik değil: %+v / %+v", first.TopItems, again.TopItems)
		}
		for j := range again.TopItems {
			if again.TopItems[j] != first.TopItems[j] {
				t.Fatalf("sıralama stabil değil: %+v / %+v", first.TopItems, again.TopItems)
			}
		}
	}
	// eşit adetlerde karşılaşma sırası korunur
	if first.TopItems[0].ItemID != "A" || first.TopItems[1].ItemID != "B" || first.TopItems[2].ItemID != "C" {
		t.Errorf("eşit adetlerde ilk görülme sırası korunmalı: %+v", first.TopItems)
	}
}

func TestComputeTopItemsCappedAtFive(t *testing.T) {
	now := time.Now()
	var lines []models.OrderLine
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		lines = append(lines, models.OrderLine{ItemID: id, Name: tr(id), Price: 10, Quantity: 1})
	}
	orders := []models.Order{{ID: "o1", Status: models.StatusNew, CreatedAt: now, Items: lines}}

	m := Compute(orders, WindowAll, now, models.LangTR, noCategories)
	if len(m.TopItems) != 5 {
		t.Errorf("topItems en fazla 5 olmalı: %d", len(m.TopItems))
	}
	for i := 1; i < len(m.TopItems); i++ {
		if m.TopItems[i].Quantity > m.TopItems[i-1].Quantity {
			t.Errorf("adet azalan sırada olmalı: %+v", m.TopItems)
		}
	}
}

func TestComputeHourlyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.Local)
	mk := func(hour int) models.Order {
		return models.Order{
			ID: "o", Status: models.StatusNew,
			CreatedAt: time.Date(2025, 6, 15, hour, 30, 0, 0, time.Local),
			Items:     []models.OrderLine{{ItemID: "A", Name: tr("Haydari"), Price: 10, Quantity: 1}},
		}
	}
	orders := []models.Order{mk(9), mk(9), mk(20)}

	m := Compute(orders, WindowToday, now, models.LangTR, noCategories)
	if m.Hourly[9] != 2 || m.Hourly[20] != 1 {
		t.Errorf("saat kovaları yanlış: %v", m.Hourly)
	}
	total := 0
	for _, n := range m.Hourly {
		total += n
	}
	if total != 3 {
		t.Errorf("kovalar toplamı sipariş sayısına eşit olmalı: %d", total)
	}
}

func TestComputeCategoryTotals(t *testing.T) {
	now := time.Now()
	menu := []models.MenuItem{
		{ID: "A", Category: "mezeler"},
		{ID: "B", Category: "icecekler"},
	}
	orders := []models.Order{
		{ID: "o1", Status: models.StatusNew, CreatedAt: now,
			Items: []models.OrderLine{
				{ItemID: "A", Name: tr("Haydari"), Price: 85, Quantity: 2},
				{ItemID: "B", Name: tr("Ayran"), Price: 30, Quantity: 1},
				{ItemID: "silinmis", Name: tr("Eski Ürün"), Price: 50, Quantity: 3},
			}},
	}

	m := Compute(orders, WindowAll, now, models.LangTR, CategoryLookup(menu))
	if m.CategoryTotals["mezeler"] != 2 || m.CategoryTotals["icecekler"] != 1 {
		t.Errorf("kategori toplamları yanlış: %+v", m.CategoryTotals)
	}
	if m.CategoryTotals[OtherCategory] != 3 {
		t.Errorf("dangling ürün other'a düşmeli: %+v", m.CategoryTotals)
	}
}

func TestParseWindow(t *testing.T) {
	if ParseWindow("today") != WindowToday || ParseWindow("all") != WindowAll {
		t.Error("bilinen pencereler aynen çözülmeli")
	}
	if ParseWindow("") != Window7Days || ParseWindow("yillik") != Window7Days {
		t.Error("bilinmeyen pencere 7d'ye düşmeli")
	}
}
