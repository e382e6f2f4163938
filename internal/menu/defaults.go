package menu

import (
	"strings"

	"mezecim-backend/internal/icons"
	"mezecim-backend/internal/models"
)

// DefaultCategories gönderilen baz veri: sadece rezerve "tüm menü"
// sanal kategorisi. Reset bu listeye döner.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:     models.CategoryAll,
			Labels: models.LocalizedText{TR: "Tüm Menü", EN: "All Menu"},
			Icon:   string(icons.UtensilsCrossed),
		},
	}
}

// DefaultMenuItems baz menü boştur; ürünler admin panelden girilir.
func DefaultMenuItems() []models.MenuItem {
	return []models.MenuItem{}
}

// SanitizeMenuItems kota aşımında inline görsel payload'larını boşaltır,
// diğer tüm alanları korur. Normal URL referanslarına dokunulmaz.
func SanitizeMenuItems(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	for i := range out {
		if strings.HasPrefix(out[i].Image, "data:") {
			out[i].Image = ""
		}
	}
	return out
}
