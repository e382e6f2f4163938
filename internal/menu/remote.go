package menu

import (
	"context"
	"encoding/json"

	"mezecim-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Uzak tablolar satır odaklıdır; kolon isimleri buradaki row struct'ların
// dışına sızmaz. Entity ↔ satır dönüşümü tek yerde, deklaratif olarak
// yapılır.

type menuItemRow struct {
	ID          string  `gorm:"column:id;primaryKey"`
	CategoryID  string  `gorm:"column:category_id"`
	Name        string  `gorm:"column:name"`        // LocalizedText JSON
	Description string  `gorm:"column:description"` // LocalizedText JSON
	Price       float64 `gorm:"column:price"`
	ImageURL    string  `gorm:"column:image_url"`
	IsAvailable bool    `gorm:"column:is_available"`
	IsPopular   bool    `gorm:"column:is_popular"`
}

func (menuItemRow) TableName() string { return "menu_items" }

type categoryRow struct {
	ID        string `gorm:"column:id;primaryKey"`
	Labels    string `gorm:"column:labels"` // LocalizedText JSON
	Icon      string `gorm:"column:icon"`
	SortOrder int    `gorm:"column:sort_order"`
}

func (categoryRow) TableName() string { return "categories" }

func marshalText(t models.LocalizedText) string {
	raw, err := json.Marshal(t)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// unmarshalText bozuk kolonu sessizce boş metne çözer; kullanıcıya
// giden tarafta nil dereference olmaz.
func unmarshalText(raw string) models.LocalizedText {
	var t models.LocalizedText
	if raw == "" {
		return t
	}
	_ = json.Unmarshal([]byte(raw), &t)
	return t
}

func rowToMenuItem(r menuItemRow) models.MenuItem {
	return models.MenuItem{
		ID:          r.ID,
		Name:        unmarshalText(r.Name),
		Description: unmarshalText(r.Description),
		Price:       r.Price,
		Image:       r.ImageURL,
		Category:    r.CategoryID,
		IsAvailable: r.IsAvailable,
		IsPopular:   r.IsPopular,
	}
}

func menuItemToRow(item models.MenuItem) menuItemRow {
	return menuItemRow{
		ID:          item.ID,
		CategoryID:  item.Category,
		Name:        marshalText(item.Name),
		Description: marshalText(item.Description),
		Price:       item.Price,
		ImageURL:    item.Image,
		IsAvailable: item.IsAvailable,
		IsPopular:   item.IsPopular,
	}
}

func rowToCategory(r categoryRow) models.Category {
	return models.Category{
		ID:     r.ID,
		Labels: unmarshalText(r.Labels),
		Icon:   r.Icon,
	}
}

func categoryToRow(cat models.Category, sortOrder int) categoryRow {
	return categoryRow{
		ID:        cat.ID,
		Labels:    marshalText(cat.Labels),
		Icon:      cat.Icon,
		SortOrder: sortOrder,
	}
}

// remoteBackend aynı CRUD kontratının GORM/postgres implementasyonu.
// Her hata seçici katmanda yakalanır, UI koduna exception geçmez.
type remoteBackend struct {
	db *gorm.DB
}

func (r *remoteBackend) fetchMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var rows []menuItemRow
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]models.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToMenuItem(row))
	}
	return items, nil
}

func (r *remoteBackend) fetchCategories(ctx context.Context) ([]models.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Order("sort_order asc, id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	cats := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, rowToCategory(row))
	}
	return cats, nil
}

func (r *remoteBackend) upsertMenuItem(ctx context.Context, item models.MenuItem) error {
	row := menuItemToRow(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).Error
}

func (r *remoteBackend) deleteMenuItem(ctx context.Context, id string) error {
	// Olmayan id'yi silmek hata değil
	return r.db.WithContext(ctx).Delete(&menuItemRow{}, "id = ?", id).Error
}

func (r *remoteBackend) upsertCategory(ctx context.Context, cat models.Category) error {
	var count int64
	r.db.WithContext(ctx).Model(&categoryRow{}).Count(&count)
	row := categoryToRow(cat, int(count))
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"labels", "icon"}),
		}).
		Create(&row).Error
}

func (r *remoteBackend) deleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&categoryRow{}, "id = ?", id).Error
}
