package menu

import (
	"context"
	"log"
	"net/url"
	"time"

	"mezecim-backend/internal/config"
	"mezecim-backend/internal/models"
	"mezecim-backend/internal/store"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// API menü ürünleri ve kategoriler için tek tip CRUD yüzeyi. Uzak
// backend konfigüre ve erişilebilirse okuma/yazmalar oraya, değilse
// yerel RecordStore'lara gider. Seçim kompozisyon anında bir kez
// yapılır; çağıranlar hangi yolun aktif olduğunu bilmek zorunda değil.
type API struct {
	items      *store.RecordStore[models.MenuItem]
	categories *store.RecordStore[models.Category]
	remote     *remoteBackend
	cache      *menuCache
}

// remoteConfigured uzak backend'in "açık" sayılması için hem düzgün bir
// postgres URL'i hem de credential ister. Bozuk URL ölümcül hata değil,
// "yok" muamelesi görür.
func remoteConfigured(cfg *config.Config) bool {
	if cfg.RemoteDBURL == "" || cfg.RemoteDBKey == "" {
		return false
	}
	u, err := url.Parse(cfg.RemoteDBURL)
	if err != nil || u.Host == "" {
		log.Printf("[WARN] REMOTE_DB_URL geçersiz, yerel depoya düşülüyor: %q", cfg.RemoteDBURL)
		return false
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		log.Printf("[WARN] REMOTE_DB_URL şeması desteklenmiyor (%q), yerel depoya düşülüyor", u.Scheme)
		return false
	}
	return true
}

func NewAPI(cfg *config.Config, medium store.Medium, notifier *store.Notifier) *API {
	api := &API{
		items:      store.NewRecordStore(store.KeyMenuItems, medium, notifier, SanitizeMenuItems),
		categories: store.NewRecordStore[models.Category](store.KeyCategories, medium, notifier, nil),
	}

	if remoteConfigured(cfg) {
		db, err := gorm.Open(postgres.Open(cfg.RemoteDBURL), &gorm.Config{})
		if err != nil {
			// Uzak backend'e ulaşılamıyorsa servis çökmez, yerel modda devam eder
			log.Printf("[WARN] Uzak veritabanına bağlanılamadı, yerel depoya düşülüyor: %v", err)
		} else {
			api.remote = &remoteBackend{db: db}
			if cfg.RedisURL != "" {
				api.cache = newMenuCache(cfg.RedisURL, time.Duration(cfg.MenuCacheTTL)*time.Second)
			}
			log.Println("Uzak menü backend'i aktif")
		}
	}
	if api.remote == nil {
		log.Println("Menü yerel depoda tutuluyor")
	}

	return api
}

// RemoteEnabled aktif yolu raporlar; davranış değil, sadece teşhis için.
func (a *API) RemoteEnabled() bool { return a.remote != nil }

// FetchMenuItems koleksiyonun tamamını döndürür. Uzak yol hata verirse
// kısmi sonuç değil, verilen fallback aynen döner.
func (a *API) FetchMenuItems(ctx context.Context, fallback []models.MenuItem) []models.MenuItem {
	if a.remote == nil {
		return a.items.Load(fallback)
	}
	if a.cache != nil {
		if items, ok := a.cache.get(ctx); ok {
			return items
		}
	}
	items, err := a.remote.fetchMenuItems(ctx)
	if err != nil {
		log.Printf("[WARN] Uzak menü okunamadı: %v", err)
		return fallback
	}
	if a.cache != nil {
		a.cache.set(ctx, items)
	}
	return items
}

func (a *API) FetchCategories(ctx context.Context, fallback []models.Category) []models.Category {
	if a.remote == nil {
		return a.categories.Load(fallback)
	}
	cats, err := a.remote.fetchCategories(ctx)
	if err != nil {
		log.Printf("[WARN] Uzak kategoriler okunamadı: %v", err)
		return fallback
	}
	return cats
}

// SaveMenuItem boş id'yi create sayar ve yeni id atar, dolu id'yi
// id üzerinden günceller. Hata göstergeyle döner, asla panic sızmaz.
func (a *API) SaveMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if a.remote != nil {
		if err := a.remote.upsertMenuItem(ctx, item); err != nil {
			return models.MenuItem{}, err
		}
		if a.cache != nil {
			a.cache.invalidate(ctx)
		}
		return item, nil
	}

	current := a.items.Load([]models.MenuItem{})
	replaced := false
	for i := range current {
		if current[i].ID == item.ID {
			current[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		current = append(current, item)
	}
	if err := a.items.Save(current); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// DeleteMenuItem idempotent; olmayan id hata değildir.
func (a *API) DeleteMenuItem(ctx context.Context, id string) error {
	if a.remote != nil {
		if err := a.remote.deleteMenuItem(ctx, id); err != nil {
			return err
		}
		if a.cache != nil {
			a.cache.invalidate(ctx)
		}
		return nil
	}

	current := a.items.Load([]models.MenuItem{})
	filtered := current[:0:0]
	for _, item := range current {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return a.items.Save(filtered)
}

func (a *API) SaveCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}

	if a.remote != nil {
		if err := a.remote.upsertCategory(ctx, cat); err != nil {
			return models.Category{}, err
		}
		return cat, nil
	}

	current := a.categories.Load(DefaultCategories())
	replaced := false
	for i := range current {
		if current[i].ID == cat.ID {
			current[i] = cat
			replaced = true
			break
		}
	}
	if !replaced {
		current = append(current, cat)
	}
	if err := a.categories.Save(current); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

func (a *API) DeleteCategory(ctx context.Context, id string) error {
	if a.remote != nil {
		return a.remote.deleteCategory(ctx, id)
	}

	current := a.categories.Load(DefaultCategories())
	filtered := current[:0:0]
	for _, cat := range current {
		if cat.ID != id {
			filtered = append(filtered, cat)
		}
	}
	return a.categories.Save(filtered)
}

// Reset yerel düzenlemeleri atıp gönderilen baz veriye döner. Uzak
// moddayken de sadece yerel store'lar sıfırlanır; uzak veri yönetimi
// backend'in işi.
func (a *API) Reset() error {
	if err := a.items.Reset(DefaultMenuItems()); err != nil {
		return err
	}
	return a.categories.Reset(DefaultCategories())
}

// SubscribeMenuUpdates yerel modda notifier'a bağlanır; uzak modda
// push bildirimi yok, no-op disposer döner. Çağıranlar uzak yoldan
// canlı bildirim beklememeli.
func (a *API) SubscribeMenuUpdates(fn func()) func() {
	if a.remote != nil {
		return func() {}
	}
	return a.items.Subscribe(fn)
}

func (a *API) SubscribeCategoryUpdates(fn func()) func() {
	if a.remote != nil {
		return func() {}
	}
	return a.categories.Subscribe(fn)
}
