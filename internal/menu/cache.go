package menu

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mezecim-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const menuCacheKey = "mezecim:menu_items"

// menuCache uzak menü okumalarının önüne konan opsiyonel read-through
// katman. Yerel modda kullanılmaz; okumalar zaten dosyadan gelir.
// Cache hatası hiçbir zaman isteği düşürmez, uzak yola devam edilir.
type menuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newMenuCache(redisURL string, ttl time.Duration) *menuCache {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] REDIS_URL çözümlenemedi, menü cache devre dışı: %v", err)
		return nil
	}
	return &menuCache{client: redis.NewClient(opts), ttl: ttl}
}

func (c *menuCache) get(ctx context.Context) ([]models.MenuItem, bool) {
	raw, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *menuCache) set(ctx context.Context, items []models.MenuItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuCacheKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[WARN] menü cache yazılamadı: %v", err)
	}
}

func (c *menuCache) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, menuCacheKey).Err(); err != nil {
		log.Printf("[WARN] menü cache temizlenemedi: %v", err)
	}
}
