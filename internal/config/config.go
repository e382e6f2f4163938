package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort    string
	CORSOrigins string

	// Yerel kalıcı depo
	DataDir         string
	LocalValueLimit int // koleksiyon başına bayt kotası, 0 = sınırsız

	// Uzak backend; ikisi de doluysa ve URL geçerliyse uzak mod açılır
	RemoteDBURL string
	RemoteDBKey string

	// Opsiyonel menü cache'i (sadece uzak mod)
	RedisURL     string
	MenuCacheTTL int // saniye

	// Admin girişi
	AdminUsername     string
	AdminPasswordHash []byte
	TokenTTLMinutes   int
}

func Load() *Config {
	// Varsa .env dosyasını yükle
	godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		LocalValueLimit: getEnvAsInt("LOCAL_VALUE_LIMIT", 5*1024*1024), // localStorage kotasına denk
		RemoteDBURL:     getEnv("REMOTE_DB_URL", ""),
		RemoteDBKey:     getEnv("REMOTE_DB_KEY", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		MenuCacheTTL:    getEnvAsInt("MENU_CACHE_TTL", 600),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		TokenTTLMinutes: getEnvAsInt("TOKEN_TTL_MINUTES", 120),
	}

	password := getEnv("ADMIN_PASSWORD", "1234")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[FATAL] Admin şifresi hashlenemedi: %v", err)
	}
	cfg.AdminPasswordHash = hash

	if password == "1234" {
		log.Println("[WARN] ADMIN_PASSWORD varsayılan değerde, production için mutlaka değiştir.")
	}
	if cfg.CORSOrigins == "http://localhost:3000" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için kendi domain'ini tanımla.")
	}
	if cfg.RemoteDBURL != "" && cfg.RemoteDBKey == "" {
		log.Println("[WARN] REMOTE_DB_URL tanımlı ama REMOTE_DB_KEY boş, uzak backend devre dışı kalacak.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
