package main

import (
	"log"
	"strings"

	"mezecim-backend/internal/analytics"
	"mezecim-backend/internal/auth"
	"mezecim-backend/internal/config"
	"mezecim-backend/internal/menu"
	"mezecim-backend/internal/models"
	"mezecim-backend/internal/order"
	"mezecim-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	medium, err := store.NewFileMedium(cfg.DataDir, cfg.LocalValueLimit)
	if err != nil {
		log.Fatalf("Yerel depo açılamadı: %v", err)
	}
	notifier := store.NewNotifier()

	// Store'lar süreç başına bir kez kurulur ve açıkça enjekte edilir,
	// gizli singleton yok
	menuAPI := menu.NewAPI(cfg, medium, notifier)
	orderService := order.NewService(
		store.NewRecordStore[models.Order](store.KeyOrders, medium, notifier, nil),
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public menü
	api.Get("/menu-items", menu.ListMenuItemsHandler(menuAPI))
	api.Get("/categories", menu.ListCategoriesHandler(menuAPI))

	// Auth
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Mutfak / sipariş panosu
	api.Get("/orders", order.ListOrdersHandler(orderService))
	api.Post("/orders", order.CreateOrderHandler(orderService))
	api.Put("/orders/:id/status", order.UpdateOrderStatusHandler(orderService))
	api.Get("/orders/watch", order.WatchOrdersHandler(orderService))

	// Admin paneli
	protected := api.Group("/admin")
	protected.Use(auth.TokenMiddleware())

	protected.Get("/me", auth.MeHandler())

	// Menü yönetimi
	protected.Post("/menu-items", menu.CreateMenuItemHandler(menuAPI))
	protected.Put("/menu-items/:id", menu.UpdateMenuItemHandler(menuAPI))
	protected.Delete("/menu-items/:id", menu.DeleteMenuItemHandler(menuAPI))
	protected.Post("/menu/reset", menu.ResetMenuHandler(menuAPI))

	// Kategori yönetimi
	protected.Get("/categories", menu.ListAdminCategoriesHandler(menuAPI))
	protected.Post("/categories", menu.SaveCategoryHandler(menuAPI))
	protected.Delete("/categories/:id", menu.DeleteCategoryHandler(menuAPI))

	// Dashboard
	protected.Get("/analytics", analytics.DashboardHandler(orderService, menuAPI))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
