package analytics

import (
	"time"

	"mezecim-backend/internal/menu"
	"mezecim-backend/internal/models"
	"mezecim-backend/internal/order"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/analytics?range=7d&lang=tr
// Ham siparişler tek seferde okunur, tüm metrikler aynı snapshot'tan
// hesaplanır. Kategori eşlemesi o anki menü snapshot'ından gelir.
func DashboardHandler(orders *order.Service, menuAPI *menu.API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		window := ParseWindow(c.Query("range", string(Window7Days)))

		lang := models.LangTR
		if c.Query("lang") == string(models.LangEN) {
			lang = models.LangEN
		}

		items := menuAPI.FetchMenuItems(c.Context(), menu.DefaultMenuItems())
		metrics := Compute(orders.List(), window, time.Now(), lang, CategoryLookup(items))

		return c.JSON(fiber.Map{
			"range":   window,
			"metrics": metrics,
		})
	}
}
