package menu

import (
	"strings"

	"mezecim-backend/internal/icons"
	"mezecim-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MenuItemRequest struct {
	Name        models.LocalizedText `json:"name"`
	Description models.LocalizedText `json:"description"`
	Price       float64              `json:"price"`
	Image       string               `json:"image"`
	Category    string               `json:"category"`
	IsAvailable bool                 `json:"isAvailable"`
	IsPopular   bool                 `json:"isPopular"`
}

type CategoryRequest struct {
	ID     string               `json:"id"`
	Labels models.LocalizedText `json:"labels"`
	Icon   string               `json:"icon"`
}

func (r *MenuItemRequest) validate() error {
	r.Name.TR = strings.TrimSpace(r.Name.TR)
	r.Name.EN = strings.TrimSpace(r.Name.EN)
	if r.Name.TR == "" && r.Name.EN == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Ürün adı zorunlu")
	}
	if r.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz")
	}
	if strings.TrimSpace(r.Category) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Kategori zorunlu")
	}
	return nil
}

func (r MenuItemRequest) toItem(id string) models.MenuItem {
	return models.MenuItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    strings.TrimSpace(r.Category),
		IsAvailable: r.IsAvailable,
		IsPopular:   r.IsPopular,
	}
}

// GET /api/menu-items (public)
func ListMenuItemsHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := api.FetchMenuItems(c.Context(), DefaultMenuItems())
		return c.JSON(items)
	}
}

// GET /api/categories (public, sanal "hepsi" kategorisi dahil)
func ListCategoriesHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats := api.FetchCategories(c.Context(), DefaultCategories())
		return c.JSON(cats)
	}
}

// GET /api/admin/categories
// Yönetim listesi; rezerve sanal kategori düzenlenemez, listeden çıkarılır.
func ListAdminCategoriesHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cats := api.FetchCategories(c.Context(), DefaultCategories())
		res := make([]models.Category, 0, len(cats))
		for _, cat := range cats {
			if cat.ID == models.CategoryAll {
				continue
			}
			res = append(res, cat)
		}
		return c.JSON(res)
	}
}

// POST /api/admin/menu-items
func CreateMenuItemHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := body.validate(); err != nil {
			return err
		}

		saved, err := api.SaveMenuItem(c.Context(), body.toItem(""))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün kaydedilemedi")
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// PUT /api/admin/menu-items/:id
func UpdateMenuItemHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body MenuItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := body.validate(); err != nil {
			return err
		}

		saved, err := api.SaveMenuItem(c.Context(), body.toItem(id))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}
		return c.JSON(saved)
	}
}

// DELETE /api/admin/menu-items/:id
func DeleteMenuItemHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := api.DeleteMenuItem(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/categories
func SaveCategoryHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Labels.TR = strings.TrimSpace(body.Labels.TR)
		body.Labels.EN = strings.TrimSpace(body.Labels.EN)
		if body.Labels.TR == "" && body.Labels.EN == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kategori etiketi zorunlu")
		}
		if body.ID == models.CategoryAll {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kategori düzenlenemez")
		}

		cat := models.Category{
			ID:     strings.TrimSpace(body.ID),
			Labels: body.Labels,
			// İkon ismi render sınırında bir kez kapalı kümeye çözülür
			Icon: string(icons.Resolve(body.Icon)),
		}

		saved, err := api.SaveCategory(c.Context(), cat)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori kaydedilemedi")
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategoryHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == models.CategoryAll {
			return fiber.NewError(fiber.StatusBadRequest, "Bu kategori silinemez")
		}
		if err := api.DeleteCategory(c.Context(), id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kategori silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/menu/reset
// Yerel düzenlemeleri atar, gönderilen baz menüye döner.
func ResetMenuHandler(api *API) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := api.Reset(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü sıfırlanamadı")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
