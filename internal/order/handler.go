package order

import (
	"context"
	"errors"
	"time"

	"mezecim-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	Table string             `json:"table"`
	Note  string             `json:"note"`
	Items []models.OrderLine `json:"items"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// GET /api/orders?status=new
func ListOrdersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orders := svc.List()

		statusFilter := c.Query("status")
		if statusFilter == "" || statusFilter == "all" {
			return c.JSON(orders)
		}

		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if string(o.Status) == statusFilter {
				filtered = append(filtered, o)
			}
		}
		return c.JSON(filtered)
	}
}

// POST /api/orders
func CreateOrderHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := svc.Create(body.Table, body.Note, body.Items)
		if err != nil {
			if errors.Is(err, ErrEmptyOrder) {
				return fiber.NewError(fiber.StatusBadRequest, "Sipariş en az bir satır içermeli")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(o)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		o, err := svc.UpdateStatus(c.Params("id"), body.Status)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			case errors.Is(err, ErrInvalidStatus):
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş durumu")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}
		return c.JSON(o)
	}
}

// GET /api/orders/watch?timeout=25
// Sipariş koleksiyonu değişene kadar bekleyen long-poll ucu. Mutfak
// panosu bununla tazelenir; değişiklik gelmezse timeout sonunda
// changed=false döner ve istemci yeniden bağlanır.
func WatchOrdersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		timeout := c.QueryInt("timeout", 25)
		if timeout < 1 || timeout > 60 {
			timeout = 25
		}

		ctx, cancel := context.WithTimeout(c.Context(), time.Duration(timeout)*time.Second)
		defer cancel()

		changed := svc.Watch(ctx)
		return c.JSON(fiber.Map{"changed": changed})
	}
}
