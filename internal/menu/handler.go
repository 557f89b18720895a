package menu

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

// Handler delegates menu item operations to the menu service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurant/:id<[0-9]+>/menu", h.listMenu)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/restaurant/:id<[0-9]+>/menu", h.createMenuItem)
	app.Put("/api/v1/menu/:menuItemId<[0-9]+>", h.updateMenuItem)
	app.Delete("/api/v1/menu/:menuItemId<[0-9]+>", h.deleteMenuItem)
}

type menuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
}

func (h *Handler) listMenu(c *fiber.Ctx) error {
	restaurantID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant ID"})
	}

	items, err := h.service.ListByRestaurant(restaurantID)
	if err != nil {
		if err == ErrRestaurantNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"menu": items})
}

func (h *Handler) createMenuItem(c *fiber.Ctx) error {
	restaurantID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant ID"})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(menuItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required fields"})
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(ownerID, restaurantID, MenuItem{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Menu item added successfully",
		"menuItem": created,
	})
}

func (h *Handler) updateMenuItem(c *fiber.Ctx) error {
	menuItemID, err := strconv.Atoi(c.Params("menuItemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menu item ID"})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(menuItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}

	updated, err := h.service.Update(ownerID, menuItemID, MenuItem{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Category:    payload.Category,
		Available:   available,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Menu item updated successfully",
		"menuItem": updated,
	})
}

func (h *Handler) deleteMenuItem(c *fiber.Ctx) error {
	menuItemID, err := strconv.Atoi(c.Params("menuItemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menu item ID"})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(ownerID, menuItemID); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Menu item deleted successfully"})
}

func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
	case ErrRestaurantNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
	case ErrNotOwner:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	case ErrInvalidPrice, ErrInvalidCategory:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
