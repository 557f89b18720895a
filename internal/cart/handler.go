package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

// Handler delegates cart operations to the cart service. Each domain
// operation lives exactly once in the service; the routes here are thin
// adapters.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.viewCart)
	app.Post("/api/v1/cart", h.addItem)
	app.Put("/api/v1/cart/:menuItemId<[0-9]+>", h.updateItem)
	app.Delete("/api/v1/cart/:menuItemId<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.MenuItemID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menuItem ID"})
	}

	snapshot, err := h.service.AddItem(userID, payload.MenuItemID, payload.Quantity)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Item added to cart successfully",
		"cart":    snapshot,
	})
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	menuItemID, err := strconv.Atoi(c.Params("menuItemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menuItem ID"})
	}

	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	snapshot, err := h.service.UpdateItem(userID, menuItemID, payload.Quantity)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Cart item updated successfully",
		"cart":    snapshot,
	})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	menuItemID, err := strconv.Atoi(c.Params("menuItemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menuItem ID"})
	}

	snapshot, err := h.service.RemoveItem(userID, menuItemID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart successfully",
		"cart":    snapshot,
	})
}

func (h *Handler) viewCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	snapshot, err := h.service.ViewCart(userID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"cart": snapshot})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(userID); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cart deleted successfully"})
}

func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Quantity must be greater than zero"})
	case ErrMenuItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Menu item not found"})
	case ErrCartNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Cart not found"})
	case ErrLineNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Item not found in cart"})
	case ErrItemUnavailable, ErrMixedRestaurants:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
