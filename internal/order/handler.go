package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.placeOrder)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/orders/admin/all", h.listAllOrders)
	app.Get("/api/v1/order/:id<[0-9]+>", h.getOrder)
	app.Put("/api/v1/order/admin/:id<[0-9]+>", h.updateOrderStatus)
}

type updateStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.PlaceOrder(userID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   ord,
	})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order ID"})
	}

	ord, err := h.service.GetByID(userID, role, orderID)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"order": ord})
}

func (h *Handler) listAllOrders(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListAll(role)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) updateOrderStatus(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order ID"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateStatus(role, orderID, payload.Status, payload.PaymentStatus)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Order updated successfully",
		"order":   ord,
	})
}

func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
	case ErrEmptyCart, ErrMixedRestaurants:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case ErrInvalidStatus:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order status"})
	case ErrInvalidPaymentStatus:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment status"})
	case ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
