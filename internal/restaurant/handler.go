package restaurant

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yashp387/Food-Ordering-System/internal/user"
)

// Handler delegates restaurant operations to the restaurant service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurants", h.listRestaurants)
	app.Get("/api/v1/restaurant/:id<[0-9]+>", h.getRestaurant)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/restaurants", h.createRestaurant)
}

type createRestaurantRequest struct {
	Name        string   `json:"name"`
	Cuisine     []string `json:"cuisine"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	Status      string   `json:"status"`
	OwnerID     int      `json:"ownerId"`
}

func (h *Handler) createRestaurant(c *fiber.Ctx) error {
	role, err := user.GetRoleFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if role != user.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied, Admins only"})
	}

	payload := new(createRestaurantRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Address == "" || len(payload.Cuisine) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required fields"})
	}
	if payload.Status != "" && !ValidStatus(payload.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant status"})
	}
	if payload.OwnerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid ownerId"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(Restaurant{
		Name:        payload.Name,
		Cuisine:     payload.Cuisine,
		Description: payload.Description,
		Address:     payload.Address,
		Rating:      payload.Rating,
		Status:      payload.Status,
		OwnerID:     payload.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if err == ErrInvalidRating {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "New restaurant added successfully",
		"restaurant": created,
	})
}

func (h *Handler) listRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"restaurants": restaurants})
}

func (h *Handler) getRestaurant(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant ID"})
	}

	rest, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "restaurant not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"restaurant": rest})
}
