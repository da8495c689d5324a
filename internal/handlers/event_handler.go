package handlers

import (
	"log"
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// for simple crud operations service layer is not required
type EventHandler struct {
	repo repo.EventRepoInterface
}

func NewEventHandler(repo repo.EventRepoInterface) *EventHandler {
	return &EventHandler{repo: repo}
}

type eventDTO struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartsAt         time.Time `json:"starts_at"`
	EndsAt           time.Time `json:"ends_at"`
	RegistrationOpen bool      `json:"registration_open"`
	AccentColor      string    `json:"accent_color"`
	LogoURL          string    `json:"logo_url"`
}

// function to create an event
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var dto eventDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Event name is required",
		})
	}

	id, err := h.repo.CreateEvent(&models.Event{
		Name:             dto.Name,
		Description:      dto.Description,
		Location:         dto.Location,
		StartsAt:         dto.StartsAt,
		EndsAt:           dto.EndsAt,
		RegistrationOpen: dto.RegistrationOpen,
		AccentColor:      dto.AccentColor,
		LogoURL:          dto.LogoURL,
	})
	if err != nil {
		log.Println(err, "Error creating event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Event created successfully",
	})
}

// function to get all events
func (h *EventHandler) GetAllEvents(c *fiber.Ctx) error {
	events, err := h.repo.GetAllEvents()
	if err != nil {
		log.Println(err, "Error getting events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get events",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"events": events,
	})
}

func (h *EventHandler) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := h.repo.GetEventByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"event": event,
	})
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto eventDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event := &models.Event{
		UUID:             id,
		Name:             dto.Name,
		Description:      dto.Description,
		Location:         dto.Location,
		StartsAt:         dto.StartsAt,
		EndsAt:           dto.EndsAt,
		RegistrationOpen: dto.RegistrationOpen,
		AccentColor:      dto.AccentColor,
		LogoURL:          dto.LogoURL,
	}
	if err := h.repo.UpdateEvent(event); err != nil {
		log.Println(err, "Error updating event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event updated successfully",
	})
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	if err := h.repo.DeleteEvent(id); err != nil {
		log.Println(err, "Error deleting event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event deleted successfully",
	})
}
