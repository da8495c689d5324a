package handlers

import (
	"log"
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AgendaHandler struct {
	repo repo.AgendaRepoInterface
}

func NewAgendaHandler(repo repo.AgendaRepoInterface) *AgendaHandler {
	return &AgendaHandler{repo: repo}
}

type agendaItemDTO struct {
	Title     string    `json:"title"`
	Speaker   string    `json:"speaker"`
	Room      string    `json:"room"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	SortOrder int       `json:"sort_order"`
}

func (h *AgendaHandler) CreateAgendaItem(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto agendaItemDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	id, err := h.repo.CreateAgendaItem(&models.AgendaItem{
		EventID:   eventId,
		Title:     dto.Title,
		Speaker:   dto.Speaker,
		Room:      dto.Room,
		StartsAt:  dto.StartsAt,
		EndsAt:    dto.EndsAt,
		SortOrder: dto.SortOrder,
	})
	if err != nil {
		log.Println(err, "Error creating agenda item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create agenda item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Agenda item created successfully",
	})
}

func (h *AgendaHandler) GetAgenda(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	items, err := h.repo.GetAgendaByEventId(eventId)
	if err != nil {
		log.Println(err, "Error getting agenda")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get agenda",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"agenda": items,
	})
}

func (h *AgendaHandler) UpdateAgendaItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid agenda item ID",
		})
	}

	var dto agendaItemDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item := &models.AgendaItem{
		UUID:      id,
		Title:     dto.Title,
		Speaker:   dto.Speaker,
		Room:      dto.Room,
		StartsAt:  dto.StartsAt,
		EndsAt:    dto.EndsAt,
		SortOrder: dto.SortOrder,
	}
	if err := h.repo.UpdateAgendaItem(item); err != nil {
		log.Println(err, "Error updating agenda item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update agenda item",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Agenda item updated successfully",
	})
}

func (h *AgendaHandler) DeleteAgendaItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid agenda item ID",
		})
	}

	if err := h.repo.DeleteAgendaItem(id); err != nil {
		log.Println(err, "Error deleting agenda item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete agenda item",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Agenda item deleted successfully",
	})
}
