package handlers

import (
	"fmt"
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/export"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type ParticipantHandler struct {
	repo repo.ParticipantRepoInterface
}

func NewParticipantHandler(repo repo.ParticipantRepoInterface) *ParticipantHandler {
	return &ParticipantHandler{repo: repo}
}

type participantDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Title    string `json:"title"`
}

func (h *ParticipantHandler) CreateParticipant(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto participantDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.FullName == "" || dto.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and email are required",
		})
	}

	id, err := h.repo.CreateParticipant(&models.Participant{
		EventID:  eventId,
		FullName: dto.FullName,
		Email:    dto.Email,
		Company:  dto.Company,
		Title:    dto.Title,
	})
	if err != nil {
		log.Println(err, "Error creating participant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create participant",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Participant created successfully",
	})
}

func (h *ParticipantHandler) GetParticipants(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 50)

	participants, total, err := h.repo.GetParticipantsByEventId(eventId, page, pageSize)
	if err != nil {
		log.Println(err, "Error getting participants")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get participants",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"participants": participants,
		"total":        total,
	})
}

func (h *ParticipantHandler) UpdateParticipant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid participant ID",
		})
	}

	existing, err := h.repo.GetParticipantByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Participant not found",
		})
	}

	var dto participantDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	existing.FullName = dto.FullName
	existing.Email = dto.Email
	existing.Company = dto.Company
	existing.Title = dto.Title
	if err := h.repo.UpdateParticipant(existing); err != nil {
		log.Println(err, "Error updating participant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update participant",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Participant updated successfully",
	})
}

func (h *ParticipantHandler) DeleteParticipant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid participant ID",
		})
	}

	if err := h.repo.DeleteParticipant(id); err != nil {
		log.Println(err, "Error deleting participant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete participant",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Participant deleted successfully",
	})
}

// CheckIn marks a participant as arrived by their check-in code, typically
// scanned from the badge QR.
func (h *ParticipantHandler) CheckIn(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Check-in code is required",
		})
	}

	p, err := h.repo.CheckIn(code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown check-in code",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"participant": p,
		"message":     "Checked in",
	})
}

// CheckinQR returns the participant's check-in code as a QR PNG.
func (h *ParticipantHandler) CheckinQR(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("participantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid participant ID",
		})
	}

	p, err := h.repo.GetParticipantByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Participant not found",
		})
	}

	pngBytes, err := qrcode.Encode(p.CheckinCode, qrcode.Medium, 256)
	if err != nil {
		log.Println(err, "Error encoding check-in QR")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate QR code",
		})
	}

	c.Set("Content-Type", "image/png")
	return c.Status(fiber.StatusOK).Send(pngBytes)
}

// ExportCSV streams the full roster as a CSV download.
func (h *ParticipantHandler) ExportCSV(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	participants, err := h.repo.GetAllParticipantsByEventId(eventId)
	if err != nil {
		log.Println(err, "Error getting participants for export")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export participants",
		})
	}

	data, err := export.ParticipantsCSV(participants)
	if err != nil {
		log.Println(err, "Error building CSV")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export participants",
		})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=participants-%s.csv", eventId.String()))
	return c.Status(fiber.StatusOK).Send(data)
}
