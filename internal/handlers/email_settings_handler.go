package handlers

import (
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/mailer"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EmailSettingsHandler struct {
	repo repo.EmailSettingsRepoInterface
}

func NewEmailSettingsHandler(repo repo.EmailSettingsRepoInterface) *EmailSettingsHandler {
	return &EmailSettingsHandler{repo: repo}
}

type emailSettingsDTO struct {
	Provider    string `json:"provider"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Secret      string `json:"secret"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
}

// GetSettings returns the stored configuration. The secret is never
// echoed; the model excludes it from JSON.
func (h *EmailSettingsHandler) GetSettings(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	settings, err := h.repo.GetByEventId(eventId)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Email settings not configured",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"settings": settings,
	})
}

// SaveSettings upserts the per-event provider configuration. An empty
// secret keeps the previously stored one.
func (h *EmailSettingsHandler) SaveSettings(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto emailSettingsDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	settings := &models.EmailSettings{
		EventID:     eventId,
		Provider:    models.EmailProvider(dto.Provider),
		Host:        dto.Host,
		Port:        dto.Port,
		Username:    dto.Username,
		Secret:      dto.Secret,
		FromAddress: dto.FromAddress,
		FromName:    dto.FromName,
	}
	if err := h.repo.Upsert(settings); err != nil {
		log.Println(err, "Error saving email settings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save email settings",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Email settings saved successfully",
	})
}

// SendTest delivers a test mail to the given address with the stored
// configuration, so organizers can verify it before going live.
func (h *EmailSettingsHandler) SendTest(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto struct {
		To string `json:"to"`
	}
	if err := c.BodyParser(&dto); err != nil || dto.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Recipient address is required",
		})
	}

	settings, err := h.repo.GetByEventId(eventId)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Email settings not configured",
		})
	}

	sender, err := mailer.New(settings)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := sender.Send(mailer.Message{
		To:      dto.To,
		Subject: "Test email",
		Body:    "Your outbound email configuration works.",
	}); err != nil {
		log.Println(err, "Error sending test email")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to send test email",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Test email sent",
	})
}
