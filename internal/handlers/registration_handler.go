package handlers

import (
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/mailer"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegistrationHandler serves the unauthenticated public self-registration
// form.
type RegistrationHandler struct {
	events       repo.EventRepoInterface
	participants repo.ParticipantRepoInterface
	email        repo.EmailSettingsRepoInterface
}

func NewRegistrationHandler(events repo.EventRepoInterface, participants repo.ParticipantRepoInterface, email repo.EmailSettingsRepoInterface) *RegistrationHandler {
	return &RegistrationHandler{events: events, participants: participants, email: email}
}

// GetPublicEvent returns the branding and agenda-free details the public
// form needs to render.
func (h *RegistrationHandler) GetPublicEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := h.events.GetEventByID(id)
	if err != nil || !event.RegistrationOpen {
		// Closed events look the same as unknown ones from outside.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"event": fiber.Map{
			"uuid":         event.UUID,
			"name":         event.Name,
			"description":  event.Description,
			"location":     event.Location,
			"starts_at":    event.StartsAt,
			"ends_at":      event.EndsAt,
			"accent_color": event.AccentColor,
			"logo_url":     event.LogoURL,
		},
	})
}

// Register creates a participant from the public form and sends the
// confirmation mail best-effort: a broken mail provider must not lose the
// registration.
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := h.events.GetEventByID(id)
	if err != nil || !event.RegistrationOpen {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
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

	participant := &models.Participant{
		EventID:  event.UUID,
		FullName: dto.FullName,
		Email:    dto.Email,
		Company:  dto.Company,
		Title:    dto.Title,
	}
	if _, err := h.participants.CreateParticipant(participant); err != nil {
		log.Println(err, "Error registering participant")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}

	h.sendConfirmation(event, participant)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"checkin_code": participant.CheckinCode,
		"message":      "Registration confirmed",
	})
}

func (h *RegistrationHandler) sendConfirmation(event *models.Event, p *models.Participant) {
	settings, err := h.email.GetByEventId(event.UUID)
	if err != nil {
		return // no provider configured; registration still succeeds
	}
	sender, err := mailer.New(settings)
	if err != nil {
		log.Println(err, "Error building mail sender")
		return
	}
	go func() {
		if err := sender.Send(mailer.RegistrationConfirmation(event, p)); err != nil {
			log.Println(err, "Error sending confirmation email")
		}
	}()
}
