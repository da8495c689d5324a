package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerEmailSettings(r fiber.Router) {
	// Initialize handler
	emailRepo := repo.NewEmailSettingsRepository(config.DB)
	emailHandler := handlers.NewEmailSettingsHandler(emailRepo)

	// Register routes
	r.Get("/events/:eventId/email-settings", emailHandler.GetSettings)
	r.Put("/events/:eventId/email-settings", emailHandler.SaveSettings)
	r.Post("/events/:eventId/email-settings/test", emailHandler.SendTest)
}
