package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/middleware"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// registerPublic mounts the unauthenticated self-registration form. These
// are the only rate-limited routes.
func registerPublic(r fiber.Router) {
	eventRepo := repo.NewEventRepository(config.DB)
	participantRepo := repo.NewParticipantRepository(config.DB)
	emailRepo := repo.NewEmailSettingsRepository(config.DB)
	registrationHandler := handlers.NewRegistrationHandler(eventRepo, participantRepo, emailRepo)

	public := r.Group("/public", middleware.RateLimitMiddleware())
	public.Get("/events/:eventId", registrationHandler.GetPublicEvent)
	public.Post("/events/:eventId/register", registrationHandler.Register)
}
