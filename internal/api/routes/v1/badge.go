package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerBadges(r fiber.Router) {
	// Initialize handler
	badgeRepo := repo.NewBadgeTemplateRepository(config.DB)
	badgeHandler := handlers.NewBadgeHandler(badgeRepo)

	// Register routes
	r.Get("/badge-presets", badgeHandler.GetPresets)
	r.Get("/events/:eventId/badges", badgeHandler.GetTemplates)
	r.Post("/events/:eventId/badges", badgeHandler.CreateTemplate)
	r.Get("/badges/:templateId", badgeHandler.GetTemplate)
	r.Put("/badges/:templateId", badgeHandler.SaveTemplate)
	r.Delete("/badges/:templateId", badgeHandler.DeleteTemplate)
	r.Get("/badges/:templateId/print-layout", badgeHandler.PrintLayout)
	r.Post("/badges/:templateId/assets", badgeHandler.UploadAsset)
}
