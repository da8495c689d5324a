package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerEvents(r fiber.Router) {
	// Initialize handler
	eventRepo := repo.NewEventRepository(config.DB)
	eventHandler := handlers.NewEventHandler(eventRepo)

	// Register routes
	r.Get("/events", eventHandler.GetAllEvents)
	r.Post("/events", eventHandler.CreateEvent)
	r.Get("/events/:eventId", eventHandler.GetEventByID)
	r.Put("/events/:eventId", eventHandler.UpdateEvent)
	r.Delete("/events/:eventId", eventHandler.DeleteEvent)
}
