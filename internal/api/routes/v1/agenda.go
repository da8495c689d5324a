package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerAgenda(r fiber.Router) {
	// Initialize handler
	agendaRepo := repo.NewAgendaRepository(config.DB)
	agendaHandler := handlers.NewAgendaHandler(agendaRepo)

	// Register routes
	r.Get("/events/:eventId/agenda", agendaHandler.GetAgenda)
	r.Post("/events/:eventId/agenda", agendaHandler.CreateAgendaItem)
	r.Put("/agenda/:itemId", agendaHandler.UpdateAgendaItem)
	r.Delete("/agenda/:itemId", agendaHandler.DeleteAgendaItem)
}
