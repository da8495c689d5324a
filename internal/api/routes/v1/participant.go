package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerParticipants(r fiber.Router) {
	// Initialize handler
	participantRepo := repo.NewParticipantRepository(config.DB)
	participantHandler := handlers.NewParticipantHandler(participantRepo)

	// Register routes
	r.Get("/events/:eventId/participants", participantHandler.GetParticipants)
	r.Post("/events/:eventId/participants", participantHandler.CreateParticipant)
	r.Get("/events/:eventId/participants/export", participantHandler.ExportCSV)
	r.Put("/participants/:participantId", participantHandler.UpdateParticipant)
	r.Delete("/participants/:participantId", participantHandler.DeleteParticipant)
	r.Get("/participants/:participantId/qr", participantHandler.CheckinQR)
	r.Post("/checkin/:code", participantHandler.CheckIn)
}
