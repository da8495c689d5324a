package v1

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router) {
	registerHealth(r)
	registerEvents(r)
	registerParticipants(r)
	registerAgenda(r)
	registerEmailSettings(r)
	registerBadges(r)

	registerPublic(r)
}
