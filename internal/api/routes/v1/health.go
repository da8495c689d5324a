package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerHealth(r fiber.Router) {
	r.Get("/health", handlers.Health)
}
