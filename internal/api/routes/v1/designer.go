package v1

import (
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/badge"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/libraries"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// templateBackend bridges the designer socket to template storage. The
// stored document runs through the migration chain on load, so an old
// row opens as a current-format session.
type templateBackend struct {
	repo repo.BadgeTemplateRepoInterface
}

func (b templateBackend) LoadTemplate(templateID uuid.UUID) (*badge.TemplateDocument, error) {
	t, err := b.repo.GetTemplateByID(templateID)
	if err != nil {
		return nil, err
	}
	return badge.LoadDocument(t.Document)
}

func (b templateBackend) SaveTemplate(templateID uuid.UUID, doc *badge.TemplateDocument) error {
	raw, err := badge.SaveDocument(doc)
	if err != nil {
		return err
	}
	return b.repo.SaveDocument(templateID, raw)
}

// RegisterDesigner mounts the live badge designer websocket. It sits
// outside the /api/v1 group so the upgrade middleware on /ws applies.
func RegisterDesigner(app *fiber.App) {
	backend := templateBackend{repo: repo.NewBadgeTemplateRepository(config.DB)}
	app.Get("/ws/designer", libraries.DesignerSocketHandler(backend))
}
