package handlers

import (
	"fmt"
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/badge"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/libraries"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BadgeHandler struct {
	repo repo.BadgeTemplateRepoInterface
}

func NewBadgeHandler(repo repo.BadgeTemplateRepoInterface) *BadgeHandler {
	return &BadgeHandler{repo: repo}
}

func (h *BadgeHandler) CreateTemplate(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var dto struct {
		Name   string `json:"name"`
		Preset string `json:"preset"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Name == "" {
		dto.Name = "Untitled badge"
	}
	preset := dto.Preset
	if _, ok := badge.PresetByKey(preset); !ok {
		preset = badge.DefaultPreset().Key
	}

	doc, err := badge.SaveDocument(&badge.TemplateDocument{
		Canvas: badge.CanvasSettings{Preset: preset},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create template",
		})
	}

	id, err := h.repo.CreateTemplate(&models.BadgeTemplate{
		EventID:  eventId,
		Name:     dto.Name,
		Document: doc,
	})
	if err != nil {
		log.Println(err, "Error creating badge template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create template",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"uuid":    id.String(),
		"message": "Badge template created successfully",
	})
}

func (h *BadgeHandler) GetTemplates(c *fiber.Ctx) error {
	eventId, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	templates, err := h.repo.GetTemplatesByEventId(eventId)
	if err != nil {
		log.Println(err, "Error getting badge templates")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get templates",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"templates": templates,
	})
}

// GetTemplate loads one template and runs the stored document through the
// migration and normalization chain, so the client always sees the
// current wire format regardless of how old the row is.
func (h *BadgeHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	t, err := h.repo.GetTemplateByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Template not found",
		})
	}

	doc, err := badge.LoadDocument(t.Document)
	if err != nil {
		log.Println(err, "Error migrating badge document")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stored template document is unreadable",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"template": fiber.Map{
			"uuid":       t.UUID,
			"event_id":   t.EventID,
			"name":       t.Name,
			"document":   doc,
			"created_at": t.CreatedAt,
			"updated_at": t.UpdatedAt,
		},
	})
}

// SaveTemplate replaces the whole designer document. No diff format.
func (h *BadgeHandler) SaveTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	var doc badge.TemplateDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template document",
		})
	}

	doc.Components = badge.NormalizeAll(doc.Components, doc.Canvas.Config())
	raw, err := badge.SaveDocument(&doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save template",
		})
	}

	if err := h.repo.SaveDocument(id, raw); err != nil {
		log.Println(err, "Error saving badge document")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save template",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Template saved successfully",
	})
}

// PrintLayout emits the millimeter projection of every visible component
// keyed by id, for the external print-document generator. The percentage
// math is shared with the on-screen path, so print placement matches the
// editor preview exactly.
func (h *BadgeHandler) PrintLayout(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	t, err := h.repo.GetTemplateByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Template not found",
		})
	}

	doc, err := badge.LoadDocument(t.Document)
	if err != nil {
		log.Println(err, "Error migrating badge document")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stored template document is unreadable",
		})
	}

	cfg := doc.Canvas.Config()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"canvas": fiber.Map{
			"width_mm":  cfg.WidthMM,
			"height_mm": cfg.HeightMM,
		},
		"boxes":      badge.PrintLayout(doc.Components, cfg),
		"components": doc.Components,
	})
}

func (h *BadgeHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	if err := h.repo.DeleteTemplate(id); err != nil {
		log.Println(err, "Error deleting badge template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete template",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Template deleted successfully",
	})
}

// GetPresets lists the badge size presets the designer offers.
func (h *BadgeHandler) GetPresets(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"presets": badge.SizePresets,
	})
}

// UploadAsset stores a logo or background image for a template in object
// storage and returns its public URL.
func (h *BadgeHandler) UploadAsset(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid template ID",
		})
	}

	clients := libraries.GetClients()
	if clients == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Asset storage is not configured",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image provided",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unreadable image",
		})
	}
	defer src.Close()

	key := fmt.Sprintf("badges/%s/%s-%s", id.String(), uuid.NewString(), file.Filename)
	url, err := clients.UploadObject(c.Context(), key, file.Header.Get("Content-Type"), src)
	if err != nil {
		log.Println(err, "Error uploading badge asset")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload asset",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
