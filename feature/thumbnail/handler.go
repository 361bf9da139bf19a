package thumbnail

import (
	"errors"
	"io"

	"media-library/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for mirrored thumbnails.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the thumbnail routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	grp := app.Group("/thumbnail")
	grp.Get("/:id", h.HandleGetThumbnail)
	grp.Post("/mirror", h.HandleMirror)
}

// HandleGetThumbnail streams the mirrored thumbnail of an item.
// @Summary Get Thumbnail
// @Description Streams the mirrored thumbnail of a library item from object storage.
// @Tags thumbnail
// @Produce jpeg
// @Param id path string true "Video ID"
// @Success 200 {file} binary "Thumbnail"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /thumbnail/{id} [get]
func (h *Handler) HandleGetThumbnail(c *fiber.Ctx) error {
	obj, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(data)
}

// HandleMirror mirrors the thumbnails of every library item.
// @Summary Mirror Thumbnails
// @Description Downloads and stores the thumbnail of every library item that is not mirrored yet.
// @Tags thumbnail
// @Produce json
// @Success 200 {object} MirrorReport "Mirror Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /thumbnail/mirror [post]
func (h *Handler) HandleMirror(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.MirrorAll(c.Context())
	if err != nil {
		l.Error("Mirror run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
