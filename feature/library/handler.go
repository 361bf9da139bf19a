package library

import (
	"errors"

	"media-library/core/logger"
	"media-library/feature/library/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the library.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	lib := app.Group("/library")
	lib.Get("/", h.HandleGetLibrary)
	lib.Post("/sync", h.HandleSync)
	lib.Post("/sync/confirm", h.HandleConfirmSync)
	lib.Put("/:id/rating", h.HandleUpdateRating)
	lib.Post("/:id/keep", h.HandleKeepItem)
	lib.Delete("/:id", h.HandleDeleteItem)
	lib.Post("/:id/comments", h.HandleAddComment)
	lib.Put("/:id/comments/:index", h.HandleUpdateComment)
	lib.Delete("/:id/comments/:index", h.HandleDeleteComment)
	lib.Post("/:id/hype", h.HandleHype)

	retention := app.Group("/retention")
	retention.Get("/", h.HandleGetRetention)
	retention.Post("/:id/restore", h.HandleRestoreItem)

	settings := app.Group("/settings")
	settings.Get("/", h.HandleGetSettings)
	settings.Put("/", h.HandleSaveSettings)

	search := app.Group("/search")
	search.Post("/", h.HandleSearch)
	search.Get("/templates", h.HandleListTemplates)
	search.Post("/templates", h.HandleSaveTemplate)
	search.Delete("/templates/:id", h.HandleDeleteTemplate)
}

// fail translates service errors into the error envelope.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotAuthenticated):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleGetLibrary returns the whole library document.
// @Summary Load Library
// @Description Returns every library item plus the last sync time.
// @Tags library
// @Produce json
// @Success 200 {object} models.Library "Library"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /library [get]
func (h *Handler) HandleGetLibrary(c *fiber.Ctx) error {
	lib, err := h.service.Library(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lib)
}

// HandleSync reconciles the remote snapshot into the library.
// @Summary Sync Library
// @Description Fetches the complete remote snapshot and merges it into the library, preserving user annotations. Orphans are handled per the retention policy.
// @Tags library
// @Produce json
// @Success 200 {object} models.SyncReport "Sync Report"
// @Failure 401 {object} map[string]string "Not Authenticated"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /library/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Sync(c.Context())
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return fail(c, err)
	}
	return c.JSON(report)
}

type confirmSyncRequest struct {
	Action string `json:"action"`
}

// HandleConfirmSync resolves pending orphans in bulk.
// @Summary Confirm Sync
// @Description Applies a bulk disposition (keep_all, delete_all or individual) to the orphans left pending by the last sync.
// @Tags library
// @Accept json
// @Produce json
// @Param request body confirmSyncRequest true "Disposition action"
// @Success 200 {object} models.Library "Updated Library"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /library/sync/confirm [post]
func (h *Handler) HandleConfirmSync(c *fiber.Ctx) error {
	var req confirmSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lib, err := h.service.ConfirmSync(c.Context(), req.Action)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(lib)
}

type ratingRequest struct {
	Rating int `json:"rating"`
}

// HandleUpdateRating sets the rating on one item.
// @Summary Update Rating
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body ratingRequest true "Rating 1-5"
// @Success 200 {object} map[string]bool "OK"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /library/{id}/rating [put]
func (h *Handler) HandleUpdateRating(c *fiber.Ctx) error {
	var req ratingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.UpdateRating(c.Context(), c.Params("id"), req.Rating); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleKeepItem resolves one orphan by keeping it.
// @Summary Keep Item
// @Tags library
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]bool "OK"
// @Router /library/{id}/keep [post]
func (h *Handler) HandleKeepItem(c *fiber.Ctx) error {
	if err := h.service.KeepItem(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteItem removes one item and ledgers it.
// @Summary Delete Item
// @Description Removes the item from the library and adds it to the retention ledger so later syncs do not reintroduce it.
// @Tags library
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]bool "OK"
// @Router /library/{id} [delete]
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type commentRequest struct {
	Text string `json:"text"`
}

// HandleAddComment appends a comment to one item.
// @Summary Add Comment
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body commentRequest true "Comment text"
// @Success 200 {object} map[string]bool "OK"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /library/{id}/comments [post]
func (h *Handler) HandleAddComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.AddComment(c.Context(), c.Params("id"), req.Text); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleUpdateComment replaces one comment by index.
// @Summary Update Comment
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param index path int true "Comment index"
// @Param request body commentRequest true "Comment text"
// @Success 200 {object} map[string]bool "OK"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /library/{id}/comments/{index} [put]
func (h *Handler) HandleUpdateComment(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid comment index"})
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.UpdateComment(c.Context(), c.Params("id"), index, req.Text); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleDeleteComment removes one comment by index.
// @Summary Delete Comment
// @Tags library
// @Produce json
// @Param id path string true "Video ID"
// @Param index path int true "Comment index"
// @Success 200 {object} map[string]bool "OK"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /library/{id}/comments/{index} [delete]
func (h *Handler) HandleDeleteComment(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid comment index"})
	}
	if err := h.service.DeleteComment(c.Context(), c.Params("id"), index); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type hypeRequest struct {
	Direction string `json:"direction"`
}

// HandleHype increments a hype counter.
// @Summary Update Hype
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body hypeRequest true "Direction: up or down"
// @Success 200 {object} map[string]bool "OK"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /library/{id}/hype [post]
func (h *Handler) HandleHype(c *fiber.Ctx) error {
	var req hypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.Hype(c.Context(), c.Params("id"), req.Direction); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetRetention returns the retention ledger.
// @Summary Load Retention Ledger
// @Tags retention
// @Produce json
// @Success 200 {array} models.RetentionEntry "Ledger"
// @Router /retention [get]
func (h *Handler) HandleGetRetention(c *fiber.Ctx) error {
	entries, err := h.service.Retention(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}

// HandleRestoreItem drops a ledger entry so the next sync can bring the
// video back.
// @Summary Restore Item
// @Tags retention
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]bool "OK"
// @Router /retention/{id}/restore [post]
func (h *Handler) HandleRestoreItem(c *fiber.Ctx) error {
	if err := h.service.RestoreItem(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetSettings returns the persisted settings.
// @Summary Load Settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings "Settings"
// @Router /settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Settings(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(settings)
}

// HandleSaveSettings replaces the settings document.
// @Summary Save Settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.Settings true "Settings"
// @Success 200 {object} map[string]bool "OK"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /settings [put]
func (h *Handler) HandleSaveSettings(c *fiber.Ctx) error {
	var settings models.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.SaveSettings(c.Context(), settings); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type searchRequest struct {
	Include []models.SearchCondition `json:"include"`
	Exclude []models.SearchCondition `json:"exclude"`
}

// HandleSearch evaluates a condition pair over the library.
// @Summary Search Library
// @Description Evaluates include (AND) and exclude (OR) conditions over the library and returns the matches in store order.
// @Tags search
// @Accept json
// @Produce json
// @Param request body searchRequest true "Conditions"
// @Success 200 {array} models.LibraryItem "Matches"
// @Router /search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	items, err := h.service.Search(c.Context(), req.Include, req.Exclude)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// HandleListTemplates returns the saved search templates.
// @Summary List Search Templates
// @Tags search
// @Produce json
// @Success 200 {array} models.SearchTemplate "Templates"
// @Router /search/templates [get]
func (h *Handler) HandleListTemplates(c *fiber.Ctx) error {
	templates, err := h.service.Templates(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(templates)
}

type saveTemplateRequest struct {
	Name    string                   `json:"name"`
	Include []models.SearchCondition `json:"include"`
	Exclude []models.SearchCondition `json:"exclude"`
}

// HandleSaveTemplate stores a named condition bundle.
// @Summary Save Search Template
// @Tags search
// @Accept json
// @Produce json
// @Param request body saveTemplateRequest true "Template"
// @Success 200 {object} models.SearchTemplate "Saved Template"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /search/templates [post]
func (h *Handler) HandleSaveTemplate(c *fiber.Ctx) error {
	var req saveTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	tpl, err := h.service.SaveTemplate(c.Context(), req.Name, req.Include, req.Exclude)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(tpl)
}

// HandleDeleteTemplate removes a template by id.
// @Summary Delete Search Template
// @Tags search
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} map[string]bool "OK"
// @Router /search/templates/{id} [delete]
func (h *Handler) HandleDeleteTemplate(c *fiber.Ctx) error {
	if err := h.service.DeleteTemplate(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
