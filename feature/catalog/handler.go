package catalog

import (
	"errors"

	"asset-picker/core/data"
	"asset-picker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleList)
	group.Post("/reload", h.HandleReload)
	group.Patch("/:ref", h.HandleRename)
	group.Delete("/:ref", h.HandleDelete)
}

// RenameRequest is the body of a rename.
type RenameRequest struct {
	Name string `json:"name"`
}

// HandleList returns a window of catalog assets.
// @Summary List Assets
// @Description List catalog assets with optional filter, sort and window.
// @Tags catalog
// @Produce json
// @Param filter query string false "Filter"
// @Param sort query string false "Sort property"
// @Param desc query bool false "Descending"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} catalog.Asset "Assets"
// @Failure 400 {object} map[string]string "Unsupported sort"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	assets, err := h.service.List(c.Context(), QueryFromRequest(c))
	if err != nil {
		if errors.Is(err, data.ErrUnsupportedSort) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Catalog listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(assets)
}

// HandleRename renames an asset.
// @Summary Rename Asset
// @Description Rename an asset. Open components update that entry in place.
// @Tags catalog
// @Accept json
// @Produce json
// @Param ref path string true "Asset reference"
// @Param body body catalog.RenameRequest true "New name"
// @Success 200 {object} catalog.Asset "Renamed asset"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 501 {object} map[string]string "Not supported by source"
// @Router /catalog/{ref} [patch]
func (h *Handler) HandleRename(c *fiber.Ctx) error {
	var req RenameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	a, err := h.service.Rename(c.Context(), c.Params("ref"), req.Name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(a)
}

// HandleDelete removes an asset.
// @Summary Delete Asset
// @Description Delete an asset. Open components rebuild and apply their selection mode.
// @Tags catalog
// @Param ref path string true "Asset reference"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/{ref} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("ref")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleReload invalidates every open component.
// @Summary Reload Catalog
// @Description Make every open component refetch the catalog.
// @Tags catalog
// @Success 204
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	h.service.Reload(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnsupported):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Catalog update failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
