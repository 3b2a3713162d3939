package checkboxgroup

import (
	"errors"

	"asset-picker/core/data"
	"asset-picker/core/logger"
	"asset-picker/core/selection"
	"asset-picker/core/session"
	"asset-picker/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for checkbox groups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the checkbox group routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/checkbox-groups")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/value", h.HandleUpdateValue)
	group.Post("/:id/query", h.HandleQuery)
	group.Put("/:id/mode", h.HandleMode)
	group.Delete("/:id", h.HandleClose)
}

// ValueRequest carries the keys the client shows as checked.
type ValueRequest struct {
	Keys []string `json:"keys"`
}

// ModeRequest names a selection preservation mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// HandleCreate opens a checkbox group over the catalog.
// @Summary Create Checkbox Group
// @Description Open a session holding a multi-select checkbox group bound to the catalog.
// @Tags checkbox-groups
// @Accept json
// @Produce json
// @Param body body checkboxgroup.CreateRequest false "Options"
// @Success 201 {object} checkboxgroup.State "Group state"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /checkbox-groups [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	state, err := h.service.Create(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(state)
}

// HandleGet returns the group and the events buffered since the last round trip.
// @Summary Get Checkbox Group
// @Tags checkbox-groups
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} checkboxgroup.State "Group state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /checkbox-groups/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	state, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleUpdateValue applies a client side value change.
// @Summary Update Checkbox Group Value
// @Description Send the full set of checked keys. Stale keys are ignored and reported back.
// @Tags checkbox-groups
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body checkboxgroup.ValueRequest true "Checked keys"
// @Success 200 {object} checkboxgroup.State "Group state"
// @Failure 403 {object} map[string]string "Read-only"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /checkbox-groups/{id}/value [put]
func (h *Handler) HandleUpdateValue(c *fiber.Ctx) error {
	var req ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	state, err := h.service.UpdateValue(c.Params("id"), req.Keys)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleQuery changes filter, sort or window.
// @Summary Query Checkbox Group
// @Tags checkbox-groups
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body catalog.QueryRequest true "Query"
// @Success 200 {object} checkboxgroup.State "Group state"
// @Failure 400 {object} map[string]string "Unsupported sort"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /checkbox-groups/{id}/query [post]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	var req catalog.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	state, err := h.service.SetQuery(c.Context(), c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleMode changes the selection preservation mode.
// @Summary Set Selection Preservation Mode
// @Tags checkbox-groups
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body checkboxgroup.ModeRequest true "Mode"
// @Success 200 {object} checkboxgroup.State "Group state"
// @Failure 400 {object} map[string]string "Unknown mode"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /checkbox-groups/{id}/mode [put]
func (h *Handler) HandleMode(c *fiber.Ctx) error {
	var req ModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	state, err := h.service.SetMode(c.Params("id"), req.Mode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleClose ends the session.
// @Summary Close Checkbox Group
// @Tags checkbox-groups
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /checkbox-groups/{id} [delete]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	if err := h.service.Close(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, ErrNoComponent):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrReadOnly):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, selection.ErrUnknownMode), errors.Is(err, data.ErrUnsupportedSort):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Checkbox group request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
