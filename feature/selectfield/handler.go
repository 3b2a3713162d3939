package selectfield

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

// Handler handles HTTP requests for selects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the select routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/selects")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/value", h.HandleSelect)
	group.Post("/:id/query", h.HandleQuery)
	group.Put("/:id/mode", h.HandleMode)
	group.Delete("/:id", h.HandleClose)
}

// SelectRequest carries the key the client picked. An empty key picks the empty option.
type SelectRequest struct {
	Key string `json:"key"`
}

// ModeRequest names a selection preservation mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// HandleCreate opens a select over the catalog.
// @Summary Create Select
// @Description Open a session holding a single-select field bound to the catalog.
// @Tags selects
// @Accept json
// @Produce json
// @Param body body selectfield.CreateRequest false "Options"
// @Success 201 {object} selectfield.State "Select state"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /selects [post]
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

// HandleGet returns the select and the events buffered since the last round trip.
// @Summary Get Select
// @Tags selects
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} selectfield.State "Select state"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /selects/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	state, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleSelect applies a client pick.
// @Summary Pick Option
// @Description Pick the option with the given key. Keys from an earlier rebuild are rejected.
// @Tags selects
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body selectfield.SelectRequest true "Picked key"
// @Success 200 {object} selectfield.State "Select state"
// @Failure 403 {object} map[string]string "Read-only"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Stale key or disabled option"
// @Router /selects/{id}/value [put]
func (h *Handler) HandleSelect(c *fiber.Ctx) error {
	var req SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	state, err := h.service.SelectKey(c.Params("id"), req.Key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// HandleQuery changes filter, sort or window.
// @Summary Query Select
// @Tags selects
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body catalog.QueryRequest true "Query"
// @Success 200 {object} selectfield.State "Select state"
// @Failure 400 {object} map[string]string "Unsupported sort"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /selects/{id}/query [post]
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
// @Tags selects
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body selectfield.ModeRequest true "Mode"
// @Success 200 {object} selectfield.State "Select state"
// @Failure 400 {object} map[string]string "Unknown mode"
// @Router /selects/{id}/mode [put]
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
// @Summary Close Select
// @Tags selects
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /selects/{id} [delete]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	if err := h.service.Close(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, ErrNoComponent):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrReadOnly):
		status = fiber.StatusForbidden
	case errors.Is(err, ErrUnknownKey), errors.Is(err, ErrDisabled):
		status = fiber.StatusConflict
	case errors.Is(err, selection.ErrUnknownMode), errors.Is(err, data.ErrUnsupportedSort):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Select request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
