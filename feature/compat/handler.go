package compat

import (
	"bytes"
	"errors"
	"path"
	"strings"

	"q3-demo-checker/core/archive"
	"q3-demo-checker/core/deps"
	"q3-demo-checker/core/logger"
	"q3-demo-checker/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for map checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the check routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/check")
	group.Get("/", h.HandleCheck)
	group.Post("/", h.HandleUpload)
	group.Get("/references", h.HandleReferences)
	group.Get("/maps", h.HandleListMaps)
}

// HandleCheck checks a map archive by location.
// @Summary Check Map
// @Description Downloads a map archive and reports whether it runs on the demo client.
// @Tags check
// @Produce json
// @Produce plain
// @Param map query string true "Map location (http(s):// URL or s3://bucket/key)"
// @Param format query string false "Report format (json, yaml, text)"
// @Success 200 {object} Report "Check report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Not a map archive"
// @Failure 502 {object} map[string]string "Map source unavailable"
// @Failure 503 {object} map[string]string "Reference archives unavailable"
// @Router /check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Query("format"), FormatJSON)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	location := strings.Clone(c.Query("map"))
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter 'map' is required"})
	}

	l.Info("Checking map", zap.String("map", location))
	report, err := h.service.Check(c.Context(), location)
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.send(c, report, format)
}

// HandleUpload checks the map archive sent as request body.
// @Summary Check Uploaded Map
// @Description Reports whether the pk3 sent as raw request body runs on the demo client.
// @Tags check
// @Accept application/octet-stream
// @Produce json
// @Produce plain
// @Param name query string false "Archive name shown in the report"
// @Param format query string false "Report format (json, yaml, text)"
// @Success 200 {object} Report "Check report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Not a map archive"
// @Failure 503 {object} map[string]string "Reference archives unavailable"
// @Router /check [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Query("format"), FormatJSON)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "request body must be a pk3 archive"})
	}

	name := path.Base(strings.Clone(c.Query("name", "upload.pk3")))
	l.Info("Checking uploaded map", zap.String("name", name), zap.Int("bytes", len(body)))

	report, err := h.service.CheckSource(c.Context(), source.Bytes{Label: name, Data: bytes.Clone(body)})
	if err != nil {
		return h.fail(c, l, err)
	}
	return h.send(c, report, format)
}

// HandleReferences reports the loaded reference inventories.
// @Summary Reference Inventories
// @Description Loads (or returns the cached) demo, patch and full inventories and reports their sizes.
// @Tags check
// @Produce json
// @Success 200 {object} ReferenceSummary "Reference sizes"
// @Failure 503 {object} map[string]string "Reference archives unavailable"
// @Router /check/references [get]
func (h *Handler) HandleReferences(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	refs, err := h.service.References(c.Context())
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(summarize(refs))
}

// HandleListMaps lists the map archives in the storage bucket.
// @Summary List Maps
// @Description Lists the .pk3 objects of the configured bucket as s3:// locations usable with GET /check.
// @Tags check
// @Produce json
// @Success 200 {object} map[string]interface{} "Map locations"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 501 {object} map[string]string "Storage not configured"
// @Router /check/maps [get]
func (h *Handler) HandleListMaps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	maps, err := h.service.ListMaps(c.Context())
	if errors.Is(err, source.ErrNoStorage) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(fiber.Map{"maps": maps, "count": len(maps)})
}

func (h *Handler) send(c *fiber.Ctx, report *Report, format Format) error {
	c.Set(fiber.HeaderContentType, format.ContentType())
	return report.Write(c, format)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Map check failed", zap.Int("status", status), zap.Error(err))
	} else {
		l.Warn("Map check rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a check error to an HTTP status code.
func StatusFor(err error) int {
	var (
		unavailable *source.UnavailableError
		readErr     *archive.ReadError
	)
	switch {
	case errors.Is(err, ErrReferences):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, source.ErrTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.As(err, &unavailable):
		return fiber.StatusBadGateway
	case errors.Is(err, deps.ErrNoBSP), errors.As(err, &readErr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, source.ErrEmptyLocation),
		errors.Is(err, source.ErrInvalidLocation),
		errors.Is(err, source.ErrLocalDenied),
		errors.Is(err, source.ErrNoStorage):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
