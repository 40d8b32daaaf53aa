package merge

import (
	"schema-merger/core/logger"
	"schema-merger/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MergeRequest is the body of POST /merge.
type MergeRequest struct {
	// A is the newer create XML.
	A string `json:"a"`
	// B is the former create XML.
	B string `json:"b"`
}

// MergeResponse is returned by POST /merge.
type MergeResponse struct {
	Success     bool                   `json:"success"`
	Summary     reconcile.Summary      `json:"summary"`
	Diagnostics []reconcile.Diagnostic `json:"diagnostics"`
	Statements  []string               `json:"statements"`
	Merged      string                 `json:"merged"`
}

// Handler handles HTTP requests for merges.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the merge routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/merge", h.HandleMerge)
}

// HandleMerge compares two documents sent in the request body.
// @Summary Merge Create XML Documents
// @Description Compares document A (newer) against B (former) and returns the diagnostics, the SQL migration script and the merged document. Fatal findings set success to false.
// @Tags merge
// @Accept json
// @Produce json
// @Param request body MergeRequest true "Documents to compare"
// @Success 200 {object} MergeResponse "Merge Result"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /merge [post]
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.A == "" || req.B == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "both documents a and b are required",
		})
	}

	res, err := h.service.MergeDocuments([]byte(req.A), []byte(req.B), l)
	if err != nil {
		l.Warn("Merge input rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	merged, err := res.Merged.Bytes()
	if err != nil {
		l.Error("Encoding merged document failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Merge completed",
		zap.Int("diagnostics", len(res.Diagnostics)),
		zap.Int("fatal", res.Summary.Fatal),
		zap.Int("statements", res.Summary.Statements),
	)

	return c.JSON(MergeResponse{
		Success:     !res.Failed(),
		Summary:     res.Summary,
		Diagnostics: res.Diagnostics,
		Statements:  res.Statements,
		Merged:      string(merged),
	})
}
