package handlers

import (
	"errors"
	"strconv"

	"calc-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ToolHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewToolHandler(catalogService *service.CatalogService, logger *zap.Logger) *ToolHandler {
	return &ToolHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description List tool categories with the number of tools in each
// @Tags tools
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 503 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *ToolHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.Categories()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(categories)
}

// ListTools godoc
// @Summary List tools in a category
// @Description List the tools of one category in catalog order
// @Tags tools
// @Produce json
// @Param category path string true "Category: finance, business, health or everyday"
// @Success 200 {array} dto.ToolResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/tools/{category} [get]
func (h *ToolHandler) ListTools(c *fiber.Ctx) error {
	tools, err := h.catalogService.ListCategory(c.Params("category"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tools)
}

// GetTool godoc
// @Summary Get a tool
// @Tags tools
// @Produce json
// @Param category path string true "Category"
// @Param slug path string true "Tool slug"
// @Success 200 {object} dto.ToolResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/tools/{category}/{slug} [get]
func (h *ToolHandler) GetTool(c *fiber.Ctx) error {
	tool, err := h.catalogService.GetTool(c.Params("category"), c.Params("slug"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tool)
}

// RelatedTools godoc
// @Summary Related tools
// @Description Tools from the same category ranked by shared tags
// @Tags tools
// @Produce json
// @Param category path string true "Category"
// @Param slug path string true "Tool slug"
// @Param limit query int false "Maximum number of related tools"
// @Success 200 {object} dto.RelatedToolsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/tools/{category}/{slug}/related [get]
func (h *ToolHandler) RelatedTools(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a positive integer",
			})
		}
		limit = n
	}

	resp, err := h.catalogService.Related(c.Params("category"), c.Params("slug"), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ToolHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownCategory), errors.Is(err, service.ErrToolNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidLimit):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrCatalogNotLoaded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Catalog is not available",
		})
	}

	h.logger.Error("Catalog request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
