package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"calc-catalog/internal/catalog"
	"calc-catalog/internal/dto"
	"calc-catalog/internal/models"
	"calc-catalog/internal/related"
	"calc-catalog/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrCatalogNotLoaded = errors.New("catalog not loaded")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidLimit     = errors.New("limit must be positive")
)

// ToolSource provides the raw tool list the catalog is built from.
type ToolSource interface {
	ListTools(ctx context.Context) ([]models.Tool, error)
}

// snapshot pairs a catalog with the recommender built over it.
type snapshot struct {
	catalog     *catalog.Catalog
	recommender *related.Recommender
}

type CatalogService struct {
	source  ToolSource
	config  *config.CatalogConfig
	logger  *zap.Logger
	current atomic.Pointer[snapshot]
}

func NewCatalogService(source ToolSource, cfg *config.CatalogConfig, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		source: source,
		config: cfg,
		logger: logger,
	}
}

// Load reads the tools from the source and replaces the served catalog.
// On failure the previously loaded catalog stays in place.
func (s *CatalogService) Load(ctx context.Context) error {
	tools, err := s.source.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	c, err := catalog.New(tools)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	s.current.Store(&snapshot{
		catalog:     c,
		recommender: related.New(c.All()),
	})

	s.logger.Info("Catalog loaded",
		zap.Int("tools", c.Len()),
		zap.Int("categories", len(c.Categories())),
	)
	return nil
}

func (s *CatalogService) snapshot() (*snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrCatalogNotLoaded
	}
	return snap, nil
}

// Categories lists the categories that have tools, with their counts.
func (s *CatalogService) Categories() ([]dto.CategoryResponse, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	categories := snap.catalog.Categories()
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.CategoryResponse{
			Category: string(category),
			Count:    len(snap.catalog.ByCategory(category)),
		})
	}
	return out, nil
}

// ListCategory returns the tools of one category in catalog order.
func (s *CatalogService) ListCategory(category string) ([]dto.ToolResponse, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	c := models.ToolCategory(category)
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return toResponses(snap.catalog.ByCategory(c)), nil
}

func (s *CatalogService) GetTool(category, slug string) (*dto.ToolResponse, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	tool, err := lookup(snap.catalog, category, slug)
	if err != nil {
		return nil, err
	}
	resp := toResponse(tool)
	return &resp, nil
}

// Related returns the tools most related to category/slug. A zero limit
// selects the configured default; larger limits are clamped to the
// configured maximum.
func (s *CatalogService) Related(category, slug string, limit int) (*dto.RelatedToolsResponse, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	switch {
	case limit < 0:
		return nil, ErrInvalidLimit
	case limit == 0:
		limit = s.config.RelatedLimit
	case limit > s.config.RelatedMaxLimit:
		limit = s.config.RelatedMaxLimit
	}

	tool, err := lookup(snap.catalog, category, slug)
	if err != nil {
		return nil, err
	}

	tools := snap.recommender.Related(tool, limit)
	s.logger.Debug("Related tools computed",
		zap.String("category", category),
		zap.String("slug", slug),
		zap.Int("limit", limit),
		zap.Int("results", len(tools)),
	)

	return &dto.RelatedToolsResponse{
		Tool:    toResponse(tool),
		Limit:   limit,
		Related: toResponses(tools),
	}, nil
}

func lookup(c *catalog.Catalog, category, slug string) (models.Tool, error) {
	cat := models.ToolCategory(category)
	if !cat.Valid() {
		return models.Tool{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	tool, ok := c.Lookup(cat, slug)
	if !ok {
		return models.Tool{}, fmt.Errorf("%w: %s/%s", ErrToolNotFound, category, slug)
	}
	return tool, nil
}

func toResponse(tool models.Tool) dto.ToolResponse {
	return dto.ToolResponse{
		Category:    string(tool.Category),
		Slug:        tool.Slug,
		Title:       sanitizeUTF8(tool.Title),
		Description: sanitizeUTF8(tool.Description),
		Tags:        tool.Tags,
		URL:         ToolPath(tool),
	}
}

func toResponses(tools []models.Tool) []dto.ToolResponse {
	out := make([]dto.ToolResponse, 0, len(tools))
	for _, tool := range tools {
		out = append(out, toResponse(tool))
	}
	return out
}

// ToolPath is the public page path of a tool.
func ToolPath(tool models.Tool) string {
	return "/" + string(tool.Category) + "/" + tool.Slug
}
