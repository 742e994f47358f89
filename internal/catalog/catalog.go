package catalog

import (
	"errors"
	"fmt"
	"strings"

	"calc-catalog/internal/models"
)

var (
	ErrInvalidTool   = errors.New("invalid tool")
	ErrDuplicateSlug = errors.New("duplicate slug in category")
)

type key struct {
	category models.ToolCategory
	slug     string
}

// Catalog is an ordered, read-only set of tools. It is built once and
// never mutated, so it is safe for concurrent use.
type Catalog struct {
	tools []models.Tool
	index map[key]int
}

// New validates tools and builds a Catalog that keeps their order.
// Every tool needs a slug, title, description and known category, and
// slugs must be unique within a category.
func New(tools []models.Tool) (*Catalog, error) {
	c := &Catalog{
		tools: make([]models.Tool, 0, len(tools)),
		index: make(map[key]int, len(tools)),
	}

	for i, tool := range tools {
		if err := validate(tool); err != nil {
			return nil, fmt.Errorf("tool %d (%s/%s): %w", i, tool.Category, tool.Slug, err)
		}
		k := key{category: tool.Category, slug: tool.Slug}
		if _, exists := c.index[k]; exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateSlug, tool.Category, tool.Slug)
		}

		tool.Tags = append([]string(nil), tool.Tags...)
		tool.Position = i
		c.index[k] = len(c.tools)
		c.tools = append(c.tools, tool)
	}

	return c, nil
}

func validate(tool models.Tool) error {
	switch {
	case strings.TrimSpace(tool.Slug) == "":
		return fmt.Errorf("%w: slug is required", ErrInvalidTool)
	case !tool.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTool, tool.Category)
	case strings.TrimSpace(tool.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidTool)
	case strings.TrimSpace(tool.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidTool)
	}
	return nil
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// All returns every tool in catalog order.
func (c *Catalog) All() []models.Tool {
	return append([]models.Tool(nil), c.tools...)
}

// ByCategory returns the tools of one category in catalog order.
func (c *Catalog) ByCategory(category models.ToolCategory) []models.Tool {
	var out []models.Tool
	for _, tool := range c.tools {
		if tool.Category == category {
			out = append(out, tool)
		}
	}
	return out
}

// Lookup finds a tool by category and slug.
func (c *Catalog) Lookup(category models.ToolCategory, slug string) (models.Tool, bool) {
	i, ok := c.index[key{category: category, slug: slug}]
	if !ok {
		return models.Tool{}, false
	}
	return c.tools[i], true
}

// Categories returns the categories that have at least one tool, in
// order of first appearance.
func (c *Catalog) Categories() []models.ToolCategory {
	var out []models.ToolCategory
	seen := make(map[models.ToolCategory]bool)
	for _, tool := range c.tools {
		if !seen[tool.Category] {
			seen[tool.Category] = true
			out = append(out, tool.Category)
		}
	}
	return out
}
