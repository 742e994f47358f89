package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"calc-catalog/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// fileTool is one entry of a catalog YAML file.
type fileTool struct {
	Category    string   `yaml:"category"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type fileCatalog struct {
	Tools []fileTool `yaml:"tools"`
}

// Parse decodes catalog YAML into tools, in file order. It does not
// validate them; pass the result to New for that.
func Parse(data []byte) ([]models.Tool, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	tools := make([]models.Tool, 0, len(fc.Tools))
	for i, ft := range fc.Tools {
		tools = append(tools, models.Tool{
			Category:    models.ToolCategory(ft.Category),
			Slug:        ft.Slug,
			Title:       ft.Title,
			Description: ft.Description,
			Tags:        ft.Tags,
			Position:    i,
		})
	}
	return tools, nil
}

// ReadFile parses the catalog at path. An empty path selects the
// embedded default catalog.
func ReadFile(path string) ([]models.Tool, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// DefaultData returns the raw embedded default catalog.
func DefaultData() []byte {
	return append([]byte(nil), defaultCatalog...)
}

// Default builds the embedded default catalog.
func Default() (*Catalog, error) {
	tools, err := Parse(defaultCatalog)
	if err != nil {
		return nil, err
	}
	return New(tools)
}

// FileSource serves tools from a catalog YAML file, or the embedded
// default catalog when Path is empty.
type FileSource struct {
	Path string
}

func (s FileSource) ListTools(ctx context.Context) ([]models.Tool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadFile(s.Path)
}
