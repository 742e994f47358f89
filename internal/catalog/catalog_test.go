package catalog

import (
	"testing"

	"calc-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTool(category models.ToolCategory, slug string, tags ...string) models.Tool {
	return models.Tool{
		Category:    category,
		Slug:        slug,
		Title:       slug + " title",
		Description: slug + " description",
		Tags:        tags,
	}
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		tools   []models.Tool
		wantErr error
	}{
		{
			name:    "missing slug",
			tools:   []models.Tool{newTool(models.CategoryFinance, " ")},
			wantErr: ErrInvalidTool,
		},
		{
			name:    "unknown category",
			tools:   []models.Tool{newTool("crypto", "bitcoin")},
			wantErr: ErrInvalidTool,
		},
		{
			name: "missing title",
			tools: []models.Tool{{
				Category:    models.CategoryHealth,
				Slug:        "bmi",
				Description: "d",
			}},
			wantErr: ErrInvalidTool,
		},
		{
			name: "missing description",
			tools: []models.Tool{{
				Category: models.CategoryHealth,
				Slug:     "bmi",
				Title:    "BMI",
			}},
			wantErr: ErrInvalidTool,
		},
		{
			name: "duplicate slug in category",
			tools: []models.Tool{
				newTool(models.CategoryFinance, "loan"),
				newTool(models.CategoryFinance, "loan"),
			},
			wantErr: ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tools)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestNewAllowsSameSlugAcrossCategories(t *testing.T) {
	c, err := New([]models.Tool{
		newTool(models.CategoryFinance, "tax"),
		newTool(models.CategoryBusiness, "tax"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestCatalogQueries(t *testing.T) {
	input := []models.Tool{
		newTool(models.CategoryHealth, "bmi", "bmi"),
		newTool(models.CategoryFinance, "mortgage", "mortgage"),
		newTool(models.CategoryHealth, "calorie", "calories"),
		newTool(models.CategoryFinance, "loan", "loan"),
	}
	c, err := New(input)
	require.NoError(t, err)

	t.Run("all keeps order and positions", func(t *testing.T) {
		all := c.All()
		require.Len(t, all, 4)
		for i, tool := range all {
			assert.Equal(t, input[i].Slug, tool.Slug)
			assert.Equal(t, i, tool.Position)
		}
	})

	t.Run("by category", func(t *testing.T) {
		health := c.ByCategory(models.CategoryHealth)
		require.Len(t, health, 2)
		assert.Equal(t, "bmi", health[0].Slug)
		assert.Equal(t, "calorie", health[1].Slug)
		assert.Empty(t, c.ByCategory(models.CategoryEveryday))
	})

	t.Run("lookup", func(t *testing.T) {
		tool, ok := c.Lookup(models.CategoryFinance, "loan")
		require.True(t, ok)
		assert.Equal(t, "loan title", tool.Title)

		_, ok = c.Lookup(models.CategoryHealth, "loan")
		assert.False(t, ok)
	})

	t.Run("categories in first appearance order", func(t *testing.T) {
		assert.Equal(t, []models.ToolCategory{models.CategoryHealth, models.CategoryFinance}, c.Categories())
	})
}

func TestCatalogIsolatedFromCallers(t *testing.T) {
	input := []models.Tool{newTool(models.CategoryFinance, "loan", "loan")}
	c, err := New(input)
	require.NoError(t, err)

	input[0].Tags[0] = "changed"
	all := c.All()
	all[0].Slug = "changed"

	tool, ok := c.Lookup(models.CategoryFinance, "loan")
	require.True(t, ok)
	assert.Equal(t, []string{"loan"}, tool.Tags)
}
