package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"calc-catalog/internal/api/handlers"
	"calc-catalog/internal/dto"
	"calc-catalog/internal/models"
	"calc-catalog/internal/service"
	"calc-catalog/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource []models.Tool

func (s staticSource) ListTools(context.Context) ([]models.Tool, error) {
	return s, nil
}

var testTools = staticSource{
	{Category: models.CategoryFinance, Slug: "a", Title: "A", Description: "Tool A", Tags: []string{"mortgage", "loan", "calculator"}},
	{Category: models.CategoryFinance, Slug: "b", Title: "B", Description: "Tool B", Tags: []string{"mortgage", "rate", "calculator"}},
	{Category: models.CategoryHealth, Slug: "c", Title: "C", Description: "Tool C", Tags: []string{"mortgage"}},
}

func newTestApp(t *testing.T, load bool) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	svc := service.NewCatalogService(testTools, &config.CatalogConfig{RelatedLimit: 4, RelatedMaxLimit: 12}, logger)
	if load {
		require.NoError(t, svc.Load(context.Background()))
	}
	return SetupRouter(handlers.NewToolHandler(svc, logger), &config.ServerConfig{}, logger)
}

func get(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	var body map[string]string
	assert.Equal(t, http.StatusOK, get(t, newTestApp(t, true), "/healthz", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestListCategories(t *testing.T) {
	var categories []dto.CategoryResponse
	status := get(t, newTestApp(t, true), "/api/v1/categories", &categories)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []dto.CategoryResponse{
		{Category: "finance", Count: 2},
		{Category: "health", Count: 1},
	}, categories)
}

func TestListTools(t *testing.T) {
	app := newTestApp(t, true)

	var tools []dto.ToolResponse
	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/tools/finance", &tools))
	require.Len(t, tools, 2)
	assert.Equal(t, "/finance/a", tools[0].URL)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, get(t, app, "/api/v1/tools/crypto", &errBody))
	assert.NotEmpty(t, errBody["error"])
}

func TestGetTool(t *testing.T) {
	app := newTestApp(t, true)

	var tool dto.ToolResponse
	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/tools/health/c", &tool))
	assert.Equal(t, "C", tool.Title)
	assert.Equal(t, []string{"mortgage"}, tool.Tags)

	assert.Equal(t, http.StatusNotFound, get(t, app, "/api/v1/tools/finance/c", nil))
}

func TestRelatedTools(t *testing.T) {
	app := newTestApp(t, true)

	var resp dto.RelatedToolsResponse
	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/tools/finance/a/related", &resp))
	assert.Equal(t, "a", resp.Tool.Slug)
	assert.Equal(t, 4, resp.Limit)
	require.Len(t, resp.Related, 1)
	assert.Equal(t, "b", resp.Related[0].Slug)

	var none dto.RelatedToolsResponse
	assert.Equal(t, http.StatusOK, get(t, app, "/api/v1/tools/health/c/related?limit=2", &none))
	assert.NotNil(t, none.Related)
	assert.Empty(t, none.Related)
}

func TestRelatedToolsRejectsBadLimit(t *testing.T) {
	app := newTestApp(t, true)

	for _, limit := range []string{"0", "-3", "four"} {
		var body map[string]string
		assert.Equal(t, http.StatusBadRequest, get(t, app, "/api/v1/tools/finance/a/related?limit="+limit, &body), limit)
		assert.Contains(t, body["error"], "limit")
	}
}

func TestCatalogNotLoaded(t *testing.T) {
	var body map[string]string
	assert.Equal(t, http.StatusServiceUnavailable, get(t, newTestApp(t, false), "/api/v1/categories", &body))
	assert.NotEmpty(t, body["error"])
}
