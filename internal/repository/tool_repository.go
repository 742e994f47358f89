package repository

import (
	"context"
	"fmt"
	"time"

	"calc-catalog/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const toolsSchema = `
CREATE TABLE IF NOT EXISTS tools (
	id          UUID PRIMARY KEY,
	category    TEXT NOT NULL,
	slug        TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	tags        TEXT[] NOT NULL DEFAULT '{}',
	position    INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,
	UNIQUE (category, slug)
)`

var toolColumns = []string{"id", "category", "slug", "title", "description", "tags", "position", "created_at", "updated_at"}

// DB is the subset of pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type ToolRepository struct {
	db     DB
	logger *zap.Logger
}

func NewToolRepository(db DB, logger *zap.Logger) *ToolRepository {
	return &ToolRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ToolRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, toolsSchema); err != nil {
		return fmt.Errorf("failed to create tools table: %w", err)
	}
	return nil
}

// ListTools returns every stored tool in catalog order.
func (r *ToolRepository) ListTools(ctx context.Context) ([]models.Tool, error) {
	sql, args, err := listToolsQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tools: %w", err)
	}
	defer rows.Close()

	var tools []models.Tool
	for rows.Next() {
		var tool models.Tool
		if err := rows.Scan(
			&tool.ID, &tool.Category, &tool.Slug, &tool.Title, &tool.Description, &tool.Tags, &tool.Position, &tool.CreatedAt, &tool.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, tool)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tools: %w", err)
	}

	r.logger.Debug("Tools loaded from database", zap.Int("count", len(tools)))
	return tools, nil
}

// UpsertBatch stores tools keyed by (category, slug). Existing rows keep
// their id and created_at; everything else is overwritten.
func (r *ToolRepository) UpsertBatch(ctx context.Context, tools []models.Tool) error {
	if len(tools) == 0 {
		return nil
	}

	sql, args, err := upsertToolsQuery(tools, time.Now().UTC()).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert tools: %w", err)
	}

	r.logger.Info("Tools upserted", zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func listToolsQuery() squirrel.SelectBuilder {
	return squirrel.Select(toolColumns...).
		From("tools").
		OrderBy("position ASC", "category ASC", "slug ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func upsertToolsQuery(tools []models.Tool, now time.Time) squirrel.InsertBuilder {
	builder := squirrel.Insert("tools").
		Columns(toolColumns...).
		Suffix("ON CONFLICT (category, slug) DO UPDATE SET " +
			"title = EXCLUDED.title, description = EXCLUDED.description, tags = EXCLUDED.tags, " +
			"position = EXCLUDED.position, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, tool := range tools {
		id := tool.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		tags := tool.Tags
		if tags == nil {
			tags = []string{}
		}
		createdAt := tool.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		builder = builder.Values(id, tool.Category, tool.Slug, tool.Title, tool.Description, tags, tool.Position, createdAt, now)
	}
	return builder
}
