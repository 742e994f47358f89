package postgres

import (
	"testing"

	"calc-catalog/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "catalog",
		Password: "secret",
		DBName:   "calc_catalog",
		SSLMode:  "disable",
	}

	dsn := DSN(cfg)
	assert.Equal(t, "host=db port=5432 user=catalog password=secret dbname=calc_catalog sslmode=disable", dsn)

	parsed, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db", parsed.ConnConfig.Host)
	assert.Equal(t, uint16(5432), parsed.ConnConfig.Port)
	assert.Equal(t, "calc_catalog", parsed.ConnConfig.Database)
}
