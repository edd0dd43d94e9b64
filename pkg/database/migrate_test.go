package database

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_RejectsUnknownDirection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	changed, err := Migrate("postgres://localhost/ledger", "file://migrations", Direction("sideways"), logger)

	require.Error(t, err)
	assert.False(t, changed)
	assert.Contains(t, err.Error(), "sideways")
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "", false)

	require.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPgxPool_BadURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "postgres://%zz", false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}
