package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("  SELECT 1"))
	assert.Equal(t, "insert", Operation("insert into t values (1)"))
	assert.Equal(t, "unknown", Operation(""))
}

func TestDB_ObservesQueries(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	raw.SetMaxOpenConns(1)

	reg := prometheus.NewRegistry()
	db := Wrap(raw, "test", reg)
	ctx := context.Background()

	_, err = db.ExecContext(ctx, "CREATE TABLE t (id INTEGER)")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO missing VALUES (1)")
	require.Error(t, err)

	var one int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&one))

	assert.Equal(t, 1.0, testutil.ToFloat64(db.errors.WithLabelValues("insert")))
	assert.Equal(t, 3, testutil.CollectAndCount(db.duration))
}

func TestWrap_WithoutRegistry(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	db := Wrap(raw, "test", nil)

	_, err = db.ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)
	assert.Same(t, raw, db.Unwrap())
}
