//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func getTestPostgres(t *testing.T) *Postgres {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	migrator, err := NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	p, err := ConnectPostgres(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = p.pool.Exec(context.Background(), "DELETE FROM score_records WHERE job_id IN (1, 2, 5)")
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestIntegration_PostgresStore(t *testing.T) {
	runStoreContract(t, func(t *testing.T) ScoreStore {
		return getTestPostgres(t)
	})
}

func TestIntegration_MigratorVersion(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	migrator, err := NewMigrator(dsn)
	require.NoError(t, err)
	defer migrator.Close()

	require.NoError(t, migrator.Up())
	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	require.False(t, dirty)
}
