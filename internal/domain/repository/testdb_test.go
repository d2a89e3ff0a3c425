package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
	"github.com/chandraguptgosavi/codemore-backend/internal/platform/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to DATABASE_URL inside a throwaway schema with the tables applied.
// Tests that need it are skipped when DATABASE_URL is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres repository test")
	}
	ctx := context.Background()

	admin, err := database.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { admin.Close() })

	schema := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)
	t.Cleanup(func() {
		admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
	})

	cfg, err := pgx.ParseConfig(url)
	require.NoError(t, err)
	cfg.RuntimeParams["search_path"] = schema
	db := stdlib.OpenDB(*cfg)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureSchema(ctx, db))
	return db
}

func createTestUser(t *testing.T, repo UserRepository, name string) *model.User {
	t.Helper()
	u := &model.User{
		ID:             uuid.NewString(),
		Username:       name,
		Email:          name + "@example.com",
		HashedPassword: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}
