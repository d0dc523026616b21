//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"supplier-marketplace/internal/pkg/errs"
)

// DBLike is satisfied by a pool, a connection and a transaction, so fixtures can also be
// written inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword is the plain text behind the hash CreateTestUser stores.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts a user whose password is TestPassword. An existing email is reused and
// its id returned.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, email, password_hash, role) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		uuid.New(), email, testPasswordHash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestCompany inserts a company owned by userID with an explicit creation time so
// registry windows can be exercised.
func CreateTestCompany(t *testing.T, db DBLike, userID uuid.UUID, inn, region string, createdAt time.Time) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO companies (id, user_id, name, inn, region, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $6)`,
		companyID, userID, "Компания "+inn, inn, region, createdAt)
	require.NoError(t, err)

	return companyID
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

const listTablesSQL = `
SELECT coalesce(string_agg(format('%I.%I', schemaname, tablename), ', '), '')
FROM pg_tables
WHERE schemaname = 'public' AND tablename <> 'schema_migrations'`

// ResetDB truncates every application table, leaving the migration version intact.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var tables string
	if err := pool.QueryRow(ctx, listTablesSQL).Scan(&tables); err != nil {
		return errs.Wrap(err, "list tables")
	}
	if tables == "" {
		return nil
	}
	_, err := pool.Exec(ctx, "TRUNCATE "+tables+" RESTART IDENTITY CASCADE")
	return errs.Wrap(err, "truncate")
}
