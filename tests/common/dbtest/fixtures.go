//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, "Test User", testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestCategory inserts a room category together with its physical
// units, numbered from 101 upward.
func CreateTestCategory(t *testing.T, db DBLike, name string, priceCents int64, totalRooms int) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO room_categories (id, name, price_per_night_cents, total_rooms) VALUES ($1, $2, $3, $4) ON CONFLICT (name) DO NOTHING",
		categoryID, name, priceCents, totalRooms)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM room_categories WHERE name = $1", name).Scan(&categoryID)
		return categoryID
	}

	for i := 0; i < totalRooms; i++ {
		_, err = db.Exec(ctx,
			"INSERT INTO rooms (id, room_number, category_id) VALUES ($1, $2, $3)",
			uuid.New(), fmt.Sprintf("%s-%d", name, 101+i), categoryID)
		require.NoError(t, err)
	}

	return categoryID
}

func CreateTestPromotion(t *testing.T, db DBLike, code string, discountPercentage int, expiryDate time.Time, active bool) uuid.UUID {
	t.Helper()

	promotionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO promotions (id, code, discount_percentage, expiry_date, is_active) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (code) DO NOTHING",
		promotionID, code, discountPercentage, expiryDate, active)
	require.NoError(t, err)

	return promotionID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	categoryID := uuid.New()
	tag, err := pool.Exec(ctx, `
		INSERT INTO room_categories (id, name, price_per_night_cents, total_rooms)
		VALUES ($1, 'Standard', 10000, 5)
		ON CONFLICT (name) DO NOTHING;
	`, categoryID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		for i := 101; i <= 105; i++ {
			if _, err := pool.Exec(ctx,
				"INSERT INTO rooms (id, room_number, category_id) VALUES ($1, $2, $3)",
				uuid.New(), fmt.Sprintf("Standard-%d", i), categoryID); err != nil {
				return err
			}
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
