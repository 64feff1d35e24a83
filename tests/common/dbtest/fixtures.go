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

	"workspace-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestVariant inserts a catalog variant and returns its id.
func CreateTestVariant(t *testing.T, db DBLike, v booking.Variant) uuid.UUID {
	t.Helper()

	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var stock *int32
	if v.Stock != nil {
		n := int32(*v.Stock)
		stock = &n
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO variants (id, kind, name, stock, pax, term_months, active, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, string(v.Kind), v.Name, stock, int32(v.Pax), int32(v.TermMonths), v.Active, int32(v.SortOrder))
	require.NoError(t, err)

	return id
}

// VariantID returns the id of the first seeded variant of kind.
func VariantID(t *testing.T, db DBLike, kind booking.ResourceKind) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`SELECT id FROM variants WHERE kind = $1 ORDER BY sort_order, name LIMIT 1`,
		string(kind)).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountActiveReservations counts reservations consuming capacity of kind.
func CountActiveReservations(t *testing.T, db DBLike, kind booking.ResourceKind) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM reservations
		 WHERE kind = $1 AND held AND NOT released AND order_status <> 'cancelled'`,
		string(kind)).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the catalog every e2e test starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO variants (kind, name, stock, pax, term_months, active, sort_order) VALUES
		    ('shared_desk_pool', 'Hot Desk', 8, 1, 0, true, 0),
		    ('exclusive_room', 'Exclusive Room', 1, 8, 0, true, 0),
		    ('office_suite', 'Private Office 4 pax', 1, 4, 1, true, 0),
		    ('virtual_subscription', 'Virtual Office 12 bulan', NULL, 0, 12, true, 0);
	`)
	if err != nil {
		return err
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
