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

type SessionFixture struct {
	EstablishmentID uuid.UUID
	Plate           string
	Category        string
	SpotID          *uuid.UUID
	EntryAt         time.Time
	Unit            string
	AgreedCents     int64
}

func CreateTestSpot(t *testing.T, db DBLike, establishmentID uuid.UUID, code string, templateID *uuid.UUID) uuid.UUID {
	t.Helper()

	spotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO parking_spots (id, establishment_id, code, template_id, state) VALUES ($1, $2, $3, $4, 'occupied')",
		spotID, establishmentID, code, templateID)
	require.NoError(t, err)
	return spotID
}

func CreateTestSession(t *testing.T, db DBLike, f SessionFixture) uuid.UUID {
	t.Helper()

	if f.Category == "" {
		f.Category = "car"
	}
	if f.Unit == "" {
		f.Unit = "hourly"
	}
	sessionID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO parking_sessions (id, establishment_id, plate, vehicle_category, spot_id, entry_at, billing_unit, agreed_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		sessionID, f.EstablishmentID, f.Plate, f.Category, f.SpotID, f.EntryAt, f.Unit, f.AgreedCents)
	require.NoError(t, err)
	return sessionID
}

func CreateTestTariffRule(t *testing.T, db DBLike, establishmentID uuid.UUID, category, unit string, baseCents, incrementCents int64) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO tariff_rules (id, establishment_id, vehicle_category, billing_unit, base_price_cents, incremental_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		ruleID, establishmentID, category, unit, baseCents, incrementCents)
	require.NoError(t, err)
	return ruleID
}

func CreateTestReservation(t *testing.T, db DBLike, establishmentID uuid.UUID, plate string, windowStart, windowEnd time.Time, paidCents int64) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, establishment_id, code, plate, paid_cents, window_start, window_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, establishmentID, "R-"+reservationID.String()[:8], plate, paidCents, windowStart, windowEnd)
	require.NoError(t, err)
	return reservationID
}

func CreateTestSubscription(t *testing.T, db DBLike, establishmentID, spotID uuid.UUID, startsOn, endsOn time.Time, plates ...string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	subscriptionID := uuid.New()
	_, err := db.Exec(ctx, `
		INSERT INTO subscriptions (id, establishment_id, spot_id, starts_on, ends_on)
		VALUES ($1, $2, $3, $4, $5)`,
		subscriptionID, establishmentID, spotID, startsOn, endsOn)
	require.NoError(t, err)

	for _, plate := range plates {
		_, err = db.Exec(ctx, "INSERT INTO subscription_vehicles (subscription_id, plate) VALUES ($1, $2)", subscriptionID, plate)
		require.NoError(t, err)
	}
	return subscriptionID
}

// SpotState reads a spot's occupancy for assertions.
func SpotState(t *testing.T, db DBLike, spotID uuid.UUID) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT state FROM parking_spots WHERE id = $1", spotID).Scan(&state)
	require.NoError(t, err)
	return state
}

// SessionExitAt returns nil while the session is open.
func SessionExitAt(t *testing.T, db DBLike, sessionID uuid.UUID) *time.Time {
	t.Helper()

	var exitAt *time.Time
	err := db.QueryRow(context.Background(), "SELECT exit_at FROM parking_sessions WHERE id = $1", sessionID).Scan(&exitAt)
	require.NoError(t, err)
	return exitAt
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData is a hook for shared rows; every parking fixture is per-test today.
func SeedReferenceData(_ *pgxpool.Pool) error {
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
