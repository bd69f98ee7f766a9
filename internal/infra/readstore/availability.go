package readstore

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

// FindDailyAvailability reads free-room counts per night without touching
// the ledger: nights with no materialized row default to the category
// total. Uses generate_series so the answer always covers every night of
// the stay, even when the ledger is sparse.
func (r *AvailabilityReadStore) FindDailyAvailability(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]queries.AvailabilityDay, error) {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM room_categories WHERE id = $1)`, categoryID,
	).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check room category", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("room category not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	rows, err := r.db.Query(ctx, `
		SELECT d::date AS stay_date,
		       COALESCE(ra.available_rooms, c.total_rooms) AS available_rooms
		FROM room_categories c
		CROSS JOIN generate_series($2::date, $3::date - INTERVAL '1 day', INTERVAL '1 day') AS d
		LEFT JOIN room_availability ra ON ra.category_id = c.id AND ra.date = d::date
		WHERE c.id = $1
		ORDER BY stay_date`,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read daily availability", err)
	}
	defer rows.Close()

	var days []queries.AvailabilityDay
	for rows.Next() {
		var (
			date pgtype.Date
			day  queries.AvailabilityDay
		)
		if err := rows.Scan(&date, &day.AvailableRooms); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily availability", err)
		}
		day.Date = pgconv.DateFromPgtype(date)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read daily availability", err)
	}
	return days, nil
}
