package writerepo

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

// LedgerRepository owns the room_availability counters. Every write runs
// inside the caller's transaction; LockRange must be called first so the
// affected rows are held FOR UPDATE in ascending date order.
type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

const materializeLedgerSQL = `
INSERT INTO room_availability (id, category_id, date, available_rooms)
SELECT gen_random_uuid(), $1, d::date, $4
FROM generate_series($2::date, $3::date - INTERVAL '1 day', INTERVAL '1 day') AS d
ON CONFLICT (category_id, date) DO NOTHING`

const lockLedgerSQL = `
SELECT date, available_rooms
FROM room_availability
WHERE category_id = $1 AND date >= $2 AND date < $3
ORDER BY date
FOR UPDATE`

func (r *LedgerRepository) LockRange(
	ctx context.Context,
	tx db.DBTX,
	categoryID uuid.UUID,
	checkIn, checkOut time.Time,
	totalRooms int32,
) ([]shared.LedgerEntry, error) {
	_, err := tx.Exec(ctx, materializeLedgerSQL,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut), totalRooms)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to materialize availability rows", err)
	}

	rows, err := tx.Query(ctx, lockLedgerSQL,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock availability rows", err)
	}
	defer rows.Close()

	var entries []shared.LedgerEntry
	for rows.Next() {
		var (
			date      time.Time
			available int32
		)
		if err := rows.Scan(&date, &available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability row", err)
		}
		entries = append(entries, shared.LedgerEntry{
			Date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			AvailableRooms: available,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability rows", err)
	}

	return entries, nil
}

func (r *LedgerRepository) Reserve(
	ctx context.Context,
	tx db.DBTX,
	categoryID uuid.UUID,
	checkIn, checkOut time.Time,
	count int32,
) error {
	tag, err := tx.Exec(ctx, `
		UPDATE room_availability
		SET available_rooms = available_rooms - $4
		WHERE category_id = $1 AND date >= $2 AND date < $3 AND available_rooms >= $4`,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut), count)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve availability", err)
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	if tag.RowsAffected() != nights {
		// The caller re-checks counts under the row locks before reserving,
		// so a short update means the locks were not taken.
		return infra.WrapRepoErr("reserve touched fewer nights than the stay", errs.New("availability changed under reservation"), infra.KindIntegrityViolated)
	}

	return nil
}

func (r *LedgerRepository) Release(
	ctx context.Context,
	tx db.DBTX,
	categoryID uuid.UUID,
	checkIn, checkOut time.Time,
	count, totalRooms int32,
) error {
	rows, err := tx.Query(ctx, `
		UPDATE room_availability
		SET available_rooms = available_rooms + $4
		WHERE category_id = $1 AND date >= $2 AND date < $3
		RETURNING available_rooms`,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut), count)
	if err != nil {
		return infra.WrapRepoErr("failed to release availability", err)
	}
	defer rows.Close()

	for rows.Next() {
		var available int32
		if err := rows.Scan(&available); err != nil {
			return infra.WrapRepoErr("failed to scan released availability", err)
		}
		// Free units above capacity mean the ledger and the bookings table
		// disagree. Fail the transaction instead of clamping.
		if available > totalRooms {
			return infra.WrapRepoErr("released availability exceeds category capacity", errs.ErrLedgerCorrupt, infra.KindIntegrityViolated)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read released availability", err)
	}

	return nil
}
