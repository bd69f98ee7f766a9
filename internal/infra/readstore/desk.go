package readstore

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type DeskReadStore struct {
	db db.DBTX
}

func NewDeskReadStore(dbtx db.DBTX) *DeskReadStore {
	return &DeskReadStore{db: dbtx}
}

func (r *DeskReadStore) FindAllBookings(ctx context.Context) ([]*queries.DeskBookingRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.reservation_code, u.name, u.email, c.name,
		       b.check_in, b.check_out, b.rooms_booked, b.status,
		       b.total_price_cents, b.created_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN room_categories c ON c.id = b.category_id
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list desk bookings", err)
	}
	defer rows.Close()

	var result []*queries.DeskBookingRow
	for rows.Next() {
		var (
			row      queries.DeskBookingRow
			checkIn  pgtype.Date
			checkOut pgtype.Date
			created  pgtype.Timestamptz
		)
		if err := rows.Scan(&row.ID, &row.ReservationCode, &row.GuestName, &row.GuestEmail,
			&row.CategoryName, &checkIn, &checkOut, &row.RoomsBooked, &row.Status,
			&row.TotalPriceCents, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan desk booking", err)
		}
		row.CheckIn = pgconv.DateFromPgtype(checkIn)
		row.CheckOut = pgconv.DateFromPgtype(checkOut)
		row.CreatedAt = pgconv.TimeFromPgtype(created)
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read desk bookings", err)
	}
	return result, nil
}

// FindTodayOccupancy counts per category how many units are free tonight.
// Nights without a ledger row count as fully free.
func (r *DeskReadStore) FindTodayOccupancy(ctx context.Context, today time.Time) ([]*queries.OccupancyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.total_rooms,
		       COALESCE(ra.available_rooms, c.total_rooms) AS available_today,
		       c.total_rooms - COALESCE(ra.available_rooms, c.total_rooms) AS occupied_today,
		       c.price_per_night_cents
		FROM room_categories c
		LEFT JOIN room_availability ra ON ra.category_id = c.id AND ra.date = $1
		ORDER BY c.name`,
		pgconv.DateToPgtype(today))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read today occupancy", err)
	}
	defer rows.Close()

	var result []*queries.OccupancyRow
	for rows.Next() {
		var row queries.OccupancyRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.TotalRooms,
			&row.AvailableToday, &row.OccupiedToday, &row.PricePerNightCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read today occupancy", err)
	}
	return result, nil
}

// FindDailyRevenue groups confirmed bookings by check-in date. Revenue is
// attributed entirely to the check-in day, matching how the desk reads it.
func (r *DeskReadStore) FindDailyRevenue(ctx context.Context, from, to time.Time) ([]*queries.RevenueRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.check_in, COUNT(*), COALESCE(SUM(b.total_price_cents), 0)
		FROM bookings b
		WHERE b.status = 'confirmed' AND b.check_in >= $1 AND b.check_in < $2
		GROUP BY b.check_in
		ORDER BY b.check_in`,
		pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read daily revenue", err)
	}
	defer rows.Close()

	var result []*queries.RevenueRow
	for rows.Next() {
		var (
			row  queries.RevenueRow
			date pgtype.Date
		)
		if err := rows.Scan(&date, &row.Bookings, &row.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue row", err)
		}
		row.Date = pgconv.DateFromPgtype(date)
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read daily revenue", err)
	}
	return result, nil
}

func (r *DeskReadStore) FindStats(ctx context.Context, today time.Time) (*queries.DeskStats, error) {
	var stats queries.DeskStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'confirmed'),
		       COUNT(*) FILTER (WHERE status = 'confirmed' AND check_in = $1),
		       COUNT(*) FILTER (WHERE status = 'confirmed' AND check_out = $1),
		       COALESCE(SUM(total_price_cents) FILTER (WHERE status = 'confirmed'), 0)
		FROM bookings`,
		pgconv.DateToPgtype(today),
	).Scan(&stats.TotalBookings, &stats.ConfirmedBookings,
		&stats.TodayCheckIns, &stats.TodayCheckOuts, &stats.TotalRevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read desk stats", err)
	}
	return &stats, nil
}
