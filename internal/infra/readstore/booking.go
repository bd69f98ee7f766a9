package readstore

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.reservation_code, b.user_id, u.email, u.name,
       b.category_id, c.name,
       b.check_in, b.check_out, b.rooms_booked, b.status,
       b.original_price_cents, b.discount_cents, b.total_price_cents,
       COALESCE(array_agg(r.room_number ORDER BY r.room_number) FILTER (WHERE r.id IS NOT NULL), '{}') AS room_numbers,
       b.created_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN room_categories c ON c.id = b.category_id
LEFT JOIN booking_rooms br ON br.booking_id = b.id
LEFT JOIN rooms r ON r.id = br.room_id`

const bookingViewGroupBy = `
GROUP BY b.id, u.email, u.name, c.name`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+` WHERE b.id = $1`+bookingViewGroupBy, id)
	return scanBookingView(row)
}

func (r *BookingReadStore) FindByCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+` WHERE b.reservation_code = $1`+bookingViewGroupBy, code)
	return scanBookingView(row)
}

type bookingViewRow interface {
	Scan(dest ...any) error
}

func scanBookingView(row bookingViewRow) (*queries.BookingView, error) {
	var (
		v        queries.BookingView
		checkIn  pgtype.Date
		checkOut pgtype.Date
		created  pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.ReservationCode, &v.UserID, &v.UserEmail, &v.GuestName,
		&v.CategoryID, &v.CategoryName,
		&checkIn, &checkOut, &v.RoomsBooked, &v.Status,
		&v.OriginalPriceCents, &v.DiscountCents, &v.TotalPriceCents,
		&v.RoomNumbers, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	v.CheckIn = pgconv.DateFromPgtype(checkIn)
	v.CheckOut = pgconv.DateFromPgtype(checkOut)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	return &v, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.reservation_code, c.name, b.check_in, b.check_out,
		       b.rooms_booked, b.status, b.total_price_cents, b.created_at
		FROM bookings b
		JOIN room_categories c ON c.id = b.category_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for user", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item     queries.BookingListItem
			checkIn  pgtype.Date
			checkOut pgtype.Date
			created  pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.ReservationCode, &item.CategoryName,
			&checkIn, &checkOut, &item.RoomsBooked, &item.Status,
			&item.TotalPriceCents, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return result, nil
}

// FindSnapshotByCode is the command-side lookup used by rebook/cancel.
func (r *BookingReadStore) FindSnapshotByCode(ctx context.Context, dbtx db.DBTX, code string) (*shared.BookingSnapshot, error) {
	var (
		snap     shared.BookingSnapshot
		checkIn  pgtype.Date
		checkOut pgtype.Date
		created  pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, `
		SELECT b.id, b.reservation_code, b.user_id, b.category_id,
		       b.check_in, b.check_out, b.rooms_booked, b.status,
		       b.original_price_cents, b.discount_cents, b.total_price_cents,
		       COALESCE(array_agg(br.room_id) FILTER (WHERE br.room_id IS NOT NULL), '{}'),
		       b.created_at
		FROM bookings b
		LEFT JOIN booking_rooms br ON br.booking_id = b.id
		WHERE b.reservation_code = $1
		GROUP BY b.id`,
		code,
	).Scan(&snap.ID, &snap.Code, &snap.UserID, &snap.CategoryID,
		&checkIn, &checkOut, &snap.RoomsBooked, &snap.Status,
		&snap.OriginalPriceCents, &snap.DiscountCents, &snap.TotalPriceCents,
		&snap.AssignedRoomIDs, &created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by code", err)
	}
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.CreatedAt = pgconv.TimeFromPgtype(created)
	return &snap, nil
}

// FindOccupiedRooms is the conflict resolver: the union of unit ids held by
// Confirmed bookings overlapping [checkIn, checkOut).
func (r *BookingReadStore) FindOccupiedRooms(ctx context.Context, dbtx db.DBTX, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT DISTINCT br.room_id
		FROM bookings b
		JOIN booking_rooms br ON br.booking_id = b.id
		WHERE b.category_id = $1
		  AND b.status = 'confirmed'
		  AND NOT (b.check_out <= $2 OR b.check_in >= $3)`,
		categoryID, pgconv.DateToPgtype(checkIn), pgconv.DateToPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find occupied rooms", err)
	}
	defer rows.Close()

	var occupied []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied room", err)
		}
		occupied = append(occupied, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied rooms", err)
	}
	return occupied, nil
}
