package writerepo

import (
	"context"

	"hotelcore/internal/domain/booking"
	"hotelcore/internal/infra"
	"hotelcore/internal/infra/db"
	"hotelcore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, reservation_code, user_id, category_id,
			check_in, check_out, rooms_booked, status,
			original_price_cents, discount_cents, total_price_cents
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		b.ID(), b.Code().String(), b.UserID(), b.CategoryID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()), pgconv.DateToPgtype(b.Stay().CheckOut()),
		int32(b.RoomsBooked()), b.Status().String(),
		b.OriginalPrice().Cents(), b.Discount().Cents(), b.TotalPrice().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	for _, roomID := range b.AssignedRooms() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO booking_rooms (booking_id, room_id) VALUES ($1, $2)`,
			id, roomID); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to assign room to booking", err)
		}
	}

	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2 WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
