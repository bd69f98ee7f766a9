package queries

import (
	"context"
	"time"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	ReservationCode    string    `json:"reservation_code"`
	UserID             uuid.UUID `json:"user_id"`
	UserEmail          string    `json:"user_email"`
	GuestName          string    `json:"guest_name"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
	RoomsBooked        int32     `json:"rooms_booked"`
	Status             string    `json:"status"`
	OriginalPriceCents int64     `json:"original_price_cents"`
	DiscountCents      int64     `json:"discount_cents"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	RoomNumbers        []string  `json:"room_numbers"`
	CreatedAt          time.Time `json:"created_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	ReservationCode string    `json:"reservation_code"`
	CategoryName    string    `json:"category_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	RoomsBooked     int32     `json:"rooms_booked"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role == user.RoleReception || a.Role == user.RoleAdmin
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	GetByCode(ctx context.Context, actor Actor, code string) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// GetByIDSystem skips the ownership check. Command handlers use it for
	// read-after-commit responses.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCode(ctx context.Context, code string) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBookingLookupErr(err)
	}
	return authorizeBookingView(actor, view)
}

func (q *bookingQueriesImpl) GetByCode(ctx context.Context, actor Actor, code string) (*BookingView, error) {
	view, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, mapBookingLookupErr(err)
	}
	return authorizeBookingView(actor, view)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBookingLookupErr(err)
	}
	return view, nil
}

func authorizeBookingView(actor Actor, view *BookingView) (*BookingView, error) {
	if view.UserID != actor.UserID && !actor.IsStaff() {
		// Hide existence from other guests
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func mapBookingLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrBookingNotFound
	}
	return err
}
