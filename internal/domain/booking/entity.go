package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay            = errors.New("check-out date must be after check-in date")
	ErrInvalidRoomCount       = errors.New("must book at least one room")
	ErrInvalidReservationCode = errors.New("invalid reservation code")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrAssignmentMismatch     = errors.New("assigned rooms do not match requested count")
	ErrAlreadyCancelled       = errors.New("booking is already cancelled")
	ErrNotEnoughRooms         = errors.New("not enough rooms available")
)

// NoVacancyError carries the first night of the stay that lacked capacity.
type NoVacancyError struct {
	Date time.Time
}

func (e *NoVacancyError) Error() string {
	return "not enough rooms available for date " + e.Date.Format(time.DateOnly)
}

func (e *NoVacancyError) Unwrap() error {
	return ErrNotEnoughRooms
}

// Booking is the aggregate root of a confirmed reservation. While Confirmed
// it exclusively owns its assigned room units for every night of the stay.
type Booking struct {
	id            uuid.UUID
	code          ReservationCode
	userID        uuid.UUID
	categoryID    uuid.UUID
	stay          Stay
	roomsBooked   int
	status        Status
	originalPrice Money
	discount      Money
	totalPrice    Money
	assignedRooms []uuid.UUID
	createdAt     time.Time
}

func NewBooking(
	userID, categoryID uuid.UUID,
	stay Stay,
	roomsBooked int,
	quote Quote,
	assignedRooms []uuid.UUID,
) (*Booking, error) {
	if roomsBooked < 1 {
		return nil, ErrInvalidRoomCount
	}
	if len(assignedRooms) != roomsBooked {
		return nil, ErrAssignmentMismatch
	}
	return &Booking{
		id:            uuid.New(),
		code:          NewReservationCode(),
		userID:        userID,
		categoryID:    categoryID,
		stay:          stay,
		roomsBooked:   roomsBooked,
		status:        StatusConfirmed,
		originalPrice: quote.Original,
		discount:      quote.Discount,
		totalPrice:    quote.Total,
		assignedRooms: assignedRooms,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	code ReservationCode,
	userID, categoryID uuid.UUID,
	stay Stay,
	roomsBooked int,
	status Status,
	originalPrice, discount, totalPrice Money,
	assignedRooms []uuid.UUID,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		code:          code,
		userID:        userID,
		categoryID:    categoryID,
		stay:          stay,
		roomsBooked:   roomsBooked,
		status:        status,
		originalPrice: originalPrice,
		discount:      discount,
		totalPrice:    totalPrice,
		assignedRooms: assignedRooms,
		createdAt:     createdAt,
	}
}

// Cancel returns a cancelled copy of the booking. The caller must release
// the booking's ledger nights in the same transaction that persists the
// transition.
func (b *Booking) Cancel() (*Booking, error) {
	if b.status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	cancelled := *b
	cancelled.status = StatusCancelled
	return &cancelled, nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) BelongsTo(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Code() ReservationCode      { return b.code }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) CategoryID() uuid.UUID      { return b.categoryID }
func (b *Booking) Stay() Stay                 { return b.stay }
func (b *Booking) RoomsBooked() int           { return b.roomsBooked }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) OriginalPrice() Money       { return b.originalPrice }
func (b *Booking) Discount() Money            { return b.discount }
func (b *Booking) TotalPrice() Money          { return b.totalPrice }
func (b *Booking) AssignedRooms() []uuid.UUID { return b.assignedRooms }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
