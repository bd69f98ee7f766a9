package shared

import (
	"context"
	"time"

	"hotelcore/internal/domain/booking"
	"hotelcore/internal/domain/user"
	"hotelcore/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Ledger() LedgerRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	RoomsByCategory(ctx context.Context, categoryID uuid.UUID) ([]RoomSnapshot, error)
	ActivePromotionByCode(ctx context.Context, code string, asOf time.Time) (*PromotionSnapshot, error)
	BookingByCode(ctx context.Context, code string) (*BookingSnapshot, error)
	// OccupiedRooms unions the assigned unit ids of every Confirmed booking
	// whose stay overlaps [checkIn, checkOut). Always queried fresh.
	OccupiedRooms(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]uuid.UUID, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
}

// LedgerEntry is one locked (category, date) availability row.
type LedgerEntry struct {
	Date           time.Time
	AvailableRooms int32
}

type LedgerRepository interface {
	// LockRange materializes any missing rows for the stay (seeded from the
	// category total) and locks the whole range FOR UPDATE in ascending date
	// order, so overlapping requests serialize deterministically.
	LockRange(ctx context.Context, tx db.DBTX, categoryID uuid.UUID, checkIn, checkOut time.Time, totalRooms int32) ([]LedgerEntry, error)
	// Reserve decrements every locked night; rows must hold at least count.
	Reserve(ctx context.Context, tx db.DBTX, categoryID uuid.UUID, checkIn, checkOut time.Time, count int32) error
	// Release returns count units for every night of the range. A balance
	// above totalRooms is a bookkeeping fault and fails the transaction.
	Release(ctx context.Context, tx db.DBTX, categoryID uuid.UUID, checkIn, checkOut time.Time, count, totalRooms int32) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	AddLoyaltyPoints(ctx context.Context, tx db.DBTX, userID uuid.UUID, points int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
