package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reception desk read models. All of these are staff-only; the handler
// layer enforces the role before calling in.

type DeskBookingRow struct {
	ID              uuid.UUID `json:"id"`
	ReservationCode string    `json:"reservation_code"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	CategoryName    string    `json:"category_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	RoomsBooked     int32     `json:"rooms_booked"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type OccupancyRow struct {
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	TotalRooms         int32     `json:"total_rooms"`
	AvailableToday     int32     `json:"available_today"`
	OccupiedToday      int32     `json:"occupied_today"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
}

type RevenueRow struct {
	Date         time.Time `json:"date"`
	Bookings     int64     `json:"bookings"`
	RevenueCents int64     `json:"revenue_cents"`
}

type DeskStats struct {
	TotalBookings     int64 `json:"total_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	TodayCheckIns     int64 `json:"today_check_ins"`
	TodayCheckOuts    int64 `json:"today_check_outs"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}

type DeskQueries interface {
	ListAllBookings(ctx context.Context) ([]*DeskBookingRow, error)
	TodayOccupancy(ctx context.Context, today time.Time) ([]*OccupancyRow, error)
	DailyRevenue(ctx context.Context, from, to time.Time) ([]*RevenueRow, error)
	Stats(ctx context.Context, today time.Time) (*DeskStats, error)
}

type DeskViewRepo interface {
	FindAllBookings(ctx context.Context) ([]*DeskBookingRow, error)
	FindTodayOccupancy(ctx context.Context, today time.Time) ([]*OccupancyRow, error)
	FindDailyRevenue(ctx context.Context, from, to time.Time) ([]*RevenueRow, error)
	FindStats(ctx context.Context, today time.Time) (*DeskStats, error)
}

type deskQueriesImpl struct {
	repo DeskViewRepo
}

func NewDeskQueries(repo DeskViewRepo) DeskQueries {
	return &deskQueriesImpl{repo: repo}
}

func (q *deskQueriesImpl) ListAllBookings(ctx context.Context) ([]*DeskBookingRow, error) {
	return q.repo.FindAllBookings(ctx)
}

func (q *deskQueriesImpl) TodayOccupancy(ctx context.Context, today time.Time) ([]*OccupancyRow, error) {
	return q.repo.FindTodayOccupancy(ctx, today)
}

func (q *deskQueriesImpl) DailyRevenue(ctx context.Context, from, to time.Time) ([]*RevenueRow, error) {
	return q.repo.FindDailyRevenue(ctx, from, to)
}

func (q *deskQueriesImpl) Stats(ctx context.Context, today time.Time) (*DeskStats, error) {
	return q.repo.FindStats(ctx, today)
}
