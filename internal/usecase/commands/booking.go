package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hotelcore/internal/domain/booking"
	"hotelcore/internal/domain/category"
	"hotelcore/internal/domain/promotion"
	"hotelcore/internal/domain/room"
	reqdto "hotelcore/internal/handler/dto/request"
	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/clock"
	"hotelcore/internal/pkg/errs"
	"hotelcore/internal/usecase/queries"
	"hotelcore/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingNotifier delivers guest-facing confirmations after commit. Failures
// are logged, never propagated: the booking is already durable.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, view *queries.BookingView)
	BookingCancelled(ctx context.Context, view *queries.BookingView)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	// Rebook creates a fresh booking on new dates with the same category and
	// room count as an existing one. The original stays confirmed.
	Rebook(ctx context.Context, code string, req reqdto.RebookRequest, actor queries.Actor) (*queries.BookingView, error)
	Cancel(ctx context.Context, code string, actor queries.Actor) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	notifier       BookingNotifier
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	notifier BookingNotifier,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error) {
	stay, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStay)
	}
	if req.RoomsBooked < 1 {
		return nil, errs.ErrInvalidRoomCount
	}

	cat, err := c.loadCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	promo, err := c.loadPromotion(ctx, req.GetPromotionCode())
	if err != nil {
		return nil, err
	}

	view, err := c.book(ctx, cat, userID, stay, req.RoomsBooked, promo)
	if err != nil {
		return nil, err
	}

	c.notifier.BookingConfirmed(ctx, view)
	return view, nil
}

func (c *bookingCommandsImpl) Rebook(ctx context.Context, code string, req reqdto.RebookRequest, actor queries.Actor) (*queries.BookingView, error) {
	parsed, err := booking.ParseReservationCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}

	stay, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStay)
	}

	original, err := c.uow.CommandReads().BookingByCode(ctx, parsed.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if original.UserID != actor.UserID && !actor.IsStaff() {
		return nil, errs.ErrBookingNotFound
	}

	cat, err := c.loadCategory(ctx, original.CategoryID)
	if err != nil {
		return nil, err
	}

	// Rebooking never re-applies the original promotion; the new stay is
	// priced at the current rate.
	view, err := c.book(ctx, cat, original.UserID, stay, int(original.RoomsBooked), nil)
	if err != nil {
		return nil, err
	}

	c.notifier.BookingConfirmed(ctx, view)
	return view, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, code string, actor queries.Actor) (*queries.BookingView, error) {
	parsed, err := booking.ParseReservationCode(code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingNotFound)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByCode(ctx, parsed.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.UserID != actor.UserID && !actor.IsStaff() {
			return errs.ErrBookingNotFound
		}

		b, err := reconstructBooking(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		cancelled, err := b.Cancel()
		if err != nil {
			return errs.Mark(err, errs.ErrAlreadyCancelled)
		}
		bookingID = cancelled.ID()

		cat, err := tx.Reads().CategoryByID(ctx, snap.CategoryID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), cancelled.ID(), cancelled.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Lock the range in date order before releasing so concurrent
		// bookings of the same nights cannot deadlock against us.
		stay := cancelled.Stay()
		if _, err := tx.Ledger().LockRange(ctx, tx.DB(), snap.CategoryID, stay.CheckIn(), stay.CheckOut(), cat.TotalRooms); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Ledger().Release(ctx, tx.DB(), snap.CategoryID, stay.CheckIn(), stay.CheckOut(), int32(cancelled.RoomsBooked()), cat.TotalRooms); err != nil {
			if errors.Is(err, errs.ErrLedgerCorrupt) {
				return err
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return c.createNotificationJob(ctx, tx, cancelled.ID(), parsed.String(), "booking_cancelled")
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.notifier.BookingCancelled(ctx, view)
	return view, nil
}

// book runs the reservation pipeline inside one transaction: lock the
// ledger nights in date order, verify capacity, resolve conflicting unit
// assignments, allocate free units, then persist booking and decrements
// together so they commit or roll back as one.
func (c *bookingCommandsImpl) book(
	ctx context.Context,
	cat *category.Category,
	userID uuid.UUID,
	stay booking.Stay,
	roomsBooked int,
	promo *promotion.Promotion,
) (*queries.BookingView, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entries, err := tx.Ledger().LockRange(ctx, tx.DB(), cat.ID(), stay.CheckIn(), stay.CheckOut(), int32(cat.TotalRooms()))
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, entry := range entries {
			if entry.AvailableRooms < int32(roomsBooked) {
				return errs.Mark(&booking.NoVacancyError{Date: entry.Date}, errs.ErrNoVacancy)
			}
		}

		occupied, err := tx.Reads().OccupiedRooms(ctx, cat.ID(), stay.CheckIn(), stay.CheckOut())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		pool, err := c.loadRoomPool(ctx, tx, cat.ID())
		if err != nil {
			return err
		}

		occupiedSet := make(map[uuid.UUID]struct{}, len(occupied))
		for _, id := range occupied {
			occupiedSet[id] = struct{}{}
		}

		assigned, err := booking.AllocateRooms(pool, occupiedSet, roomsBooked)
		if err != nil {
			// Counter said yes but the unit pool disagrees; treat as full.
			return errs.Mark(err, errs.ErrNoVacancy)
		}

		b, quote, err := c.factory.CreateBooking(cat, userID, stay, roomsBooked, promo, assigned)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Ledger().Reserve(ctx, tx.DB(), cat.ID(), stay.CheckIn(), stay.CheckOut(), int32(roomsBooked)); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id

		if quote.LoyaltyPoints > 0 {
			if err := tx.Users().AddLoyaltyPoints(ctx, tx.DB(), userID, quote.LoyaltyPoints); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		return c.createNotificationJob(ctx, tx, id, b.Code().String(), "booking_confirmed")
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: full view from the read store
	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) loadCategory(ctx context.Context, categoryID uuid.UUID) (*category.Category, error) {
	snap, err := c.uow.CommandReads().CategoryByID(ctx, categoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return category.NewCategory(snap.ID, snap.Name, snap.PricePerNightCents, int(snap.TotalRooms), snap.Amenities, snap.ImageURLs)
}

// loadPromotion resolves a promotion code to a domain entity. Unknown,
// inactive and expired codes all yield nil: the stay books at full price.
func (c *bookingCommandsImpl) loadPromotion(ctx context.Context, code *string) (*promotion.Promotion, error) {
	if code == nil {
		return nil, nil
	}

	snap, err := c.uow.CommandReads().ActivePromotionByCode(ctx, *code, c.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("promotion code not applicable, booking at full price", "code", *code)
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var description string
	if snap.Description != nil {
		description = *snap.Description
	}
	return promotion.NewPromotion(snap.ID, snap.Code, int(snap.DiscountPercentage), snap.ExpiryDate, snap.IsActive, description)
}

func (c *bookingCommandsImpl) loadRoomPool(ctx context.Context, tx shared.Tx, categoryID uuid.UUID) ([]room.Room, error) {
	snaps, err := tx.Reads().RoomsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	pool := make([]room.Room, 0, len(snaps))
	for _, snap := range snaps {
		r, err := room.NewRoom(snap.ID, snap.Number, snap.CategoryID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		pool = append(pool, r)
	}
	return pool, nil
}

func (c *bookingCommandsImpl) createNotificationJob(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, code, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":       bookingID,
		"reservation_code": code,
		"type":             topic,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func reconstructBooking(snap *shared.BookingSnapshot) (*booking.Booking, error) {
	code, err := booking.ParseReservationCode(snap.Code)
	if err != nil {
		return nil, err
	}
	stay, err := booking.NewStay(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	original, err := booking.NewMoney(snap.OriginalPriceCents)
	if err != nil {
		return nil, err
	}
	discount, err := booking.NewMoney(snap.DiscountCents)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(snap.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		snap.ID, code, snap.UserID, snap.CategoryID,
		stay, int(snap.RoomsBooked), status,
		original, discount, total,
		snap.AssignedRoomIDs, snap.CreatedAt,
	), nil
}
