package queries

import (
	"context"
	"time"

	"hotelcore/internal/infra"
	"hotelcore/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityDay struct {
	Date           time.Time `json:"date"`
	AvailableRooms int32     `json:"available_rooms"`
}

type AvailabilityView struct {
	CategoryID  uuid.UUID         `json:"category_id"`
	CheckIn     time.Time         `json:"check_in"`
	CheckOut    time.Time         `json:"check_out"`
	RoomsWanted int32             `json:"rooms_wanted"`
	Available   bool              `json:"available"`
	Days        []AvailabilityDay `json:"days"`
}

type AvailabilityQueries interface {
	// Check reports whether roomsWanted rooms of the category are free on
	// every night of [checkIn, checkOut). Read-only: never materializes
	// ledger rows.
	Check(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time, roomsWanted int32) (*AvailabilityView, error)
}

type AvailabilityViewRepo interface {
	FindDailyAvailability(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time) ([]AvailabilityDay, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityViewRepo
}

func NewAvailabilityQueries(repo AvailabilityViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, categoryID uuid.UUID, checkIn, checkOut time.Time, roomsWanted int32) (*AvailabilityView, error) {
	if !checkIn.Before(checkOut) {
		return nil, errs.ErrInvalidStay
	}
	if roomsWanted < 1 {
		return nil, errs.ErrInvalidRoomCount
	}

	days, err := q.repo.FindDailyAvailability(ctx, categoryID, checkIn, checkOut)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, err
	}

	available := true
	for _, d := range days {
		if d.AvailableRooms < roomsWanted {
			available = false
			break
		}
	}
	return &AvailabilityView{
		CategoryID:  categoryID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		RoomsWanted: roomsWanted,
		Available:   available,
		Days:        days,
	}, nil
}
