package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads.

type CategorySnapshot struct {
	ID                 uuid.UUID
	Name               string
	PricePerNightCents int64
	TotalRooms         int32
	Amenities          string
	ImageURLs          []string
}

type RoomSnapshot struct {
	ID         uuid.UUID
	Number     string
	CategoryID uuid.UUID
}

type PromotionSnapshot struct {
	ID                 uuid.UUID
	Code               string
	DiscountPercentage int32
	ExpiryDate         time.Time
	IsActive           bool
	Description        *string
}

type BookingSnapshot struct {
	ID                 uuid.UUID
	Code               string
	UserID             uuid.UUID
	CategoryID         uuid.UUID
	CheckIn            time.Time
	CheckOut           time.Time
	RoomsBooked        int32
	Status             string
	OriginalPriceCents int64
	DiscountCents      int64
	TotalPriceCents    int64
	AssignedRoomIDs    []uuid.UUID
	CreatedAt          time.Time
}

type UserSnapshot struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	Role          string
	LoyaltyPoints int64
}
