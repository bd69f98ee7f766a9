package category

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("category name is required")
	ErrInvalidPrice     = errors.New("price per night must be positive")
	ErrInvalidUnitCount = errors.New("total rooms must be positive")
)

// Category is a class of interchangeable rooms sharing a nightly price and
// amenities. Its total unit count equals the number of member Room records;
// that invariant is established at seed time and read-only to the booking
// flow.
type Category struct {
	id                uuid.UUID
	name              string
	pricePerNightCents int64
	totalRooms        int
	amenities         string
	imageURLs         []string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCategory(id uuid.UUID, name string, pricePerNightCents int64, totalRooms int, amenities string, imageURLs []string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if pricePerNightCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if totalRooms <= 0 {
		return nil, ErrInvalidUnitCount
	}
	return &Category{
		id:                id,
		name:              name,
		pricePerNightCents: pricePerNightCents,
		totalRooms:        totalRooms,
		amenities:         amenities,
		imageURLs:         imageURLs,
	}, nil
}

func (c *Category) ID() uuid.UUID              { return c.id }
func (c *Category) Name() string               { return c.name }
func (c *Category) PricePerNightCents() int64  { return c.pricePerNightCents }
func (c *Category) TotalRooms() int            { return c.totalRooms }
func (c *Category) Amenities() string          { return c.amenities }
func (c *Category) ImageURLs() []string        { return c.imageURLs }
func (c *Category) CreatedAt() time.Time       { return c.createdAt }
func (c *Category) UpdatedAt() time.Time       { return c.updatedAt }
