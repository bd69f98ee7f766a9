package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidNumber = errors.New("room number is required")

// Room is one physical, individually assignable unit. Membership in a
// category is an immutable fact; the booking flow never creates or destroys
// rooms.
type Room struct {
	id         uuid.UUID
	number     string
	categoryID uuid.UUID
}

func NewRoom(id uuid.UUID, number string, categoryID uuid.UUID) (Room, error) {
	if strings.TrimSpace(number) == "" {
		return Room{}, ErrInvalidNumber
	}
	return Room{id: id, number: number, categoryID: categoryID}, nil
}

func (r Room) ID() uuid.UUID         { return r.id }
func (r Room) Number() string        { return r.number }
func (r Room) CategoryID() uuid.UUID { return r.categoryID }
