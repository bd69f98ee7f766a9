package booking

import (
	"sort"

	"hotelcore/internal/domain/room"

	"github.com/google/uuid"
)

// AllocateRooms picks count concrete units from the category pool, skipping
// any unit in occupied. The pool is walked in a stable order (room number,
// then id) so the same inputs always yield the same assignment.
func AllocateRooms(pool []room.Room, occupied map[uuid.UUID]struct{}, count int) ([]room.Room, error) {
	if count < 1 {
		return nil, ErrInvalidRoomCount
	}

	candidates := make([]room.Room, 0, len(pool))
	for _, r := range pool {
		if _, taken := occupied[r.ID()]; taken {
			continue
		}
		candidates = append(candidates, r)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Number() != candidates[j].Number() {
			return candidates[i].Number() < candidates[j].Number()
		}
		return candidates[i].ID().String() < candidates[j].ID().String()
	})

	if len(candidates) < count {
		return nil, ErrNotEnoughRooms
	}
	return candidates[:count], nil
}
