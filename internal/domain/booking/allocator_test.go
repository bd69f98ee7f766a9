//go:build unit

package booking_test

import (
	"testing"

	"hotelcore/internal/domain/booking"
	"hotelcore/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoom(t *testing.T, number string) room.Room {
	t.Helper()
	r, err := room.NewRoom(uuid.New(), number, uuid.New())
	require.NoError(t, err)
	return r
}

func TestAllocateRooms(t *testing.T) {
	t.Run("picks lowest room numbers first", func(t *testing.T) {
		pool := []room.Room{
			makeRoom(t, "103"),
			makeRoom(t, "101"),
			makeRoom(t, "102"),
		}

		allocated, err := booking.AllocateRooms(pool, nil, 2)
		require.NoError(t, err)
		require.Len(t, allocated, 2)

		assert.Equal(t, "101", allocated[0].Number())
		assert.Equal(t, "102", allocated[1].Number())
	})

	t.Run("skips occupied units", func(t *testing.T) {
		r101 := makeRoom(t, "101")
		r102 := makeRoom(t, "102")
		r103 := makeRoom(t, "103")
		occupied := map[uuid.UUID]struct{}{r101.ID(): {}}

		allocated, err := booking.AllocateRooms([]room.Room{r101, r102, r103}, occupied, 2)
		require.NoError(t, err)
		require.Len(t, allocated, 2)

		assert.Equal(t, "102", allocated[0].Number())
		assert.Equal(t, "103", allocated[1].Number())
	})

	t.Run("same inputs yield the same assignment", func(t *testing.T) {
		pool := []room.Room{
			makeRoom(t, "205"),
			makeRoom(t, "201"),
			makeRoom(t, "203"),
			makeRoom(t, "202"),
		}

		first, err := booking.AllocateRooms(pool, nil, 3)
		require.NoError(t, err)
		second, err := booking.AllocateRooms(pool, nil, 3)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("duplicate numbers tie-break on id", func(t *testing.T) {
		a, err := room.NewRoom(uuid.MustParse("00000000-0000-0000-0000-00000000000a"), "301", uuid.New())
		require.NoError(t, err)
		b, err := room.NewRoom(uuid.MustParse("00000000-0000-0000-0000-00000000000b"), "301", uuid.New())
		require.NoError(t, err)

		allocated, err := booking.AllocateRooms([]room.Room{b, a}, nil, 2)
		require.NoError(t, err)

		assert.Equal(t, a.ID(), allocated[0].ID())
		assert.Equal(t, b.ID(), allocated[1].ID())
	})

	t.Run("not enough free units", func(t *testing.T) {
		r101 := makeRoom(t, "101")
		r102 := makeRoom(t, "102")
		occupied := map[uuid.UUID]struct{}{r102.ID(): {}}

		_, err := booking.AllocateRooms([]room.Room{r101, r102}, occupied, 2)
		assert.ErrorIs(t, err, booking.ErrNotEnoughRooms)
	})

	t.Run("empty pool", func(t *testing.T) {
		_, err := booking.AllocateRooms(nil, nil, 1)
		assert.ErrorIs(t, err, booking.ErrNotEnoughRooms)
	})

	t.Run("invalid count", func(t *testing.T) {
		_, err := booking.AllocateRooms([]room.Room{makeRoom(t, "101")}, nil, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidRoomCount)
	})
}
