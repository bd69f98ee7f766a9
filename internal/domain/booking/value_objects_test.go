//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelcore/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStay(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		stay, err := booking.NewStay(date(2026, 9, 1), date(2026, 9, 4))
		require.NoError(t, err)

		assert.Equal(t, date(2026, 9, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 9, 4), stay.CheckOut())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("normalizes times of day to UTC midnight", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		checkIn := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 9, 3, 15, 0, 0, 0, jst)

		stay, err := booking.NewStay(checkIn, checkOut)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 9, 1), stay.CheckIn())
		assert.Equal(t, date(2026, 9, 3), stay.CheckOut())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
			errIs    error
		}{
			{name: "one night stay", checkIn: date(2026, 9, 1), checkOut: date(2026, 9, 2)},
			{name: "check-out equals check-in", checkIn: date(2026, 9, 1), checkOut: date(2026, 9, 1), errIs: booking.ErrInvalidStay},
			{name: "check-out before check-in", checkIn: date(2026, 9, 4), checkOut: date(2026, 9, 1), errIs: booking.ErrInvalidStay},
			{name: "same day different hours collapses to same date", checkIn: date(2026, 9, 1), checkOut: time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), errIs: booking.ErrInvalidStay},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewStay(tc.checkIn, tc.checkOut)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("dates enumerates every night in order", func(t *testing.T) {
		stay, err := booking.NewStay(date(2026, 9, 1), date(2026, 9, 4))
		require.NoError(t, err)

		dates := stay.Dates()
		require.Len(t, dates, 3)
		assert.Equal(t, date(2026, 9, 1), dates[0])
		assert.Equal(t, date(2026, 9, 2), dates[1])
		assert.Equal(t, date(2026, 9, 3), dates[2])
	})

	t.Run("covers nights but not the check-out date", func(t *testing.T) {
		stay, err := booking.NewStay(date(2026, 9, 1), date(2026, 9, 4))
		require.NoError(t, err)

		assert.True(t, stay.Covers(date(2026, 9, 1)))
		assert.True(t, stay.Covers(date(2026, 9, 3)))
		assert.False(t, stay.Covers(date(2026, 9, 4)))
		assert.False(t, stay.Covers(date(2026, 8, 31)))
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		base, err := booking.NewStay(date(2026, 9, 1), date(2026, 9, 4))
		require.NoError(t, err)

		testCases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
			overlaps bool
		}{
			{name: "identical range", checkIn: date(2026, 9, 1), checkOut: date(2026, 9, 4), overlaps: true},
			{name: "contained range", checkIn: date(2026, 9, 2), checkOut: date(2026, 9, 3), overlaps: true},
			{name: "overlapping tail", checkIn: date(2026, 9, 3), checkOut: date(2026, 9, 6), overlaps: true},
			{name: "back to back after", checkIn: date(2026, 9, 4), checkOut: date(2026, 9, 6), overlaps: false},
			{name: "back to back before", checkIn: date(2026, 8, 29), checkOut: date(2026, 9, 1), overlaps: false},
			{name: "disjoint", checkIn: date(2026, 9, 10), checkOut: date(2026, 9, 12), overlaps: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				other, err := booking.NewStay(tc.checkIn, tc.checkOut)
				require.NoError(t, err)
				assert.Equal(t, tc.overlaps, base.Overlaps(other))
				assert.Equal(t, tc.overlaps, other.Overlaps(base))
			})
		}
	})
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("subtraction cannot go negative", func(t *testing.T) {
		small, err := booking.NewMoney(100)
		require.NoError(t, err)
		large, err := booking.NewMoney(500)
		require.NoError(t, err)

		diff, err := large.Sub(small)
		require.NoError(t, err)
		assert.Equal(t, int64(400), diff.Cents())

		_, err = small.Sub(large)
		assert.Error(t, err)
	})
}

func TestReservationCode(t *testing.T) {
	t.Run("generated codes have the RES- prefix and are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			code := booking.NewReservationCode()
			assert.Regexp(t, `^RES-[0-9A-F]{8}$`, code.String())
			seen[code.String()] = struct{}{}
		}
		assert.Len(t, seen, 100)
	})

	t.Run("parse", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
			want  string
			errIs error
		}{
			{name: "canonical form", input: "RES-3F2A91BC", want: "RES-3F2A91BC"},
			{name: "lowercase is normalized", input: "res-3f2a91bc", want: "RES-3F2A91BC"},
			{name: "surrounding whitespace is trimmed", input: "  RES-3F2A91BC  ", want: "RES-3F2A91BC"},
			{name: "missing prefix", input: "3F2A91BC", errIs: booking.ErrInvalidReservationCode},
			{name: "too short", input: "RES-3F2A", errIs: booking.ErrInvalidReservationCode},
			{name: "too long", input: "RES-3F2A91BC00", errIs: booking.ErrInvalidReservationCode},
			{name: "empty", input: "", errIs: booking.ErrInvalidReservationCode},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				code, err := booking.ParseReservationCode(tc.input)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, code.String())
			})
		}
	})
}
