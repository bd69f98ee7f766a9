package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stay is the half-open date interval [checkIn, checkOut) a booking occupies.
// Both bounds are normalized to UTC midnight; times of day are discarded.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Dates returns every night of the stay in ascending order.
func (s Stay) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (s Stay) Covers(date time.Time) bool {
	d := toDate(date)
	return !d.Before(s.checkIn) && d.Before(s.checkOut)
}

// Overlaps reports whether two half-open ranges share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return !(s.checkOut.Sub(other.checkIn) <= 0 || s.checkIn.Sub(other.checkOut) >= 0)
}

func (s Stay) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.cents - other.cents)
}

// ReservationCode is the globally unique, human-quotable booking identifier,
// e.g. "RES-3F2A91BC".
type ReservationCode struct {
	value string
}

func NewReservationCode() ReservationCode {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return ReservationCode{value: "RES-" + strings.ToUpper(raw[:8])}
}

func ParseReservationCode(s string) (ReservationCode, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if !strings.HasPrefix(s, "RES-") || len(s) != len("RES-")+8 {
		return ReservationCode{}, ErrInvalidReservationCode
	}
	return ReservationCode{value: s}, nil
}

func (c ReservationCode) String() string { return c.value }
func (c ReservationCode) IsZero() bool   { return c.value == "" }
