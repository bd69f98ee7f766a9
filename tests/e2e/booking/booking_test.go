//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hotelcore/internal/domain/user"
	"hotelcore/internal/handler/dto/request"
	"hotelcore/internal/handler/dto/response"
	"hotelcore/tests/common/authtest"
	"hotelcore/tests/common/dbtest"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/rooms/%s/availability?check_in=%s&check_out=%s&rooms=%d"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// Stays are booked a month out so the promotion expiry checks against the
// real clock behave predictably.
func futureDate(daysAhead int) time.Time {
	now := time.Now().UTC()
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, daysAhead)
}

func (s *BookingSuite) createBooking(t *testing.T, token string, categoryID uuid.UUID, checkIn, checkOut time.Time, rooms int, promo *string) (*response.BookingResponse, int) {
	t.Helper()

	reqBody := request.CreateBookingRequest{
		CategoryID:    categoryID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomsBooked:   rooms,
		PromotionCode: promo,
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}

	var body response.BookingResponse
	httptest.DecodeResponseBody(t, w.Body, &body)
	return &body, w.Code
}

func (s *BookingSuite) checkAvailability(t *testing.T, categoryID uuid.UUID, checkIn, checkOut time.Time, rooms int) *response.AvailabilityResponse {
	t.Helper()

	url := fmt.Sprintf(availabilityURL, categoryID,
		checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly), rooms)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.AvailabilityResponse
	httptest.DecodeResponseBody(t, w.Body, &body)
	return &body
}

// The ledger is a cache over the confirmed-booking set: for every
// materialized (category, date) row, free units plus confirmed demand must
// equal the category capacity.
func (s *BookingSuite) assertCapacityInvariant(t *testing.T, categoryID uuid.UUID) {
	t.Helper()

	var violations int
	err := s.DB.QueryRow(context.Background(), `
		SELECT COUNT(*)
		FROM room_availability ra
		JOIN room_categories c ON c.id = ra.category_id
		WHERE ra.category_id = $1
		  AND ra.available_rooms + COALESCE((
			SELECT SUM(b.rooms_booked)
			FROM bookings b
			WHERE b.category_id = ra.category_id
			  AND b.status = 'confirmed'
			  AND b.check_in <= ra.date AND b.check_out > ra.date
		  ), 0) <> c.total_rooms`, categoryID).Scan(&violations)
	require.NoError(t, err)
	require.Zero(t, violations, "ledger must reconcile with confirmed bookings")
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Guest books rooms and gets concrete room assignments", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Deluxe", 2500, 3)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		checkIn := futureDate(30)
		checkOut := futureDate(33)

		body, code := s.createBooking(t, token, categoryID, checkIn, checkOut, 2, nil)
		require.Equal(t, http.StatusCreated, code)

		// 3 nights x 2 rooms x 2500 cents
		require.Equal(t, int64(15000), body.OriginalPriceCents)
		require.Equal(t, int64(0), body.DiscountCents)
		require.Equal(t, int64(15000), body.TotalPriceCents)
		require.Equal(t, "confirmed", body.Status)
		require.Regexp(t, `^RES-[0-9A-F]{8}$`, body.ReservationCode)
		require.Len(t, body.RoomNumbers, 2)

		// One unit left on every night of the stay
		avail := s.checkAvailability(t, categoryID, checkIn, checkOut, 1)
		require.True(t, avail.Available)
		for _, day := range avail.Days {
			require.Equal(t, int32(1), day.AvailableRooms)
		}

		// 10% of the total accrues as loyalty points
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var me map[string]any
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.EqualValues(t, 1500, me["loyalty_points"])
	})

	s.Run("Normal case: Active promotion discounts the stay", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Deluxe", 2500, 3)
		dbtest.CreateTestPromotion(t, s.DB, "SUMMER10", 10, futureDate(365), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		promo := "SUMMER10"
		body, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(33), 2, &promo)
		require.Equal(t, http.StatusCreated, code)

		require.Equal(t, int64(15000), body.OriginalPriceCents)
		require.Equal(t, int64(1500), body.DiscountCents)
		require.Equal(t, int64(13500), body.TotalPriceCents)
	})

	s.Run("Normal case: Expired promotion is ignored, booking still succeeds", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Deluxe", 2500, 3)
		dbtest.CreateTestPromotion(t, s.DB, "OLDCODE", 50, futureDate(-1), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		promo := "OLDCODE"
		body, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(32), 1, &promo)
		require.Equal(t, http.StatusCreated, code)

		require.Equal(t, int64(0), body.DiscountCents)
		require.Equal(t, int64(5000), body.TotalPriceCents)
	})

	s.Run("Normal case: Availability re-read without mutation is identical", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Deluxe", 2500, 3)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		_, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(32), 2, nil)
		require.Equal(t, http.StatusCreated, code)

		first := s.checkAvailability(t, categoryID, futureDate(30), futureDate(32), 2)
		second := s.checkAvailability(t, categoryID, futureDate(30), futureDate(32), 2)
		require.Equal(t, first, second)
	})

	s.Run("Error case: Booking more rooms than the category has", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Single", 2000, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		_, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(31), 3, nil)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: Unknown category yields 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		_, code := s.createBooking(t, token, uuid.New(), futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Error case: Unauthenticated booking yields 401", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Single", 2000, 2)

		reqBody := request.CreateBookingRequest{
			CategoryID:  categoryID,
			CheckIn:     futureDate(30),
			CheckOut:    futureDate(31),
			RoomsBooked: 1,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) TestBookingAtomicity() {
	s.Run("Error case: A stay spanning one full night books nothing at all", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Twin", 3000, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		// Fill the middle night completely
		_, code := s.createBooking(t, token, categoryID, futureDate(31), futureDate(32), 2, nil)
		require.Equal(t, http.StatusCreated, code)

		// This stay covers the full night in its middle: it must fail as a
		// whole even though the first and last nights are free
		_, code = s.createBooking(t, token, categoryID, futureDate(30), futureDate(33), 1, nil)
		require.Equal(t, http.StatusConflict, code)

		// The surrounding nights kept their full capacity
		avail := s.checkAvailability(t, categoryID, futureDate(30), futureDate(33), 1)
		require.False(t, avail.Available)
		require.Len(t, avail.Days, 3)
		require.Equal(t, int32(2), avail.Days[0].AvailableRooms)
		require.Equal(t, int32(0), avail.Days[1].AvailableRooms)
		require.Equal(t, int32(2), avail.Days[2].AvailableRooms)

		s.assertCapacityInvariant(t, categoryID)
	})
}

func (s *BookingSuite) TestConcurrentBookings() {
	s.Run("Normal case: Concurrent requests never oversell the category", func() {
		t := s.T()

		const (
			capacity   = 3
			contenders = 6
		)

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Suite", 50000, capacity)

		tokens := make([]string, contenders)
		for i := range tokens {
			email := fmt.Sprintf("guest%d@example.com", i)
			tokens[i] = authtest.CreateAndLogin(t, s.DB, s.Router, email, string(user.RoleGuest))
		}

		checkIn := futureDate(30)
		checkOut := futureDate(32)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < contenders; i++ {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				_, code := s.createBooking(t, token, categoryID, checkIn, checkOut, 1, nil)
				mu.Lock()
				defer mu.Unlock()
				switch code {
				case http.StatusCreated:
					succeeded++
				case http.StatusConflict:
					conflicts++
				}
			}(tokens[i])
		}
		wg.Wait()

		require.Equal(t, capacity, succeeded, "exactly capacity bookings must win")
		require.Equal(t, contenders-capacity, conflicts, "the rest must see a vacancy conflict")

		// Every winner holds a different physical room on the contested nights
		var distinctRooms int
		err := s.DB.QueryRow(context.Background(), `
			SELECT COUNT(DISTINCT br.room_id)
			FROM booking_rooms br
			JOIN bookings b ON b.id = br.booking_id
			WHERE b.status = 'confirmed'`).Scan(&distinctRooms)
		require.NoError(t, err)
		require.Equal(t, capacity, distinctRooms)

		avail := s.checkAvailability(t, categoryID, checkIn, checkOut, 1)
		require.False(t, avail.Available)
		for _, day := range avail.Days {
			require.Equal(t, int32(0), day.AvailableRooms)
		}

		s.assertCapacityInvariant(t, categoryID)
	})
}

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: Cancelling releases every night of the stay", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Double", 4000, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		body, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(33), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		avail := s.checkAvailability(t, categoryID, futureDate(30), futureDate(33), 1)
		require.False(t, avail.Available)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/code/"+body.ReservationCode, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)

		avail = s.checkAvailability(t, categoryID, futureDate(30), futureDate(33), 1)
		require.True(t, avail.Available)

		// The freed nights can be booked again
		_, code = s.createBooking(t, token, categoryID, futureDate(30), futureDate(33), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		s.assertCapacityInvariant(t, categoryID)
	})

	s.Run("Error case: Cancelling twice yields 409", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Double", 4000, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		body, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		url := bookingsURL + "/code/" + body.ReservationCode
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Another guest cannot cancel, and cannot tell the booking exists", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Double", 4000, 1)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleGuest))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		body, code := s.createBooking(t, ownerToken, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/code/"+body.ReservationCode, nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Normal case: Reception staff can cancel any booking", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Double", 4000, 1)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "desk@example.com", string(user.RoleReception))

		body, code := s.createBooking(t, guestToken, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/code/"+body.ReservationCode, nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) rebook(t *testing.T, token, code string, checkIn, checkOut time.Time) (*response.BookingResponse, int) {
	t.Helper()

	reqBody := request.RebookRequest{CheckIn: checkIn, CheckOut: checkOut}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		bookingsURL+"/code/"+code+"/rebook", reqBody, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}

	var body response.BookingResponse
	httptest.DecodeResponseBody(t, w.Body, &body)
	return &body, w.Code
}

func (s *BookingSuite) TestRebook() {
	s.Run("Normal case: Rebooking books new dates and keeps the original confirmed", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Twin", 3000, 2)
		dbtest.CreateTestPromotion(t, s.DB, "SUMMER10", 10, futureDate(365), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		promo := "SUMMER10"
		original, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(32), 1, &promo)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, int64(600), original.DiscountCents)

		rebooked, rc := s.rebook(t, token, original.ReservationCode, futureDate(40), futureDate(42))
		require.Equal(t, http.StatusCreated, rc)

		require.NotEqual(t, original.ReservationCode, rebooked.ReservationCode)
		require.Equal(t, original.CategoryID, rebooked.CategoryID)
		require.Equal(t, original.RoomsBooked, rebooked.RoomsBooked)
		require.True(t, rebooked.CheckIn.Equal(futureDate(40)))
		require.True(t, rebooked.CheckOut.Equal(futureDate(42)))
		// The new stay is priced without the original promotion
		require.Equal(t, int64(0), rebooked.DiscountCents)
		require.Equal(t, int64(6000), rebooked.TotalPriceCents)

		// The original keeps its own stay and inventory
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/code/"+original.ReservationCode, nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var originalNow response.BookingResponse
		httptest.DecodeResponseBody(t, gw.Body, &originalNow)
		require.Equal(t, "confirmed", originalNow.Status)

		avail := s.checkAvailability(t, categoryID, futureDate(40), futureDate(42), 1)
		require.True(t, avail.Available)
		for _, day := range avail.Days {
			require.Equal(t, int32(1), day.AvailableRooms)
		}
	})

	s.Run("Error case: Rebooking onto full dates fails, original untouched", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Single", 2000, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		original, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		// The original still occupies the only unit on these nights
		_, rc := s.rebook(t, token, original.ReservationCode, futureDate(30), futureDate(31))
		require.Equal(t, http.StatusConflict, rc)

		// And the failed attempt must not have touched the ledger
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/code/"+original.ReservationCode, nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
	})

	s.Run("Error case: Inverted new dates yield 400", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Single", 2000, 1)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		original, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		_, rc := s.rebook(t, token, original.ReservationCode, futureDate(42), futureDate(40))
		require.Equal(t, http.StatusBadRequest, rc)
	})

	s.Run("Error case: Unknown reservation code yields 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		_, rc := s.rebook(t, token, "RES-00000000", futureDate(40), futureDate(42))
		require.Equal(t, http.StatusNotFound, rc)
	})
}

func (s *BookingSuite) TestListAndGet() {
	s.Run("Normal case: Guests see their own bookings, newest first", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Twin", 3000, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		first, code := s.createBooking(t, token, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)
		second, code := s.createBooking(t, token, categoryID, futureDate(40), futureDate(42), 2, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*response.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)
		require.Equal(t, second.ReservationCode, items[0].ReservationCode)
		require.Equal(t, first.ReservationCode, items[1].ReservationCode)
	})

	s.Run("Error case: A guest cannot fetch someone else's booking by id", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Twin", 3000, 4)
		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleGuest))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleGuest))

		body, code := s.createBooking(t, ownerToken, categoryID, futureDate(30), futureDate(31), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+body.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestDeskAccess() {
	s.Run("Error case: Guests cannot reach the desk endpoints", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/desk/stats", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: Reception sees stats covering all bookings", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Twin", 3000, 4)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", string(user.RoleGuest))
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "desk@example.com", string(user.RoleReception))

		_, code := s.createBooking(t, guestToken, categoryID, futureDate(30), futureDate(32), 1, nil)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/desk/stats", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.DeskStatsResponse
		httptest.DecodeResponseBody(t, w.Body, &stats)
		require.EqualValues(t, 1, stats.TotalBookings)
		require.EqualValues(t, 1, stats.ConfirmedBookings)
		require.EqualValues(t, 6000, stats.TotalRevenueCents)
	})
}
