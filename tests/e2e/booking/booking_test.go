//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"club-booking/internal/handler/dto/request"
	"club-booking/internal/handler/dto/response"
	"club-booking/internal/usecase/shared"
	"club-booking/tests/common/authtest"
	"club-booking/tests/common/dbtest"
	"club-booking/tests/common/httptest"
	"club-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/clubs/%s/availability"
	startTimesURL   = "/api/availability/start-times"
	quoteURL        = "/api/pricing/quote"
	intentsURL      = "/api/booking-intents"
	confirmURL      = "/api/booking-intents/%s/confirm"
	bookingURL      = "/api/bookings/%s"
	cancelURL       = "/api/bookings/%s/cancel"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// slotStart is a grid-aligned instant safely in the future.
func slotStart() time.Time {
	return time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)
}

func (s *BookingSuite) token(userID uuid.UUID) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), userID, "player")
}

func (s *BookingSuite) byTime(clubID uuid.UUID, start, end time.Time) response.AvailabilityByTimeResponse {
	t := s.T()
	q := url.Values{}
	q.Set("stationType", "padel")
	q.Set("start", start.Format(time.RFC3339))
	q.Set("end", end.Format(time.RFC3339))

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, clubID)+"?"+q.Encode(), nil, "")
	var body response.AvailabilityByTimeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
	return body
}

func availableByStation(res response.AvailabilityByTimeResponse) map[string]bool {
	out := make(map[string]bool, len(res.Stations))
	for _, st := range res.Stations {
		out[st.StationID] = st.Available
	}
	return out
}

func (s *BookingSuite) createIntent(token string, stationID uuid.UUID, start, end time.Time) response.IntentResponse {
	t := s.T()
	req := request.CreateIntentRequest{
		Stations:  []request.StationPlayersRequest{{StationID: stationID, Players: 2}},
		StartTime: start,
		EndTime:   end,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL, req, token)
	var body response.IntentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
	require.NotEmpty(t, body.ID)
	return body
}

// =============================================================================
// TestBookingLifecycle - hold, confirm, read and cancel against a real database
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: hold, confirm and cancel a court", func() {
		t := s.T()

		club := dbtest.SeedClub(t, s.DB, "12.50", 2)
		court1, court2 := club.StationIDs[0], club.StationIDs[1]
		userID := uuid.New()
		token := s.token(userID)

		start := slotStart()
		end := start.Add(2 * time.Hour)

		before := availableByStation(s.byTime(club.ClubID, start, end))
		require.Equal(t, map[string]bool{court1.String(): true, court2.String(): true}, before)

		intent := s.createIntent(token, court1, start, end)

		// a live hold blocks the court for everyone
		during := availableByStation(s.byTime(club.ClubID, start, end))
		require.Equal(t, map[string]bool{court1.String(): false, court2.String(): true}, during)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, intent.ID), nil, token)
		var confirmed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)
		require.Equal(t, intent.ID, confirmed.IntentID)
		require.Equal(t, userID.String(), confirmed.UserID)
		require.True(t, decimal.RequireFromString(confirmed.Total).Equal(decimal.NewFromInt(25)), confirmed.Total)
		require.Len(t, confirmed.Items, 1)
		require.Equal(t, "BASE", confirmed.Items[0].Subcategory)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, confirmed.ID), nil, token)
		var fetched response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fetched)
		if diff := cmp.Diff(confirmed.Stations, fetched.Stations); diff != "" {
			t.Errorf("stations mismatch (-confirmed +fetched):\n%s", diff)
		}
		require.True(t, decimal.RequireFromString(fetched.Total).Equal(decimal.NewFromInt(25)))

		require.Equal(t, 1, dbtest.CountPendingNotifications(t, s.DB, shared.NotificationKindBookingConfirmed))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, confirmed.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, confirmed.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already canceled")

		// canceled bookings release the court
		after := availableByStation(s.byTime(club.ClubID, start, end))
		require.True(t, after[court1.String()])
		require.Equal(t, 1, dbtest.CountPendingNotifications(t, s.DB, shared.NotificationKindBookingCanceled))
	})

	s.Run("Error case: overlapping hold is rejected with 409", func() {
		t := s.T()

		club := dbtest.SeedClub(t, s.DB, "10", 1)
		court := club.StationIDs[0]
		start := slotStart()

		s.createIntent(s.token(uuid.New()), court, start, start.Add(2*time.Hour))

		req := request.CreateIntentRequest{
			Stations:  []request.StationPlayersRequest{{StationID: court, Players: 4}},
			StartTime: start.Add(time.Hour),
			EndTime:   start.Add(3 * time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentsURL, req, s.token(uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		// back-to-back is fine under half-open intervals
		s.createIntent(s.token(uuid.New()), court, start.Add(2*time.Hour), start.Add(3*time.Hour))
	})

	s.Run("Error case: another user cannot confirm or read the booking", func() {
		t := s.T()

		club := dbtest.SeedClub(t, s.DB, "10", 1)
		owner := s.token(uuid.New())
		stranger := s.token(uuid.New())
		start := slotStart()

		intent := s.createIntent(owner, club.StationIDs[0], start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, intent.ID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, intent.ID), nil, owner)
		var confirmed response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &confirmed)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, intent.ID), nil, owner)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already confirmed")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, confirmed.ID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: booking endpoints require a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), "player")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestSearchAndQuote - start-time search and pricing quotes
// =============================================================================

func (s *BookingSuite) TestSearchAndQuote() {
	s.Run("Normal case: start times skip the held hour", func() {
		t := s.T()

		club := dbtest.SeedClub(t, s.DB, "10", 1)
		court := club.StationIDs[0]
		anchor := slotStart()

		s.createIntent(s.token(uuid.New()), court, anchor.Add(time.Hour), anchor.Add(2*time.Hour))

		req := request.StartTimesRequest{
			StationIDs:    []uuid.UUID{court},
			DurationHours: 1,
			Anchor:        anchor,
			SpanHours:     4,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, startTimesURL, req, "")
		var body response.StartTimesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		want := []string{
			anchor.Format(time.RFC3339),
			anchor.Add(2 * time.Hour).Format(time.RFC3339),
			anchor.Add(3 * time.Hour).Format(time.RFC3339),
		}
		if diff := cmp.Diff(want, body.StartTimes); diff != "" {
			t.Errorf("start times mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: quote rounds to half hours", func() {
		t := s.T()

		club := dbtest.SeedClub(t, s.DB, "10", 1)
		start := slotStart()
		req := request.QuoteRequest{
			Stations:  []request.StationPlayersRequest{{StationID: club.StationIDs[0], Players: 2}},
			StartTime: start,
			EndTime:   start.Add(90 * time.Minute),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, "")
		var body response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)

		require.Len(t, body.Items, 1)
		require.True(t, decimal.RequireFromString(body.Items[0].Quantity).Equal(decimal.RequireFromString("1.5")))
		require.True(t, decimal.RequireFromString(body.Total).Equal(decimal.NewFromInt(15)), body.Total)
	})

	s.Run("Error case: unknown station yields 404", func() {
		t := s.T()
		start := slotStart()
		req := request.QuoteRequest{
			Stations:  []request.StationPlayersRequest{{StationID: uuid.New(), Players: 2}},
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Station not found")
	})
}
