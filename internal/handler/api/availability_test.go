//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"club-booking/internal/domain/schedule"
	"club-booking/internal/handler/api"
	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/queries"
	"club-booking/tests/common/builder"
	"club-booking/tests/common/httptest"
	"club-booking/tests/common/testutil"
	queriesmock "club-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/clubs/:clubId/availability", s.handler.ByTime)
	s.router.POST("/availability/start-times", s.handler.StartTimes)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func byTimeURL(clubID string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/clubs/" + clubID + "/availability?" + q.Encode()
}

// ================================================================================
// TestByTime
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestByTime() {
	clubID := uuid.New()
	validParams := func() map[string]string {
		return map[string]string{
			"stationType": "padel",
			"start":       builder.At(2).Format(time.RFC3339),
			"end":         builder.At(3).Format(time.RFC3339),
		}
	}

	s.Run("success: returns one entry per station", func() {
		free, busy := uuid.New(), uuid.New()
		s.mockQueries.EXPECT().
			ByTime(gomock.Any(), clubID, "padel", gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, _ string, slot schedule.TimeSlot) ([]queries.StationAvailabilityView, error) {
				s.True(slot.Start().Equal(builder.At(2)))
				s.True(slot.End().Equal(builder.At(3)))
				return []queries.StationAvailabilityView{
					{StationID: free, Name: "Court 1", Available: true},
					{StationID: busy, Name: "Court 2", Available: false},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, byTimeURL(clubID.String(), validParams()), nil, "")

		var body resdto.AvailabilityByTimeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-03-14T10:00:00Z", body.Start)
		s.Equal("2026-03-14T11:00:00Z", body.End)
		s.Require().Len(body.Stations, 2)
		s.Equal(free.String(), body.Stations[0].StationID)
		s.True(body.Stations[0].Available)
		s.False(body.Stations[1].Available)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		cases := []struct {
			name         string
			clubID       string
			mutate       func(p map[string]string)
			expectInBody string
		}{
			{name: "malformed club id", clubID: "club-1", mutate: func(map[string]string) {}},
			{name: "missing stationType", clubID: clubID.String(), mutate: func(p map[string]string) { delete(p, "stationType") }},
			{name: "missing start", clubID: clubID.String(), mutate: func(p map[string]string) { delete(p, "start") }},
			{name: "malformed end", clubID: clubID.String(), mutate: func(p map[string]string) { p["end"] = "noon" }},
			{name: "end before start", clubID: clubID.String(), mutate: func(p map[string]string) {
				p["end"] = builder.At(1).Format(time.RFC3339)
			}, expectInBody: "before"},
			{name: "start off the tick grid", clubID: clubID.String(), mutate: func(p map[string]string) {
				p["start"] = builder.At(2).Add(17 * time.Minute).Format(time.RFC3339)
			}, expectInBody: "aligned"},
			{name: "end off the tick grid", clubID: clubID.String(), mutate: func(p map[string]string) {
				p["end"] = builder.At(3.25).Format(time.RFC3339)
			}, expectInBody: "aligned"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				params := validParams()
				tc.mutate(params)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, byTimeURL(tc.clubID, params), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectInBody)
			})
		}
	})

	s.Run("error: 503 Service Unavailable when storage is down", func() {
		s.mockQueries.EXPECT().ByTime(gomock.Any(), clubID, "padel", gomock.Any()).
			Return(nil, errs.Mark(errs.New("pool closed"), errs.ErrStorageUnavailable)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, byTimeURL(clubID.String(), validParams()), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestStartTimes
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestStartTimes() {
	url := "/availability/start-times"
	stationID := uuid.New()
	reqBody := reqdto.StartTimesRequest{
		StationIDs:    []uuid.UUID{stationID},
		DurationHours: 1,
		Anchor:        builder.At(0),
		SpanHours:     6,
	}

	bound := []testCaseBooking{
		{name: "durationHours boundary OK (24)", mutate: testutil.Field("durationHours", 24), expectCode: http.StatusOK},
		{name: "durationHours boundary invalid (0)", mutate: testutil.Field("durationHours", 0), expectCode: http.StatusBadRequest},
		{name: "durationHours boundary invalid (25)", mutate: testutil.Field("durationHours", 25), expectCode: http.StatusBadRequest},
		{name: "spanHours boundary OK (168)", mutate: testutil.Field("spanHours", 168), expectCode: http.StatusOK},
		{name: "spanHours boundary invalid (169)", mutate: testutil.Field("spanHours", 169), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBooking{
		{name: "missing field: stationIds (required)", mutate: testutil.Field("stationIds", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: anchor (required)", mutate: testutil.Field("anchor", nil), expectCode: http.StatusBadRequest},
		{name: "empty stationIds", mutate: testutil.Field("stationIds", []any{}), expectCode: http.StatusBadRequest},
	}

	domain := []testCaseBooking{
		{name: "anchor off the tick grid", mutate: testutil.Field("anchor", builder.At(0.25).Format(time.RFC3339)), expectCode: http.StatusBadRequest, expectInBody: "aligned"},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, domain}

	s.Run("success: returns feasible start times", func() {
		s.mockQueries.EXPECT().
			StartTimes(gomock.Any(), []uuid.UUID{stationID}, time.Hour, gomock.Any()).
			DoAndReturn(func(_ any, _ []uuid.UUID, _ time.Duration, w schedule.SearchWindow) ([]time.Time, error) {
				s.True(w.Anchor().Equal(builder.At(0)))
				s.Equal(6, w.SpanHours())
				return []time.Time{builder.At(0), builder.At(2)}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.StartTimesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"2026-03-14T08:00:00Z", "2026-03-14T10:00:00Z"}, body.StartTimes)
	})

	s.Run("validation", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusOK {
						s.mockQueries.EXPECT().StartTimes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
							Return([]time.Time{}, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
					}
				})
			}
		}
	})

	s.Run("error: 404 Not Found for unknown station", func() {
		s.mockQueries.EXPECT().StartTimes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrStationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Station not found")
	})
}
