package api

import (
	"net/http"

	reqdto "club-booking/internal/handler/dto/request"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/handler/httperr"
	"club-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Availability by time
// @Description Check every station of a type in a club against a time range
// @Tags availability
// @Produce json
// @Param clubId path string true "Club ID"
// @Param stationType query string true "Station type"
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 200 {object} resdto.AvailabilityByTimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/clubs/{clubId}/availability [get]
func (h *AvailabilityHandler) ByTime(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid club id", nil)
		return
	}
	var q reqdto.AvailabilityByTimeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	slot, err := q.ToDomain()
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	views, err := h.q.ByTime(c.Request.Context(), clubID, q.StationType, slot)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStationAvailability(slot.Start(), slot.End(), views))
}

// @Summary Start times
// @Description List start times at which all stations are free for the duration
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.StartTimesRequest true "Start time search"
// @Success 200 {object} resdto.StartTimesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability/start-times [post]
func (h *AvailabilityHandler) StartTimes(c *gin.Context) {
	var req reqdto.StartTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	duration, window, err := req.ToDomain()
	if err != nil {
		httperr.Handle(c, err)
		return
	}

	starts, err := h.q.StartTimes(c.Request.Context(), req.StationIDs, duration, window)
	if err != nil {
		httperr.Handle(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStartTimes(starts))
}
