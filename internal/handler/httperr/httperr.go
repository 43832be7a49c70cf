package httperr

import (
	"net/http"

	"club-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var mappings = []mapping{
	{errs.ErrValidation, http.StatusBadRequest, ""},
	{errs.ErrForbidden, http.StatusForbidden, "Operation not permitted"},
	{errs.ErrStationNotFound, http.StatusNotFound, "Station not found"},
	{errs.ErrIntentNotFound, http.StatusNotFound, "Booking intent not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "Requested slot is not available"},
	{errs.ErrIntentAlreadyConfirmed, http.StatusConflict, "Booking intent already confirmed"},
	{errs.ErrIntentExpired, http.StatusConflict, "Booking intent expired"},
	{errs.ErrBookingCanceled, http.StatusConflict, "Booking already canceled"},
	{errs.ErrStorageUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	{errs.ErrUnresolvedRule, http.StatusInternalServerError, "Internal server error"},
}

// Handle maps a usecase error to its HTTP status and aborts.
// Validation errors expose the violated constraint; everything else a fixed message.
func Handle(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	for _, m := range mappings {
		if !errs.Is(err, m.target) {
			continue
		}
		if m.msg == "" {
			return m.status, err.Error()
		}
		return m.status, m.msg
	}
	return http.StatusInternalServerError, "Internal server error"
}
