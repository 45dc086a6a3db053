package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostbook/internal/app/commands"
	"hostbook/internal/app/dto"
	bookingapp "hostbook/internal/app/handlers/booking"
	"hostbook/internal/app/policies"
	"hostbook/internal/app/queries"
	domainbooking "hostbook/internal/domain/booking"
	"hostbook/internal/domain/bucketing"
	"hostbook/internal/domain/shared/daterange"
)

type BookingHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
	Clock    policies.Clock
}

type createBookingRequest struct {
	PropertyID  string    `json:"property_id" binding:"required"`
	GuestName   string    `json:"guest_name" binding:"required"`
	CheckIn     time.Time `json:"check_in" binding:"required"`
	CheckOut    time.Time `json:"check_out" binding:"required"`
	Platform    string    `json:"platform"`
	AmountMinor int64     `json:"amount_minor"`
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookingapp.CreateBookingCommand{
		CommandID:   uuid.NewString(),
		PropertyID:  req.PropertyID,
		GuestName:   req.GuestName,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Platform:    req.Platform,
		AmountMinor: req.AmountMinor,
		Now:         h.Clock.Now(),
	}
	result, err := commands.Dispatch[bookingapp.CreateBookingCommand, *bookingapp.CreateBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		c.JSON(statusForWriteError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h BookingHandler) Delete(c *gin.Context) {
	cmd := bookingapp.RemoveBookingCommand{BookingID: c.Param("id"), Now: h.Clock.Now()}
	result, err := commands.Dispatch[bookingapp.RemoveBookingCommand, *bookingapp.RemoveBookingResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		c.JSON(statusForWriteError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h BookingHandler) List(c *gin.Context) {
	q := bookingapp.ListBucketsQuery{
		PropertyID: c.Query("property"),
		Filter:     parseFilter(c.Query("filter")),
		Now:        h.Clock.Now(),
	}
	result, err := queries.Ask[bookingapp.ListBucketsQuery, dto.BookingBuckets](c.Request.Context(), h.Queries, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseFilter(raw string) bucketing.Filter {
	switch raw {
	case "current":
		return bucketing.FilterCurrent
	case "past":
		return bucketing.FilterPast
	}
	return bucketing.FilterUpcoming
}

func statusForWriteError(err error) int {
	switch {
	case errors.Is(err, bookingapp.ErrRangeConflict):
		return http.StatusConflict
	case errors.Is(err, daterange.ErrInvalidRange), errors.Is(err, daterange.ErrInvalidSpan),
		errors.Is(err, domainbooking.ErrGuestNameRequired), errors.Is(err, domainbooking.ErrUnknownPlatform):
		return http.StatusBadRequest
	case errors.Is(err, domainbooking.ErrBookingNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

var _ BookingHTTP = BookingHandler{}
