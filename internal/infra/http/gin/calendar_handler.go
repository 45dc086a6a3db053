package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"hostbook/internal/app/dto"
	availabilityapp "hostbook/internal/app/handlers/availability"
	"hostbook/internal/app/policies"
	"hostbook/internal/app/queries"
	"hostbook/internal/domain/calendar"
)

type CalendarHandler struct {
	Queries queries.Bus
	Clock   policies.Clock
}

// Month serves the all-properties union view.
func (h CalendarHandler) Month(c *gin.Context) {
	h.serve(c, "")
}

// PropertyMonth serves the calendar of a single property.
func (h CalendarHandler) PropertyMonth(c *gin.Context) {
	h.serve(c, c.Param("id"))
}

func (h CalendarHandler) serve(c *gin.Context, propertyID string) {
	now := h.Clock.Now()
	month, err := parseMonthParam(c.Query("month"), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := queries.Ask[availabilityapp.GetMonthQuery, dto.MonthCalendar](c.Request.Context(), h.Queries, availabilityapp.GetMonthQuery{
		PropertyID: propertyID,
		Month:      month,
		Today:      now,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseMonthParam accepts "YYYY-MM" and defaults to the month of now.
func parseMonthParam(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return calendar.MonthStart(now), nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.MonthStart(t), nil
}

var _ CalendarHTTP = CalendarHandler{}
