package ginserver

import (
	"errors"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostbook/internal/app/commands"
	availabilityapp "hostbook/internal/app/handlers/availability"
	"hostbook/internal/app/policies"
	domainavailability "hostbook/internal/domain/availability"
	"hostbook/internal/domain/shared/daterange"
)

type BlockedHandler struct {
	Commands commands.Bus
	Clock    policies.Clock
}

type blockDatesRequest struct {
	PropertyID string    `json:"property_id" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     string    `json:"reason"`
}

func (h BlockedHandler) Create(c *gin.Context) {
	var req blockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := availabilityapp.BlockDatesCommand{
		CommandID:  uuid.NewString(),
		PropertyID: req.PropertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Now:        h.Clock.Now(),
	}
	result, err := commands.Dispatch[availabilityapp.BlockDatesCommand, *availabilityapp.BlockDatesResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		c.JSON(statusForBlockError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h BlockedHandler) Delete(c *gin.Context) {
	cmd := availabilityapp.ReleaseBlockCommand{BlockID: c.Param("id"), Now: h.Clock.Now()}
	result, err := commands.Dispatch[availabilityapp.ReleaseBlockCommand, *availabilityapp.ReleaseBlockResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		c.JSON(statusForBlockError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func statusForBlockError(err error) int {
	switch {
	case errors.Is(err, availabilityapp.ErrSpanConflict):
		return http.StatusConflict
	case errors.Is(err, daterange.ErrInvalidSpan):
		return http.StatusBadRequest
	case errors.Is(err, domainavailability.ErrBlockNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

var _ BlockedHTTP = BlockedHandler{}
