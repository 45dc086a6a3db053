package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"hostbook/internal/app/dto"
	propertyapp "hostbook/internal/app/handlers/property"
	"hostbook/internal/app/policies"
	"hostbook/internal/app/queries"
)

type PropertyHandler struct {
	Queries queries.Bus
	Clock   policies.Clock
}

func (h PropertyHandler) Overview(c *gin.Context) {
	now := h.Clock.Now()
	month, err := parseMonthParam(c.Query("month"), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := propertyapp.GetOverviewQuery{
		PropertyID: c.Param("id"),
		Month:      month,
		Now:        now,
	}
	result, err := queries.Ask[propertyapp.GetOverviewQuery, dto.PropertyOverview](c.Request.Context(), h.Queries, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ PropertyHTTP = PropertyHandler{}
