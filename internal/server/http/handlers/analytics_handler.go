package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultCityLimit caps the analytics grouping unless the caller asks
// otherwise; limit=0 requests every city.
const defaultCityLimit = 5

// AnalyticsHandler renders the customers-by-city view.
type AnalyticsHandler struct {
	facade ReportFacade
}

// NewAnalyticsHandler creates AnalyticsHandler instance.
func NewAnalyticsHandler(facade ReportFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// ByCity handles GET /analytics.
func (h *AnalyticsHandler) ByCity(c *gin.Context) {
	limit := queryInt(c, "limit", defaultCityLimit)

	cities, err := h.facade.CustomersByCity(c.Request.Context(), limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	labels := make([]string, 0, len(cities))
	values := make([]int64, 0, len(cities))
	for _, row := range cities {
		labels = append(labels, row.City)
		values = append(values, row.Customers)
	}

	c.HTML(http.StatusOK, "analytics.html", gin.H{
		"labels": labels,
		"values": values,
		"limit":  limit,
	})
}
