package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the guarded summary view.
type DashboardHandler struct {
	facade ReportFacade
}

// NewDashboardHandler creates DashboardHandler instance.
func NewDashboardHandler(facade ReportFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Summary handles GET /dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.facade.Summary(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	chartLabels := make([]string, 0, len(summary.TopStores))
	chartValues := make([]int64, 0, len(summary.TopStores))
	for _, s := range summary.TopStores {
		chartLabels = append(chartLabels, s.StoreName)
		chartValues = append(chartValues, s.Orders)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"mini_labels":  []string{"Customers", "Orders", "Products", "Stores"},
		"mini_values":  []int64{summary.Customers, summary.Orders, summary.Products, summary.Stores},
		"chart_labels": chartLabels,
		"chart_values": chartValues,
		"user_email":   CurrentUserEmail(c),
	})
}
