package http

import (
	"net/http"

	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
)

// getDashboardStats answers GET /api/dashboard/stats?filter=&reportType=.
// The report type defaults to revenue_vs_expense; an unknown one yields an
// empty chart.
func (h *Handler) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	filter, err := filterParam(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	reportType := models.ReportType(r.URL.Query().Get("reportType"))
	if reportType == "" {
		reportType = models.ReportRevenueVsExpense
	}

	stats, err := h.services.ReportService.GetDashboardStats(r.Context(), filter, reportType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
