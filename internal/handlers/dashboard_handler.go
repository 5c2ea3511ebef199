package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"findash/internal/dto"
	apierrors "findash/internal/errors"
	"findash/internal/models"
	"findash/internal/repositories"
	"findash/internal/services"
)

// DashboardHandler serves the analytics endpoints: institution listing,
// derived metrics, period reports and anomaly findings
type DashboardHandler struct {
	catalog        repositories.CatalogRepositoryInterface
	metricsService services.MetricsServiceInterface
	anomalyService services.AnomalyServiceInterface
	reportService  services.ReportServiceInterface
	expenseFeed    *services.LatestExpenseFeed
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	catalog repositories.CatalogRepositoryInterface,
	metricsService services.MetricsServiceInterface,
	anomalyService services.AnomalyServiceInterface,
	reportService services.ReportServiceInterface,
	expenseFeed *services.LatestExpenseFeed,
) *DashboardHandler {
	return &DashboardHandler{
		catalog:        catalog,
		metricsService: metricsService,
		anomalyService: anomalyService,
		reportService:  reportService,
		expenseFeed:    expenseFeed,
	}
}

// ListInstitutions returns the institution catalogue in configured order
func (h *DashboardHandler) ListInstitutions(c echo.Context) error {
	institutions := h.catalog.ListInstitutions()

	summaries := make([]dto.InstitutionSummary, 0, len(institutions))
	for _, inst := range institutions {
		summaries = append(summaries, dto.InstitutionSummary{
			ID:    inst.ID,
			Name:  inst.Name,
			Color: inst.Color,
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summaries})
}

// GetMetrics returns derived metrics for one institution. The period
// query parameter selects the granularity and silently defaults to
// monthly for unknown values.
func (h *DashboardHandler) GetMetrics(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	granularity := models.ParseGranularity(c.QueryParam("period"))
	metrics := h.metricsService.CalculateMetrics(*snapshot, granularity)

	response := dto.MetricsResponse{
		Metrics:           metrics,
		EffectiveExpenses: h.expenseFeed.LatestOr(snapshot.ID, metrics.CurrentPeriod.Expenses),
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}

// GetReport returns the period summary report for one institution
func (h *DashboardHandler) GetReport(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	granularity := models.ParseGranularity(c.QueryParam("period"))
	report := h.reportService.GenerateReport(*snapshot, granularity)

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// GetAnomalies runs the anomaly rule set against one institution
func (h *DashboardHandler) GetAnomalies(c echo.Context) error {
	snapshot, err := h.snapshot(c)
	if err != nil {
		return h.institutionError(c, err)
	}

	anomalies := h.anomalyService.DetectAnomalies(*snapshot)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AnomaliesResponse{
			Anomalies: anomalies,
			Count:     len(anomalies),
		},
	})
}

func (h *DashboardHandler) snapshot(c echo.Context) (*models.AccountSnapshot, error) {
	return h.catalog.GetInstitution(c.Param("id"))
}

func (h *DashboardHandler) institutionError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrInstitutionNotFound) {
		return SendError(c, apierrors.InstitutionNotFound)
	}
	slog.Error("institution lookup failed", "institution_id", c.Param("id"), "error", err)
	return SendSystemError(c, err)
}
