package handlers

import (
	"net/http"

	"investment-dashboard/internal/dto"
	apierrors "investment-dashboard/internal/errors"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type ChartHandler struct {
	chartService services.ChartServiceInterface
}

func NewChartHandler(chartService services.ChartServiceInterface) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// ListCharts returns the chart datasets the API can serve
//
// Method: GET /api/v1/charts
func (h *ChartHandler) ListCharts(c echo.Context) error {
	kinds := models.AllChartKinds()
	entries := make([]dto.ChartIndexEntry, len(kinds))
	for i, kind := range kinds {
		entries[i] = dto.ChartIndexEntry{Kind: kind, Path: "/api/v1/charts/" + string(kind)}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: entries,
	})
}

// GetChart returns the dataset behind one dashboard chart
//
// Method: GET /api/v1/charts/:kind
//
// Path parameters:
//   - kind: monthly-evolution, tier-concentration, category-product,
//     city-category or product-month
//
// Success Response: 200 OK
//   - kind: the requested chart
//   - points: Array of chart points, shape depends on kind
//
// Error Responses:
//   - 404: Unknown chart kind
//   - 422: Input tables cannot produce a report
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ChartHandler) GetChart(c echo.Context) error {
	var req dto.ChartRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid chart request"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, apierrors.ReportChartNotFound, apierrors.WithDetails(validationDetails(err)...))
	}

	kind := models.ChartKind(req.Kind)
	points, err := h.chartService.Chart(requestContext(c), kind)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ChartResponse{Kind: kind, Points: points},
	})
}
