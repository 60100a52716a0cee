package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"investment-dashboard/internal/dto"
	apierrors "investment-dashboard/internal/errors"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ReportHandler struct {
	reportService services.ReportServiceInterface
}

func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport computes the three summary tables from the current dataset
//
// Method: GET /api/v1/reports
//
// Success Response: 200 OK
//   - id: UUID of this report run
//   - generated_at: ISO 8601 timestamp
//   - date_system: serial date rule used to decode investment dates
//   - investment_count: Integer number of investments summarized
//   - grand_total: Decimal sum of every investment
//   - monthly: Array of month summaries, ascending by month
//   - products: Array of product totals, descending by total
//   - clients: Array of client totals with tier, descending by total
//
// Error Responses:
//   - 422: Input tables malformed or reference an unknown client/product
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.reportService.GenerateReport(requestContext(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
	})
}

// GetMonthlySummary returns total, mean and count of investments per month
//
// Method: GET /api/v1/reports/monthly
//
// Success Response: 200 OK
//   - data: Array of {month, total_amount, mean_amount, transaction_count}
//   - meta: report id, generation time, date system and investment count
//
// Error Responses:
//   - 422: Input tables cannot produce a report
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ReportHandler) GetMonthlySummary(c echo.Context) error {
	report, err := h.reportService.GenerateReport(requestContext(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report.Monthly,
		Meta: dto.NewReportMeta(report),
	})
}

// GetProductSummary returns the invested total per product, largest first
//
// Method: GET /api/v1/reports/products
//
// Success Response: 200 OK
//   - data: Array of {product, total_amount}
//   - meta: report metadata
//
// Error Responses:
//   - 422: Input tables cannot produce a report
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ReportHandler) GetProductSummary(c echo.Context) error {
	report, err := h.reportService.GenerateReport(requestContext(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report.Products,
		Meta: dto.NewReportMeta(report),
	})
}

// GetClientSummary returns the invested total and tier per client
//
// Method: GET /api/v1/reports/clients
//
// Query parameters:
//   - tier: Bronze, Prata or Ouro (optional)
//
// Success Response: 200 OK
//   - data: Array of {client, total_amount, tier}, largest first
//   - meta: report metadata
//
// Error Responses:
//   - 400: Invalid tier
//   - 422: Input tables cannot produce a report
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ReportHandler) GetClientSummary(c echo.Context) error {
	var query dto.ClientQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, apierrors.ValidationInvalidTier, apierrors.WithDetails(validationDetails(err)...))
	}

	report, err := h.reportService.GenerateReport(requestContext(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	clients := report.Clients
	if query.Tier != "" {
		tier := models.Tier(query.Tier)
		clients = make([]models.ClientSummary, 0, len(report.Clients))
		for _, summary := range report.Clients {
			if summary.Tier == tier {
				clients = append(clients, summary)
			}
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: clients,
		Meta: dto.NewReportMeta(report),
	})
}

// ListInvestments returns enriched investments, optionally filtered
//
// Method: GET /api/v1/investments
//
// Query parameters:
//   - month: YYYY-MM (optional)
//   - client: exact client name (optional)
//   - product: exact product name (optional)
//
// Success Response: 200 OK
//   - data: Array of enriched investments in source order
//   - meta: count, total amount and the applied filters
//
// Error Responses:
//   - 400: Invalid query parameters
//   - 404: No investment matches the filters
//   - 422: Input tables cannot be enriched
//   - 503: Input source unavailable
//   - 500: Internal server error
func (h *ReportHandler) ListInvestments(c echo.Context) error {
	var query dto.InvestmentQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(validationDetails(err)...))
	}

	rows, err := h.reportService.ListInvestments(requestContext(c), query.Filters())
	if err != nil {
		return handleServiceError(c, err)
	}

	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Amount)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: rows,
		Meta: dto.InvestmentListMeta{
			Count:       len(rows),
			TotalAmount: total.Round(2),
			Filters:     query,
		},
	})
}

// RefreshSources reloads the input tables and swaps the cached dataset
//
// Method: POST /api/v1/sources/refresh
//
// Success Response: 200 OK
//   - kind, client_count, product_count, investment_count, loaded_at
//
// Error Responses:
//   - 422: The new input tables are malformed (previous dataset kept)
//   - 503: Refresh failed (previous dataset kept)
func (h *ReportHandler) RefreshSources(c echo.Context) error {
	status, err := h.reportService.RefreshSources(requestContext(c))
	if err != nil {
		if errors.Is(err, models.ErrInputFormat) || errors.Is(err, models.ErrMissingKey) {
			return handleServiceError(c, err)
		}

		slog.Warn("source refresh failed",
			"trace_id", getTraceID(c),
			"client_ip", c.RealIP(),
			"error", err.Error(),
		)
		return SendError(c, apierrors.ReportRefreshFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    status,
		Message: "Input sources reloaded",
	})
}

// GetSourceStatus describes the dataset currently served
//
// Method: GET /api/v1/sources/status
//
// Success Response: 200 OK
//   - kind, client_count, product_count, investment_count, loaded_at
//
// Error Responses:
//   - 422: Input tables malformed
//   - 503: Input source unavailable
func (h *ReportHandler) GetSourceStatus(c echo.Context) error {
	status, err := h.reportService.SourceStatus(requestContext(c))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: status,
	})
}
