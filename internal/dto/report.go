package dto

import (
	"time"

	"investment-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentQuery contains filtering options for the investment listing
type InvestmentQuery struct {
	Month   string `query:"month" json:"month" validate:"omitempty,month"`
	Client  string `query:"client" json:"client" validate:"omitempty,max=200"`
	Product string `query:"product" json:"product" validate:"omitempty,max=200"`
}

// Filters converts the query into service filters
func (q InvestmentQuery) Filters() models.InvestmentFilters {
	return models.InvestmentFilters{
		Month:   q.Month,
		Client:  q.Client,
		Product: q.Product,
	}
}

// ClientQuery filters the client summary by tier
type ClientQuery struct {
	Tier string `query:"tier" json:"tier" validate:"omitempty,tier"`
}

// ReportMeta describes the report a table was taken from
type ReportMeta struct {
	ReportID        uuid.UUID         `json:"report_id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	DateSystem      models.DateSystem `json:"date_system"`
	InvestmentCount int               `json:"investment_count"`
}

// NewReportMeta extracts the metadata of a report
func NewReportMeta(report *models.Report) ReportMeta {
	return ReportMeta{
		ReportID:        report.ID,
		GeneratedAt:     report.GeneratedAt,
		DateSystem:      report.DateSystem,
		InvestmentCount: report.InvestmentCount,
	}
}

// InvestmentListMeta accompanies the investment listing
type InvestmentListMeta struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Filters     InvestmentQuery `json:"filters"`
}

// ChartResponse wraps a chart dataset with its kind
type ChartResponse struct {
	Kind   models.ChartKind `json:"kind"`
	Points interface{}      `json:"points"`
}

// ChartIndexEntry lists an available chart
type ChartIndexEntry struct {
	Kind models.ChartKind `json:"kind"`
	Path string           `json:"path"`
}

// ChartRequest selects a chart dataset by its path segment
type ChartRequest struct {
	Kind string `param:"kind" json:"kind" validate:"required,chart_kind"`
}
