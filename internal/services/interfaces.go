package services

import (
	"context"
	"time"

	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// DatasetServiceInterface owns the process-wide snapshot of the three input tables
type DatasetServiceInterface interface {
	// Dataset returns the cached snapshot, loading it on first use
	Dataset(ctx context.Context) (*models.Dataset, error)
	// Refresh reloads the input tables and swaps the snapshot atomically.
	// On failure the previous snapshot stays in place.
	Refresh(ctx context.Context) (*models.Dataset, error)
	// Status describes the cached snapshot, or nil before the first load
	Status() *models.SourceStatus
}

// EnrichmentServiceInterface joins raw investments with the reference tables
type EnrichmentServiceInterface interface {
	Enrich(ref *models.ReferenceData, investments []models.Investment) ([]models.EnrichedInvestment, error)
}

// ReportServiceInterface produces the summary tables from the current snapshot
type ReportServiceInterface interface {
	GenerateReport(ctx context.Context) (*models.Report, error)
	ListInvestments(ctx context.Context, filters models.InvestmentFilters) ([]models.EnrichedInvestment, error)
	RefreshSources(ctx context.Context) (*models.SourceStatus, error)
	SourceStatus(ctx context.Context) (*models.SourceStatus, error)
}

// ChartServiceInterface produces the chart datasets from the current snapshot
type ChartServiceInterface interface {
	MonthlyEvolution(ctx context.Context) ([]models.MonthlyEvolutionPoint, error)
	TierConcentration(ctx context.Context) ([]models.TierShare, error)
	CategoryProduct(ctx context.Context) ([]models.CategoryProductTotal, error)
	CityCategory(ctx context.Context) ([]models.CityCategoryTotal, error)
	ProductMonth(ctx context.Context) ([]models.ProductMonthTotal, error)
	// Chart dispatches on kind and returns one of the slices above
	Chart(ctx context.Context, kind models.ChartKind) (interface{}, error)
}

// DatasetGeneratorInterface generates synthetic input tables for demos and tests
type DatasetGeneratorInterface interface {
	Generate(opts models.GenerateOptions) (*models.GeneratedDataset, error)
	GenerateClients(count int) []models.Client
	GenerateProducts(count int) []models.Product
	GenerateInvestments(clients []models.Client, products []models.Product, count int, from, to time.Time) ([]models.Investment, error)
	GenerateAmount() decimal.Decimal
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type PipelineLoggerInterface interface {
	LogSourceLoadStarted(ctx context.Context, kind string)
	LogSourceLoadCompleted(ctx context.Context, kind string, clients, products, investments int, durationMs int64)
	LogSourceLoadFailed(ctx context.Context, kind string, errorMsg string, durationMs int64)
	LogReportGenerated(ctx context.Context, reportID string, investments, months, products, clients int, durationMs int64)
	LogReportFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
