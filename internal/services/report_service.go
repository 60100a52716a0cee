package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"investment-dashboard/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrReportUnavailable = errors.New("report unavailable")
	ErrInvalidMonth      = errors.New("month must use the YYYY-MM format")
	ErrNoInvestments     = errors.New("no investments match the filters")
)

type ReportService struct {
	datasets   DatasetServiceInterface
	enricher   EnrichmentServiceInterface
	thresholds models.TierThresholds
	dateSystem models.DateSystem
	metrics    MetricsRecorderInterface
	logger     PipelineLoggerInterface
	now        func() time.Time
}

func NewReportService(
	datasets DatasetServiceInterface,
	enricher EnrichmentServiceInterface,
	thresholds models.TierThresholds,
	dateSystem models.DateSystem,
	metrics MetricsRecorderInterface,
	logger PipelineLoggerInterface,
) ReportServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewPipelineLogger(slog.Default())
	}
	return &ReportService{
		datasets:   datasets,
		enricher:   enricher,
		thresholds: thresholds,
		dateSystem: dateSystem,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// GenerateReport recomputes the three summary tables from the cached
// snapshot. On any error no partial report is returned.
func (s *ReportService) GenerateReport(ctx context.Context) (*models.Report, error) {
	startTime := s.now()

	report, err := s.generate(ctx)
	duration := s.now().Sub(startTime)
	s.metrics.RecordProcessingTime(MetricReportDuration, duration)

	if err != nil {
		s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"status": "failed"})
		s.logger.LogReportFailed(ctx, err.Error(), duration.Milliseconds())
		return nil, err
	}

	s.metrics.IncrementCounter(MetricReportGenerated, map[string]string{"status": "success"})
	s.logger.LogReportGenerated(ctx, report.ID.String(), report.InvestmentCount,
		len(report.Monthly), len(report.Products), len(report.Clients), duration.Milliseconds())

	return report, nil
}

func (s *ReportService) generate(ctx context.Context) (*models.Report, error) {
	rows, err := enrichCurrent(ctx, s.datasets, s.enricher)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:              uuid.New(),
		GeneratedAt:     s.now().UTC(),
		DateSystem:      s.dateSystem,
		InvestmentCount: len(rows),
		GrandTotal:      TotalAmount(rows),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		report.Monthly = SummarizeByMonth(rows)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		report.Products = SummarizeByProduct(rows)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		report.Clients = SummarizeByClient(rows, s.thresholds)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// ListInvestments returns the enriched rows passing every set filter
func (s *ReportService) ListInvestments(ctx context.Context, filters models.InvestmentFilters) ([]models.EnrichedInvestment, error) {
	if filters.Month != "" {
		if _, err := time.Parse(models.MonthLayout, filters.Month); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, filters.Month)
		}
	}

	rows, err := enrichCurrent(ctx, s.datasets, s.enricher)
	if err != nil {
		return nil, err
	}

	if filters == (models.InvestmentFilters{}) {
		return rows, nil
	}

	matched := make([]models.EnrichedInvestment, 0)
	for i := range rows {
		if filters.Matches(&rows[i]) {
			matched = append(matched, rows[i])
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoInvestments
	}

	return matched, nil
}

func (s *ReportService) RefreshSources(ctx context.Context) (*models.SourceStatus, error) {
	if _, err := s.datasets.Refresh(ctx); err != nil {
		return nil, err
	}
	return s.datasets.Status(), nil
}

// SourceStatus describes the cached snapshot, loading it first if needed
func (s *ReportService) SourceStatus(ctx context.Context) (*models.SourceStatus, error) {
	if status := s.datasets.Status(); status != nil {
		return status, nil
	}
	if _, err := s.datasets.Dataset(ctx); err != nil {
		return nil, err
	}
	return s.datasets.Status(), nil
}

// enrichCurrent joins the cached snapshot. Enrichment is never cached.
func enrichCurrent(ctx context.Context, datasets DatasetServiceInterface, enricher EnrichmentServiceInterface) ([]models.EnrichedInvestment, error) {
	ds, err := datasets.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}

	rows, err := enricher.Enrich(ds.Reference, ds.Investments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportUnavailable, err)
	}

	return rows, nil
}
