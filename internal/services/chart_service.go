package services

import (
	"context"
	"errors"
	"fmt"

	"investment-dashboard/internal/models"
)

var (
	ErrUnknownChart = errors.New("unknown chart")
)

type ChartService struct {
	datasets   DatasetServiceInterface
	enricher   EnrichmentServiceInterface
	thresholds models.TierThresholds
	metrics    MetricsRecorderInterface
}

func NewChartService(
	datasets DatasetServiceInterface,
	enricher EnrichmentServiceInterface,
	thresholds models.TierThresholds,
	metrics MetricsRecorderInterface,
) ChartServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &ChartService{
		datasets:   datasets,
		enricher:   enricher,
		thresholds: thresholds,
		metrics:    metrics,
	}
}

func (s *ChartService) MonthlyEvolution(ctx context.Context) ([]models.MonthlyEvolutionPoint, error) {
	rows, err := s.rows(ctx, models.ChartMonthlyEvolution)
	if err != nil {
		return nil, err
	}
	return MonthlyEvolution(SummarizeByMonth(rows)), nil
}

func (s *ChartService) TierConcentration(ctx context.Context) ([]models.TierShare, error) {
	rows, err := s.rows(ctx, models.ChartTierConcentration)
	if err != nil {
		return nil, err
	}
	return TierConcentration(SummarizeByClient(rows, s.thresholds)), nil
}

func (s *ChartService) CategoryProduct(ctx context.Context) ([]models.CategoryProductTotal, error) {
	rows, err := s.rows(ctx, models.ChartCategoryProduct)
	if err != nil {
		return nil, err
	}
	return CategoryProductTotals(rows), nil
}

func (s *ChartService) CityCategory(ctx context.Context) ([]models.CityCategoryTotal, error) {
	rows, err := s.rows(ctx, models.ChartCityCategory)
	if err != nil {
		return nil, err
	}
	return CityCategoryTotals(rows), nil
}

func (s *ChartService) ProductMonth(ctx context.Context) ([]models.ProductMonthTotal, error) {
	rows, err := s.rows(ctx, models.ChartProductMonth)
	if err != nil {
		return nil, err
	}
	return ProductMonthTotals(rows), nil
}

func (s *ChartService) Chart(ctx context.Context, kind models.ChartKind) (interface{}, error) {
	switch kind {
	case models.ChartMonthlyEvolution:
		return s.MonthlyEvolution(ctx)
	case models.ChartTierConcentration:
		return s.TierConcentration(ctx)
	case models.ChartCategoryProduct:
		return s.CategoryProduct(ctx)
	case models.ChartCityCategory:
		return s.CityCategory(ctx)
	case models.ChartProductMonth:
		return s.ProductMonth(ctx)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownChart, kind)
}

func (s *ChartService) rows(ctx context.Context, kind models.ChartKind) ([]models.EnrichedInvestment, error) {
	s.metrics.IncrementCounter(MetricChartRequested, map[string]string{"kind": string(kind)})
	return enrichCurrent(ctx, s.datasets, s.enricher)
}
