package server

import (
	"context"
	"fmt"
	"log/slog"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/database"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"
	"investment-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

const sourceBreakerName = "source"

// Components groups the services behind the HTTP API and the batch tools
type Components struct {
	// DB is nil for csv sources
	DB       *database.DB
	Source   repositories.SourceRepositoryInterface
	Breaker  services.CircuitBreakerInterface
	Datasets services.DatasetServiceInterface
	Reports  services.ReportServiceInterface
	Charts   services.ChartServiceInterface
	Metrics  services.MetricsRecorderInterface
}

// BuildComponents wires the configured input source into the report
// pipeline. reg receives the pipeline metrics; nil uses the default registerer.
func BuildComponents(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*Components, error) {
	dateSystem, err := models.ParseDateSystem(cfg.Report.DateSystem)
	if err != nil {
		return nil, err
	}
	thresholds := models.TierThresholds{BronzeMax: cfg.Report.BronzeMax, PrataMax: cfg.Report.PrataMax}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	comps := &Components{Metrics: services.NewPrometheusMetrics(reg)}

	switch cfg.Source.Kind {
	case config.SourceKindDatabase:
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initialize database source: %w", err)
		}
		comps.DB = db
		comps.Source = repositories.NewDatasetRepository(db.DB)
	case config.SourceKindCSV:
		comps.Source = repositories.NewCSVSourceRepository(repositories.NewObjectStore(), repositories.CSVSourceConfig{
			ClientsPath:     cfg.Source.ClientsPath,
			ProductsPath:    cfg.Source.ProductsPath,
			InvestmentsPath: cfg.Source.InvestmentsPath,
			Delimiter:       cfg.Source.Delimiter,
		})
	default:
		return nil, fmt.Errorf("unsupported source kind %q", cfg.Source.Kind)
	}

	pipelineLogger := services.NewPipelineLogger(slog.Default())

	comps.Breaker = services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig(), func(from, to models.CircuitBreakerState) {
		pipelineLogger.LogCircuitBreakerStateChange(context.Background(), sourceBreakerName, from.String(), to.String())
		comps.Metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": sourceBreakerName})
	})
	comps.Metrics.RecordGauge(services.MetricCircuitBreakerState, float64(services.StateClosed), map[string]string{"service": sourceBreakerName})

	comps.Datasets = services.NewDatasetService(
		comps.Source,
		services.DatasetServiceConfig{Kind: cfg.Source.Kind, LoadTimeout: cfg.Source.LoadTimeout},
		comps.Breaker,
		comps.Metrics,
		pipelineLogger,
	)

	enricher := services.NewEnrichmentService(dateSystem)
	comps.Reports = services.NewReportService(comps.Datasets, enricher, thresholds, dateSystem, comps.Metrics, pipelineLogger)
	comps.Charts = services.NewChartService(comps.Datasets, enricher, thresholds, comps.Metrics)

	return comps, nil
}

// Close releases the database connection, if any
func (c *Components) Close() error {
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
