package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"

	"golang.org/x/sync/errgroup"
)

var (
	ErrSourceUnavailable = errors.New("input source unavailable")
)

// DatasetService caches the three input tables process-wide. Loads are
// serialized; readers never block once a snapshot exists.
type DatasetService struct {
	source      repositories.SourceRepositoryInterface
	kind        string
	loadTimeout time.Duration
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorderInterface
	logger      PipelineLoggerInterface

	loadMu  sync.Mutex
	current atomic.Pointer[models.Dataset]
	now     func() time.Time
}

// DatasetServiceConfig describes where the snapshot comes from
type DatasetServiceConfig struct {
	Kind        string
	LoadTimeout time.Duration
}

func NewDatasetService(
	source repositories.SourceRepositoryInterface,
	config DatasetServiceConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger PipelineLoggerInterface,
) DatasetServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewPipelineLogger(slog.Default())
	}
	return &DatasetService{
		source:      source,
		kind:        config.Kind,
		loadTimeout: config.LoadTimeout,
		breaker:     breaker,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *DatasetService) Dataset(ctx context.Context) (*models.Dataset, error) {
	if ds := s.current.Load(); ds != nil {
		return ds, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// another caller may have finished loading while we waited
	if ds := s.current.Load(); ds != nil {
		return ds, nil
	}

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(ds)
	return ds, nil
}

func (s *DatasetService) Refresh(ctx context.Context) (*models.Dataset, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(ds)
	return ds, nil
}

func (s *DatasetService) Status() *models.SourceStatus {
	ds := s.current.Load()
	if ds == nil {
		return nil
	}
	return &models.SourceStatus{
		Kind:            s.kind,
		ClientCount:     ds.Reference.ClientCount(),
		ProductCount:    ds.Reference.ProductCount(),
		InvestmentCount: len(ds.Investments),
		LoadedAt:        ds.LoadedAt,
	}
}

// load reads the three tables concurrently and indexes the reference tables.
// Nothing is returned unless all three tables load cleanly.
func (s *DatasetService) load(ctx context.Context) (*models.Dataset, error) {
	if s.breaker != nil && s.breaker.IsOpen() {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, ErrCircuitBreakerOpen)
	}

	if s.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.loadTimeout)
		defer cancel()
	}

	startTime := s.now()
	s.logger.LogSourceLoadStarted(ctx, s.kind)

	var (
		clients     []models.Client
		products    []models.Product
		investments []models.Investment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.source.LoadClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.source.LoadProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = s.source.LoadInvestments(gctx)
		return err
	})

	err := g.Wait()
	var ref *models.ReferenceData
	if err == nil {
		ref, err = models.NewReferenceData(clients, products)
	}

	duration := s.now().Sub(startTime)
	s.metrics.RecordProcessingTime(MetricSourceLoadDuration, duration)

	if err != nil {
		s.recordLoadFailure(err)
		s.metrics.IncrementCounter(MetricSourceLoad, map[string]string{"kind": s.kind, "status": "failed"})
		s.logger.LogSourceLoadFailed(ctx, s.kind, err.Error(), duration.Milliseconds())
		return nil, err
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
	s.metrics.IncrementCounter(MetricSourceLoad, map[string]string{"kind": s.kind, "status": "success"})
	s.metrics.RecordGauge(MetricDatasetRows, float64(len(clients)), map[string]string{"table": models.TableClients})
	s.metrics.RecordGauge(MetricDatasetRows, float64(len(products)), map[string]string{"table": models.TableProducts})
	s.metrics.RecordGauge(MetricDatasetRows, float64(len(investments)), map[string]string{"table": models.TableInvestments})
	s.logger.LogSourceLoadCompleted(ctx, s.kind, len(clients), len(products), len(investments), duration.Milliseconds())

	return &models.Dataset{
		Reference:   ref,
		Investments: investments,
		LoadedAt:    s.now().UTC(),
	}, nil
}

// recordLoadFailure counts only source failures against the breaker.
// Malformed tables and cancelled callers do not.
func (s *DatasetService) recordLoadFailure(err error) {
	if s.breaker == nil || errors.Is(err, models.ErrInputFormat) || errors.Is(err, context.Canceled) {
		return
	}
	s.breaker.RecordFailure()
}
