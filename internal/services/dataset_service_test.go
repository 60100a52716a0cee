package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"
	"investment-dashboard/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DatasetServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSource *repository_mocks.MockSourceRepositoryInterface
	breaker    CircuitBreakerInterface
	service    DatasetServiceInterface
}

func TestDatasetServiceSuite(t *testing.T) {
	suite.Run(t, new(DatasetServiceTestSuite))
}

func (s *DatasetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = repository_mocks.NewMockSourceRepositoryInterface(s.ctrl)
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1}, nil)
	s.service = NewDatasetService(s.mockSource, DatasetServiceConfig{Kind: "csv", LoadTimeout: time.Second}, s.breaker, nil, nil)
}

func (s *DatasetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleClients() []models.Client {
	return []models.Client{{ID: 1, Name: "Ana", City: "SP"}, {ID: 2, Name: "Bia", City: "RJ"}}
}

func sampleProducts() []models.Product {
	return []models.Product{{ID: 100, Name: "CDB", Category: "Fixed Income"}}
}

func sampleInvestments() []models.Investment {
	return []models.Investment{
		{ID: 1, ClientID: 1, ProductID: 100, Amount: decimal.NewFromInt(12000), SerialDate: 1},
		{ID: 2, ClientID: 2, ProductID: 100, Amount: decimal.NewFromInt(500), SerialDate: 40},
	}
}

func (s *DatasetServiceTestSuite) expectLoad(clients []models.Client, products []models.Product, investments []models.Investment) {
	s.mockSource.EXPECT().LoadClients(gomock.Any()).Return(clients, nil)
	s.mockSource.EXPECT().LoadProducts(gomock.Any()).Return(products, nil)
	s.mockSource.EXPECT().LoadInvestments(gomock.Any()).Return(investments, nil)
}

func (s *DatasetServiceTestSuite) TestDataset_LoadsOnceAndCaches() {
	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments())

	first, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)
	second, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)

	s.Same(first, second)
	s.Len(first.Investments, 2)
	s.Equal(2, first.Reference.ClientCount())
	s.False(first.LoadedAt.IsZero())
}

func (s *DatasetServiceTestSuite) TestDataset_ConcurrentCallersShareOneLoad() {
	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments())

	var wg sync.WaitGroup
	results := make([]*models.Dataset, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := s.service.Dataset(context.Background())
			s.NoError(err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	for _, ds := range results {
		s.Same(results[0], ds)
	}
}

func (s *DatasetServiceTestSuite) TestStatus_NilBeforeFirstLoad() {
	s.Nil(s.service.Status())

	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments())
	_, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)

	status := s.service.Status()
	s.Require().NotNil(status)
	s.Equal("csv", status.Kind)
	s.Equal(2, status.ClientCount)
	s.Equal(1, status.ProductCount)
	s.Equal(2, status.InvestmentCount)
}

func (s *DatasetServiceTestSuite) TestRefresh_ReplacesSnapshot() {
	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments())
	before, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)

	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments()[:1])
	after, err := s.service.Refresh(context.Background())
	s.Require().NoError(err)

	s.NotSame(before, after)
	s.Len(after.Investments, 1)
	current, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)
	s.Same(after, current)
}

func (s *DatasetServiceTestSuite) TestRefresh_FailureKeepsPreviousSnapshot() {
	s.expectLoad(sampleClients(), sampleProducts(), sampleInvestments())
	before, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)

	readErr := errors.New("disk on fire")
	s.mockSource.EXPECT().LoadClients(gomock.Any()).Return(nil, readErr)
	s.mockSource.EXPECT().LoadProducts(gomock.Any()).Return(sampleProducts(), nil).AnyTimes()
	s.mockSource.EXPECT().LoadInvestments(gomock.Any()).Return(sampleInvestments(), nil).AnyTimes()

	_, err = s.service.Refresh(context.Background())
	s.Require().ErrorIs(err, readErr)

	current, err := s.service.Dataset(context.Background())
	s.Require().NoError(err)
	s.Same(before, current)
}

func (s *DatasetServiceTestSuite) TestDataset_DuplicateClientIsInputFormatError() {
	clients := append(sampleClients(), models.Client{ID: 1, Name: "Ana Again", City: "SP"})
	s.expectLoad(clients, sampleProducts(), sampleInvestments())

	ds, err := s.service.Dataset(context.Background())

	s.Nil(ds)
	s.Require().ErrorIs(err, models.ErrInputFormat)
	s.ErrorIs(err, models.ErrDuplicateKey)
	s.Nil(s.service.Status())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *DatasetServiceTestSuite) TestDataset_InputFormatErrorDoesNotTripBreaker() {
	formatErr := &models.InputFormatError{Table: models.TableInvestments, Row: 3, Column: "amount", Err: models.ErrNotANumber}
	for i := 0; i < 3; i++ {
		s.mockSource.EXPECT().LoadClients(gomock.Any()).Return(sampleClients(), nil)
		s.mockSource.EXPECT().LoadProducts(gomock.Any()).Return(sampleProducts(), nil)
		s.mockSource.EXPECT().LoadInvestments(gomock.Any()).Return(nil, formatErr)

		_, err := s.service.Dataset(context.Background())
		s.Require().ErrorIs(err, models.ErrInputFormat)
	}

	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *DatasetServiceTestSuite) TestDataset_SourceFailuresOpenBreaker() {
	for i := 0; i < 2; i++ {
		s.mockSource.EXPECT().LoadClients(gomock.Any()).Return(nil, repositories.ErrSourceNotFound)
		s.mockSource.EXPECT().LoadProducts(gomock.Any()).Return(sampleProducts(), nil).AnyTimes()
		s.mockSource.EXPECT().LoadInvestments(gomock.Any()).Return(sampleInvestments(), nil).AnyTimes()

		_, err := s.service.Dataset(context.Background())
		s.Require().ErrorIs(err, repositories.ErrSourceNotFound)
	}
	s.Equal(StateOpen, s.breaker.GetState())

	_, err := s.service.Dataset(context.Background())

	s.ErrorIs(err, ErrSourceUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *DatasetServiceTestSuite) TestDataset_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.mockSource.EXPECT().LoadClients(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	s.mockSource.EXPECT().LoadProducts(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	s.mockSource.EXPECT().LoadInvestments(gomock.Any()).Return(nil, context.Canceled).AnyTimes()

	_, err := s.service.Dataset(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Equal(0, s.breaker.GetFailureCount())
}
