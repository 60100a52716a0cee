package services

import (
	"context"
	"testing"
	"time"

	"investment-dashboard/internal/models"
	"investment-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ChartServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDatasets *service_mocks.MockDatasetServiceInterface
	mockMetrics  *service_mocks.MockMetricsRecorderInterface
	service      ChartServiceInterface
	dataset      *models.Dataset
}

func TestChartServiceSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}

func (s *ChartServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDatasets = service_mocks.NewMockDatasetServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewChartService(
		s.mockDatasets,
		NewEnrichmentService(models.DateSystemEpoch1900),
		models.DefaultTierThresholds(),
		s.mockMetrics,
	)

	ref, err := models.NewReferenceData(
		[]models.Client{{ID: 1, Name: "Ana", City: "Sao Paulo"}, {ID: 2, Name: "Bia", City: "Recife"}},
		[]models.Product{{ID: 100, Name: "CDB", Category: "Renda Fixa"}, {ID: 200, Name: "Fundo DI", Category: "Fundos"}},
	)
	s.Require().NoError(err)
	s.dataset = &models.Dataset{
		Reference: ref,
		Investments: []models.Investment{
			// 2023-03
			{ID: 1, ClientID: 1, ProductID: 100, Amount: decimal.NewFromInt(20000), SerialDate: 45000},
			// 2023-04
			{ID: 2, ClientID: 1, ProductID: 200, Amount: decimal.NewFromInt(25000), SerialDate: 45031},
			{ID: 3, ClientID: 2, ProductID: 100, Amount: decimal.NewFromInt(5000), SerialDate: 45031},
		},
		LoadedAt: time.Now(),
	}
}

func (s *ChartServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChartServiceTestSuite) expectChart(kind models.ChartKind) {
	s.mockMetrics.EXPECT().IncrementCounter(MetricChartRequested, map[string]string{"kind": string(kind)})
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.dataset, nil)
}

func (s *ChartServiceTestSuite) TestMonthlyEvolution() {
	s.expectChart(models.ChartMonthlyEvolution)

	points, err := s.service.MonthlyEvolution(context.Background())

	s.Require().NoError(err)
	s.Require().Len(points, 2)
	s.Equal("2023-03", points[0].Month)
	s.True(points[0].ChangePercent.IsZero())
	s.Equal("2023-04", points[1].Month)
	s.Equal("30000.00", points[1].TotalAmount.StringFixed(2))
	s.Equal("50.00", points[1].ChangePercent.StringFixed(2))
}

func (s *ChartServiceTestSuite) TestTierConcentration() {
	s.expectChart(models.ChartTierConcentration)

	shares, err := s.service.TierConcentration(context.Background())

	s.Require().NoError(err)
	s.Require().Len(shares, 2)
	s.Equal(models.TierBronze, shares[0].Tier)
	s.Equal("5000.00", shares[0].TotalAmount.StringFixed(2))
	s.Equal(models.TierPrata, shares[1].Tier)
	s.Equal("45000.00", shares[1].TotalAmount.StringFixed(2))
}

func (s *ChartServiceTestSuite) TestChart_DispatchesByKind() {
	s.expectChart(models.ChartCityCategory)

	data, err := s.service.Chart(context.Background(), models.ChartCityCategory)

	s.Require().NoError(err)
	totals, ok := data.([]models.CityCategoryTotal)
	s.Require().True(ok)
	s.Require().Len(totals, 3)
	s.Equal("Recife", totals[0].City)
	s.Equal("Sao Paulo", totals[1].City)
	s.Equal("Fundos", totals[1].Category)
}

func (s *ChartServiceTestSuite) TestChart_EveryKindIsServed() {
	for _, kind := range models.AllChartKinds() {
		s.expectChart(kind)

		data, err := s.service.Chart(context.Background(), kind)

		s.NoError(err, string(kind))
		s.NotNil(data, string(kind))
	}
}

func (s *ChartServiceTestSuite) TestChart_UnknownKind() {
	data, err := s.service.Chart(context.Background(), models.ChartKind("pie"))

	s.Nil(data)
	s.ErrorIs(err, ErrUnknownChart)
}

func (s *ChartServiceTestSuite) TestChart_DatasetFailure() {
	s.mockMetrics.EXPECT().IncrementCounter(MetricChartRequested, gomock.Any())
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(nil, ErrSourceUnavailable)

	_, err := s.service.ProductMonth(context.Background())

	s.ErrorIs(err, ErrSourceUnavailable)
	s.ErrorIs(err, ErrReportUnavailable)
}
