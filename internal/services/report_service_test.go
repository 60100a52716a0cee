package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"investment-dashboard/internal/models"
	"investment-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDatasets *service_mocks.MockDatasetServiceInterface
	mockMetrics  *service_mocks.MockMetricsRecorderInterface
	mockLogger   *service_mocks.MockPipelineLoggerInterface
	service      ReportServiceInterface
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDatasets = service_mocks.NewMockDatasetServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockPipelineLoggerInterface(s.ctrl)
	s.service = NewReportService(
		s.mockDatasets,
		NewEnrichmentService(models.DateSystemEpoch1900),
		models.DefaultTierThresholds(),
		models.DateSystemEpoch1900,
		s.mockMetrics,
		s.mockLogger,
	)
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportServiceTestSuite) dataset(clients []models.Client, products []models.Product, investments []models.Investment) *models.Dataset {
	ref, err := models.NewReferenceData(clients, products)
	s.Require().NoError(err)
	return &models.Dataset{Reference: ref, Investments: investments, LoadedAt: time.Now()}
}

func (s *ReportServiceTestSuite) exampleDataset() *models.Dataset {
	return s.dataset(
		[]models.Client{{ID: 1, Name: "Ana", City: "SP"}},
		[]models.Product{{ID: 100, Name: "CDB", Category: "Fixed Income"}},
		[]models.Investment{{ID: 1, ClientID: 1, ProductID: 100, Amount: decimal.NewFromInt(12000), SerialDate: 1}},
	)
}

func (s *ReportServiceTestSuite) multiMonthDataset() *models.Dataset {
	return s.dataset(
		[]models.Client{{ID: 1, Name: "Ana", City: "SP"}, {ID: 2, Name: "Bia", City: "RJ"}},
		[]models.Product{{ID: 100, Name: "CDB", Category: "Renda Fixa"}, {ID: 200, Name: "Fundo DI", Category: "Fundos"}},
		[]models.Investment{
			{ID: 1, ClientID: 1, ProductID: 100, Amount: decimal.NewFromInt(30000), SerialDate: 45000},
			{ID: 2, ClientID: 1, ProductID: 200, Amount: decimal.NewFromInt(25000), SerialDate: 45031},
			{ID: 3, ClientID: 2, ProductID: 100, Amount: decimal.NewFromInt(4000), SerialDate: 45031},
		},
	)
}

func (s *ReportServiceTestSuite) expectSuccessMetrics() {
	s.mockMetrics.EXPECT().RecordProcessingTime(MetricReportDuration, gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter(MetricReportGenerated, map[string]string{"status": "success"})
	s.mockLogger.EXPECT().LogReportGenerated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
}

func (s *ReportServiceTestSuite) expectFailureMetrics() {
	s.mockMetrics.EXPECT().RecordProcessingTime(MetricReportDuration, gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter(MetricReportGenerated, map[string]string{"status": "failed"})
	s.mockLogger.EXPECT().LogReportFailed(gomock.Any(), gomock.Any(), gomock.Any())
}

func (s *ReportServiceTestSuite) TestGenerateReport_ReferenceExample() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.exampleDataset(), nil)
	s.expectSuccessMetrics()

	report, err := s.service.GenerateReport(context.Background())

	s.Require().NoError(err)
	s.NotEmpty(report.ID.String())
	s.Equal(models.DateSystemEpoch1900, report.DateSystem)
	s.Equal(1, report.InvestmentCount)
	s.Equal("12000.00", report.GrandTotal.StringFixed(2))

	s.Require().Len(report.Monthly, 1)
	s.Equal("1900-01", report.Monthly[0].Month)
	s.Equal("12000.00", report.Monthly[0].TotalAmount.StringFixed(2))
	s.Equal("12000.00", report.Monthly[0].MeanAmount.StringFixed(2))
	s.Equal(1, report.Monthly[0].TransactionCount)

	s.Require().Len(report.Products, 1)
	s.Equal("CDB", report.Products[0].Product)
	s.Equal("12000.00", report.Products[0].TotalAmount.StringFixed(2))

	s.Require().Len(report.Clients, 1)
	s.Equal("Ana", report.Clients[0].Client)
	s.Equal("12000.00", report.Clients[0].TotalAmount.StringFixed(2))
	s.Equal(models.TierPrata, report.Clients[0].Tier)
}

func (s *ReportServiceTestSuite) TestGenerateReport_MultipleMonths() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.multiMonthDataset(), nil)
	s.expectSuccessMetrics()

	report, err := s.service.GenerateReport(context.Background())

	s.Require().NoError(err)
	s.Require().Len(report.Monthly, 2)
	s.Equal("2023-03", report.Monthly[0].Month)
	s.Equal("2023-04", report.Monthly[1].Month)
	s.Equal(2, report.Monthly[1].TransactionCount)
	s.Equal("14500.00", report.Monthly[1].MeanAmount.StringFixed(2))

	s.Equal("CDB", report.Products[0].Product)
	s.Equal("34000.00", report.Products[0].TotalAmount.StringFixed(2))

	s.Equal("Ana", report.Clients[0].Client)
	s.Equal(models.TierOuro, report.Clients[0].Tier)
	s.Equal(models.TierBronze, report.Clients[1].Tier)
	s.Equal("59000.00", report.GrandTotal.StringFixed(2))
}

func (s *ReportServiceTestSuite) TestGenerateReport_UnknownClientProducesNoReport() {
	ds := s.exampleDataset()
	ds.Investments = append(ds.Investments, models.Investment{ID: 2, ClientID: 42, ProductID: 100, SerialDate: 1})
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(ds, nil)
	s.expectFailureMetrics()

	report, err := s.service.GenerateReport(context.Background())

	s.Nil(report)
	s.ErrorIs(err, models.ErrMissingKey)
	s.ErrorIs(err, ErrReportUnavailable)
	var missing *models.MissingKeyError
	s.Require().True(errors.As(err, &missing))
	s.Equal(42, missing.Key)
	s.Equal(2, missing.InvestmentID)
}

func (s *ReportServiceTestSuite) TestGenerateReport_DatasetError() {
	loadErr := &models.InputFormatError{Table: models.TableClients, Row: 1, Column: "client_id", Err: models.ErrMissingColumn}
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(nil, loadErr)
	s.expectFailureMetrics()

	report, err := s.service.GenerateReport(context.Background())

	s.Nil(report)
	s.ErrorIs(err, models.ErrMissingColumn)
	s.ErrorIs(err, ErrReportUnavailable)
}

func (s *ReportServiceTestSuite) TestGenerateReport_EmptyDataset() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.dataset(nil, nil, nil), nil)
	s.expectSuccessMetrics()

	report, err := s.service.GenerateReport(context.Background())

	s.Require().NoError(err)
	s.Equal(0, report.InvestmentCount)
	s.Empty(report.Monthly)
	s.Empty(report.Products)
	s.Empty(report.Clients)
}

func (s *ReportServiceTestSuite) TestListInvestments_NoFilters() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.multiMonthDataset(), nil)

	rows, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{})

	s.Require().NoError(err)
	s.Len(rows, 3)
}

func (s *ReportServiceTestSuite) TestListInvestments_Filters() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.multiMonthDataset(), nil).Times(3)

	byMonth, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{Month: "2023-04"})
	s.Require().NoError(err)
	s.Len(byMonth, 2)

	byClient, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{Client: "Bia"})
	s.Require().NoError(err)
	s.Require().Len(byClient, 1)
	s.Equal(3, byClient[0].ID)

	combined, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{Month: "2023-04", Product: "Fundo DI"})
	s.Require().NoError(err)
	s.Require().Len(combined, 1)
	s.Equal("Ana", combined[0].ClientName)
}

func (s *ReportServiceTestSuite) TestListInvestments_InvalidMonth() {
	rows, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{Month: "2023-13"})

	s.Nil(rows)
	s.ErrorIs(err, ErrInvalidMonth)
}

func (s *ReportServiceTestSuite) TestListInvestments_NoMatch() {
	s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.multiMonthDataset(), nil)

	rows, err := s.service.ListInvestments(context.Background(), models.InvestmentFilters{Client: "Nobody"})

	s.Nil(rows)
	s.ErrorIs(err, ErrNoInvestments)
}

func (s *ReportServiceTestSuite) TestRefreshSources() {
	status := &models.SourceStatus{Kind: "csv", ClientCount: 2, ProductCount: 2, InvestmentCount: 3}
	gomock.InOrder(
		s.mockDatasets.EXPECT().Refresh(gomock.Any()).Return(s.multiMonthDataset(), nil),
		s.mockDatasets.EXPECT().Status().Return(status),
	)

	got, err := s.service.RefreshSources(context.Background())

	s.Require().NoError(err)
	s.Equal(status, got)
}

func (s *ReportServiceTestSuite) TestRefreshSources_Failure() {
	s.mockDatasets.EXPECT().Refresh(gomock.Any()).Return(nil, ErrSourceUnavailable)

	got, err := s.service.RefreshSources(context.Background())

	s.Nil(got)
	s.ErrorIs(err, ErrSourceUnavailable)
}

func (s *ReportServiceTestSuite) TestSourceStatus_LoadsWhenEmpty() {
	status := &models.SourceStatus{Kind: "database"}
	gomock.InOrder(
		s.mockDatasets.EXPECT().Status().Return(nil),
		s.mockDatasets.EXPECT().Dataset(gomock.Any()).Return(s.exampleDataset(), nil),
		s.mockDatasets.EXPECT().Status().Return(status),
	)

	got, err := s.service.SourceStatus(context.Background())

	s.Require().NoError(err)
	s.Equal("database", got.Kind)
}
