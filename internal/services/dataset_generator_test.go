package services

import (
	"testing"
	"time"

	"investment-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DatasetGeneratorTestSuite struct {
	suite.Suite
	generator *datasetGenerator
	from      time.Time
	to        time.Time
}

func TestDatasetGeneratorSuite(t *testing.T) {
	suite.Run(t, new(DatasetGeneratorTestSuite))
}

func (s *DatasetGeneratorTestSuite) SetupTest() {
	s.generator = NewDatasetGenerator(42, models.DateSystemEpoch1900).(*datasetGenerator)
	s.from = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
}

func (s *DatasetGeneratorTestSuite) TestGenerateClients_UniqueIDsAndNames() {
	clients := s.generator.GenerateClients(200)

	s.Len(clients, 200)
	names := make(map[string]bool)
	for i, c := range clients {
		s.Equal(i+1, c.ID)
		s.NotEmpty(c.City)
		s.False(names[c.Name], "duplicate name %s", c.Name)
		names[c.Name] = true
	}
}

func (s *DatasetGeneratorTestSuite) TestGenerateProducts_UniqueNamesPastPoolSize() {
	count := len(s.generator.productPool) + 3
	products := s.generator.GenerateProducts(count)

	names := make(map[string]bool)
	for i, p := range products {
		s.Equal(100+i, p.ID)
		s.NotEmpty(p.Category)
		s.False(names[p.Name], "duplicate name %s", p.Name)
		names[p.Name] = true
	}
	s.Equal("CDB 2", products[len(s.generator.productPool)].Name)
}

func (s *DatasetGeneratorTestSuite) TestGenerateAmount_TwoDecimalPlacesWithinRange() {
	for i := 0; i < 100; i++ {
		amount := s.generator.GenerateAmount()
		s.True(amount.Equal(amount.Round(2)))
		s.True(amount.GreaterThanOrEqual(decimal.NewFromInt(minInvestmentAmount)), amount.String())
		s.True(amount.LessThanOrEqual(decimal.NewFromInt(maxInvestmentAmount)), amount.String())
	}
}

func (s *DatasetGeneratorTestSuite) TestGenerate_ConsistentDatasetDecodesIntoRange() {
	dataset, err := s.generator.Generate(models.GenerateOptions{
		Clients:     10,
		Products:    5,
		Investments: 300,
		From:        s.from,
		To:          s.to,
	})
	s.Require().NoError(err)

	ref, err := models.NewReferenceData(dataset.Clients, dataset.Products)
	s.Require().NoError(err)

	rows, err := NewEnrichmentService(models.DateSystemEpoch1900).Enrich(ref, dataset.Investments)
	s.Require().NoError(err)
	s.Len(rows, 300)
	for _, r := range rows {
		s.False(r.InvestedOn.Before(s.from), r.InvestedOn.String())
		s.False(r.InvestedOn.After(s.to), r.InvestedOn.String())
		s.Equal("2023", r.Month[:4])
	}
}

func (s *DatasetGeneratorTestSuite) TestGenerate_SameSeedSameDataset() {
	opts := models.GenerateOptions{Clients: 3, Products: 3, Investments: 20, From: s.from, To: s.to}

	first, err := NewDatasetGenerator(7, models.DateSystemExcel1900).Generate(opts)
	s.Require().NoError(err)
	second, err := NewDatasetGenerator(7, models.DateSystemExcel1900).Generate(opts)
	s.Require().NoError(err)

	s.Equal(first.Clients, second.Clients)
	s.Equal(len(first.Investments), len(second.Investments))
	for i := range first.Investments {
		s.Equal(first.Investments[i].SerialDate, second.Investments[i].SerialDate)
		s.True(first.Investments[i].Amount.Equal(second.Investments[i].Amount))
	}
}

func (s *DatasetGeneratorTestSuite) TestGenerate_InvalidOptions() {
	_, err := s.generator.Generate(models.GenerateOptions{Clients: 0, Products: 1})
	s.Error(err)

	_, err = s.generator.Generate(models.GenerateOptions{Clients: 1, Products: 1, Investments: 1, From: s.to, To: s.from})
	s.Error(err)
}
