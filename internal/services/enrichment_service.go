package services

import (
	"errors"
	"fmt"
	"strconv"

	"investment-dashboard/internal/models"
)

type EnrichmentService struct {
	dateSystem models.DateSystem
}

func NewEnrichmentService(dateSystem models.DateSystem) EnrichmentServiceInterface {
	if dateSystem == "" {
		dateSystem = models.DateSystemEpoch1900
	}
	return &EnrichmentService{
		dateSystem: dateSystem,
	}
}

// Enrich produces exactly one enriched row per input row, in input order.
// The first unresolvable row aborts the whole batch.
func (s *EnrichmentService) Enrich(ref *models.ReferenceData, investments []models.Investment) ([]models.EnrichedInvestment, error) {
	enriched := make([]models.EnrichedInvestment, len(investments))

	for i := range investments {
		inv := investments[i]

		client, err := ref.Client(inv.ClientID)
		if err != nil {
			return nil, attachInvestment(err, inv.ID)
		}
		product, err := ref.Product(inv.ProductID)
		if err != nil {
			return nil, attachInvestment(err, inv.ID)
		}

		investedOn, err := s.dateSystem.Decode(inv.SerialDate)
		if err != nil {
			return nil, &models.InputFormatError{
				Table:  models.TableInvestments,
				Row:    inv.SourceRow,
				Column: "invested_date",
				Value:  strconv.Itoa(inv.SerialDate),
				Err:    fmt.Errorf("investment %d: %w", inv.ID, err),
			}
		}

		enriched[i] = models.EnrichedInvestment{
			Investment:      inv,
			ClientName:      client.Name,
			ClientCity:      client.City,
			ProductName:     product.Name,
			ProductCategory: product.Category,
			InvestedOn:      investedOn,
			Month:           models.MonthBucket(investedOn),
		}
	}

	return enriched, nil
}

func attachInvestment(err error, investmentID int) error {
	var missing *models.MissingKeyError
	if errors.As(err, &missing) {
		missing.InvestmentID = investmentID
	}
	return err
}
