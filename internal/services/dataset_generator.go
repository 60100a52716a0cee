package services

import (
	"errors"
	"fmt"
	"time"

	"investment-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type productInfo struct {
	Name     string
	Category string
}

type datasetGenerator struct {
	faker       *gofakeit.Faker
	dateSystem  models.DateSystem
	productPool []productInfo
	cityPool    []string
}

const (
	minInvestmentAmount = 500.00
	maxInvestmentAmount = 30000.00
)

// NewDatasetGenerator creates a generator. A zero seed draws a random one.
func NewDatasetGenerator(seed uint64, dateSystem models.DateSystem) DatasetGeneratorInterface {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &datasetGenerator{
		faker:       gofakeit.New(seed),
		dateSystem:  dateSystem,
		productPool: initializeProductPool(),
		cityPool:    initializeCityPool(),
	}
}

func initializeProductPool() []productInfo {
	return []productInfo{
		// Fixed income
		{"CDB", "Renda Fixa"},
		{"LCI", "Renda Fixa"},
		{"LCA", "Renda Fixa"},
		{"Tesouro Selic", "Renda Fixa"},
		{"Tesouro IPCA+", "Renda Fixa"},
		{"Debenture Incentivada", "Renda Fixa"},

		// Equities
		{"Acoes Blue Chips", "Renda Variavel"},
		{"Acoes Small Caps", "Renda Variavel"},
		{"ETF Ibovespa", "Renda Variavel"},
		{"BDR Tecnologia", "Renda Variavel"},

		// Funds
		{"Fundo DI", "Fundos"},
		{"Fundo Multimercado", "Fundos"},
		{"Fundo Imobiliario", "Fundos"},
		{"Fundo Cambial", "Fundos"},

		// Pension
		{"PGBL", "Previdencia"},
		{"VGBL", "Previdencia"},
	}
}

func initializeCityPool() []string {
	return []string{
		"Sao Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba", "Porto Alegre",
		"Salvador", "Recife", "Fortaleza", "Brasilia", "Campinas",
	}
}

// Generate builds a consistent dataset: every investment references an
// existing client and product.
func (g *datasetGenerator) Generate(opts models.GenerateOptions) (*models.GeneratedDataset, error) {
	if opts.Clients <= 0 || opts.Products <= 0 {
		return nil, errors.New("at least one client and one product are required")
	}
	if opts.Investments < 0 {
		return nil, errors.New("investment count must not be negative")
	}

	clients := g.GenerateClients(opts.Clients)
	products := g.GenerateProducts(opts.Products)
	investments, err := g.GenerateInvestments(clients, products, opts.Investments, opts.From, opts.To)
	if err != nil {
		return nil, err
	}

	return &models.GeneratedDataset{
		Clients:     clients,
		Products:    products,
		Investments: investments,
	}, nil
}

// GenerateClients creates clients with ids 1..count and unique names
func (g *datasetGenerator) GenerateClients(count int) []models.Client {
	clients := make([]models.Client, 0, count)
	seen := make(map[string]bool, count)

	for id := 1; id <= count; id++ {
		name := g.faker.Name()
		for seen[name] {
			name = fmt.Sprintf("%s %s", g.faker.FirstName(), g.faker.LastName())
			if seen[name] {
				name = fmt.Sprintf("%s %d", name, id)
			}
		}
		seen[name] = true

		clients = append(clients, models.Client{
			ID:   id,
			Name: name,
			City: g.cityPool[g.faker.IntN(len(g.cityPool))],
		})
	}

	return clients
}

// GenerateProducts creates products with ids starting at 100. Past the size
// of the product pool, names get a series number.
func (g *datasetGenerator) GenerateProducts(count int) []models.Product {
	products := make([]models.Product, 0, count)

	for i := 0; i < count; i++ {
		info := g.productPool[i%len(g.productPool)]
		name := info.Name
		if series := i / len(g.productPool); series > 0 {
			name = fmt.Sprintf("%s %d", info.Name, series+1)
		}

		products = append(products, models.Product{
			ID:       100 + i,
			Name:     name,
			Category: info.Category,
		})
	}

	return products
}

// GenerateInvestments creates count investments dated within [from, to]
func (g *datasetGenerator) GenerateInvestments(clients []models.Client, products []models.Product, count int, from, to time.Time) ([]models.Investment, error) {
	if len(clients) == 0 || len(products) == 0 {
		return nil, errors.New("investments need at least one client and one product")
	}
	if to.Before(from) {
		return nil, errors.New("end date must not be before start date")
	}

	investments := make([]models.Investment, 0, count)
	for id := 1; id <= count; id++ {
		investedOn := from
		if to.After(from) {
			investedOn = g.faker.DateRange(from, to)
		}
		serial, err := g.dateSystem.Encode(investedOn)
		if err != nil {
			return nil, err
		}

		investments = append(investments, models.Investment{
			ID:         id,
			ClientID:   clients[g.faker.IntN(len(clients))].ID,
			ProductID:  products[g.faker.IntN(len(products))].ID,
			Amount:     g.GenerateAmount(),
			SerialDate: serial,
		})
	}

	return investments, nil
}

// GenerateAmount returns an amount with two decimal places
func (g *datasetGenerator) GenerateAmount() decimal.Decimal {
	amount := g.faker.Float64Range(minInvestmentAmount, maxInvestmentAmount)
	return decimal.NewFromFloat(amount).Round(2)
}
