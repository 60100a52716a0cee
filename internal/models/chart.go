package models

import "github.com/shopspring/decimal"

// ChartKind names a chart dataset
type ChartKind string

const (
	ChartMonthlyEvolution  ChartKind = "monthly-evolution"
	ChartTierConcentration ChartKind = "tier-concentration"
	ChartCategoryProduct   ChartKind = "category-product"
	ChartCityCategory      ChartKind = "city-category"
	ChartProductMonth      ChartKind = "product-month"
)

func AllChartKinds() []ChartKind {
	return []ChartKind{
		ChartMonthlyEvolution,
		ChartTierConcentration,
		ChartCategoryProduct,
		ChartCityCategory,
		ChartProductMonth,
	}
}

func (k ChartKind) IsValid() bool {
	for _, kind := range AllChartKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// MonthlyEvolutionPoint is a month's total and its percent change over the previous month
type MonthlyEvolutionPoint struct {
	Month         string          `json:"month"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

type TierShare struct {
	Tier        Tier            `json:"tier"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ClientCount int             `json:"client_count"`
}

type CategoryProductTotal struct {
	Category    string          `json:"category"`
	Product     string          `json:"product"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type CityCategoryTotal struct {
	City        string          `json:"city"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type ProductMonthTotal struct {
	Product     string          `json:"product"`
	Month       string          `json:"month"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
