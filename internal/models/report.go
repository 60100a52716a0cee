package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates the investments of one month bucket
type MonthlySummary struct {
	Month            string          `json:"month"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	MeanAmount       decimal.Decimal `json:"mean_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// ProductSummary aggregates the investments of one product
type ProductSummary struct {
	Product     string          `json:"product"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ClientSummary aggregates the investments of one client and classifies it
type ClientSummary struct {
	Client      string          `json:"client"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Tier        Tier            `json:"tier"`
}

// Report is the three summary tables computed from one snapshot of the inputs
type Report struct {
	ID              uuid.UUID        `json:"id"`
	GeneratedAt     time.Time        `json:"generated_at"`
	DateSystem      DateSystem       `json:"date_system"`
	InvestmentCount int              `json:"investment_count"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
	Monthly         []MonthlySummary `json:"monthly"`
	Products        []ProductSummary `json:"products"`
	Clients         []ClientSummary  `json:"clients"`
}

// Dataset is a loaded snapshot of the three input tables
type Dataset struct {
	Reference   *ReferenceData
	Investments []Investment
	LoadedAt    time.Time
}

// SourceStatus describes the currently loaded dataset
type SourceStatus struct {
	Kind            string    `json:"kind"`
	ClientCount     int       `json:"client_count"`
	ProductCount    int       `json:"product_count"`
	InvestmentCount int       `json:"investment_count"`
	LoadedAt        time.Time `json:"loaded_at"`
}
