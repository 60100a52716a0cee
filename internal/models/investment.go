package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Investment is a raw row of the investments fact table. SerialDate is the
// day count read from the source, decoded later according to a DateSystem.
// SourceRow is the line the row was read from, zero for database rows.
type Investment struct {
	ID         int             `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ClientID   int             `gorm:"not null;index" json:"client_id"`
	ProductID  int             `gorm:"not null;index" json:"product_id"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	SerialDate int             `gorm:"column:invested_serial;not null" json:"invested_serial"`
	SourceRow  int             `gorm:"-" json:"-"`
}

func (i *Investment) TableName() string {
	return "investments"
}

// BeforeCreate hook for Investment
func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	return i.Validate()
}

// Validate validates the investment fields
func (i *Investment) Validate() error {
	if i.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if i.SerialDate < 0 {
		return ErrInvalidSerialDate
	}
	return nil
}

// EnrichedInvestment is an Investment joined with its client and product and
// with its serial date decoded.
type EnrichedInvestment struct {
	Investment
	ClientName      string    `json:"client_name"`
	ClientCity      string    `json:"client_city"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category"`
	InvestedOn      time.Time `json:"invested_on"`
	Month           string    `json:"month"`
}

// InvestmentFilters narrows a list of enriched investments. Empty fields match everything.
type InvestmentFilters struct {
	Month   string
	Client  string
	Product string
}

// Matches reports whether the enriched investment passes every set filter
func (f InvestmentFilters) Matches(inv *EnrichedInvestment) bool {
	if f.Month != "" && inv.Month != f.Month {
		return false
	}
	if f.Client != "" && inv.ClientName != f.Client {
		return false
	}
	if f.Product != "" && inv.ProductName != f.Product {
		return false
	}
	return true
}
