package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier classifies a client by total invested amount
type Tier string

const (
	TierBronze Tier = "Bronze"
	TierPrata  Tier = "Prata"
	TierOuro   Tier = "Ouro"
)

var ErrInvalidTier = errors.New("invalid tier")

// AllTiers lists the tiers from lowest to highest
func AllTiers() []Tier {
	return []Tier{TierBronze, TierPrata, TierOuro}
}

func (t Tier) IsValid() bool {
	switch t {
	case TierBronze, TierPrata, TierOuro:
		return true
	}
	return false
}

func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}

// TierThresholds are the inclusive upper bounds of the Bronze and Prata ranges.
// Anything above PrataMax is Ouro.
type TierThresholds struct {
	BronzeMax decimal.Decimal
	PrataMax  decimal.Decimal
}

func DefaultTierThresholds() TierThresholds {
	return TierThresholds{
		BronzeMax: decimal.NewFromInt(10000),
		PrataMax:  decimal.NewFromInt(50000),
	}
}

func (t TierThresholds) Validate() error {
	if t.BronzeMax.IsNegative() {
		return errors.New("bronze threshold must not be negative")
	}
	if t.PrataMax.LessThanOrEqual(t.BronzeMax) {
		return errors.New("prata threshold must be greater than bronze threshold")
	}
	return nil
}

// Classify maps an amount to its tier: (-inf, BronzeMax] Bronze,
// (BronzeMax, PrataMax] Prata, above PrataMax Ouro.
func (t TierThresholds) Classify(amount decimal.Decimal) Tier {
	switch {
	case amount.LessThanOrEqual(t.BronzeMax):
		return TierBronze
	case amount.LessThanOrEqual(t.PrataMax):
		return TierPrata
	default:
		return TierOuro
	}
}
