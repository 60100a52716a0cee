package models

import (
	"errors"
	"strings"
)

// Product is a row of the products reference table
type Product struct {
	ID       int    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"product_name"`
	Category string `gorm:"type:varchar(100);not null" json:"category"`
}

func (p *Product) TableName() string {
	return "products"
}

// Validate validates the product fields
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	return nil
}
