package models

import (
	"errors"
	"strings"
)

// Client is a row of the clients reference table
type Client struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"client_id"`
	Name string `gorm:"type:varchar(255);not null" json:"client_name"`
	City string `gorm:"type:varchar(100);not null" json:"city"`
}

func (c *Client) TableName() string {
	return "clients"
}

// Validate validates the client fields
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name is required")
	}
	return nil
}
