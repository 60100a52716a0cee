package models

import "time"

// GenerateOptions sizes a synthetic dataset
type GenerateOptions struct {
	Clients     int
	Products    int
	Investments int
	From        time.Time
	To          time.Time
}

// GeneratedDataset holds the three synthetic tables
type GeneratedDataset struct {
	Clients     []Client
	Products    []Product
	Investments []Investment
}
