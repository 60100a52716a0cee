package repositories

import (
	"context"
	"io"

	"investment-dashboard/internal/models"
)

// SourceRepositoryInterface reads the three input tables
type SourceRepositoryInterface interface {
	LoadClients(ctx context.Context) ([]models.Client, error)
	LoadProducts(ctx context.Context) ([]models.Product, error)
	LoadInvestments(ctx context.Context) ([]models.Investment, error)
}

// DatasetRepositoryInterface is a database-backed source that can also be
// replaced wholesale from another source
type DatasetRepositoryInterface interface {
	SourceRepositoryInterface
	ReplaceAll(ctx context.Context, clients []models.Client, products []models.Product, investments []models.Investment) error
	Counts(ctx context.Context) (*DatasetCounts, error)
}

// ObjectStoreInterface opens and creates input files addressed by a local
// path or a gs://bucket/object URL
type ObjectStoreInterface interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Create(ctx context.Context, path string) (io.WriteCloser, error)
}

// DatasetCounts holds the row count of each table
type DatasetCounts struct {
	Clients     int64
	Products    int64
	Investments int64
}
