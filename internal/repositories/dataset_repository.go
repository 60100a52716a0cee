package repositories

import (
	"context"
	"fmt"

	"investment-dashboard/internal/models"

	"gorm.io/gorm"
)

const importBatchSize = 500

// datasetRepository implements DatasetRepositoryInterface on top of gorm
type datasetRepository struct {
	db *gorm.DB
}

// NewDatasetRepository creates a new database-backed source repository
func NewDatasetRepository(db *gorm.DB) DatasetRepositoryInterface {
	return &datasetRepository{
		db: db,
	}
}

// LoadClients retrieves every client ordered by id
func (r *datasetRepository) LoadClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	return clients, nil
}

// LoadProducts retrieves every product ordered by id
func (r *datasetRepository) LoadProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// LoadInvestments retrieves every investment in row key order
func (r *datasetRepository) LoadInvestments(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&investments).Error; err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	return investments, nil
}

// ReplaceAll swaps the stored dataset for the given one in a single transaction
func (r *datasetRepository) ReplaceAll(ctx context.Context, clients []models.Client, products []models.Product, investments []models.Investment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Investment{}, &models.Product{}, &models.Client{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		if len(clients) > 0 {
			if err := tx.CreateInBatches(clients, importBatchSize).Error; err != nil {
				return fmt.Errorf("failed to import clients: %w", err)
			}
		}
		if len(products) > 0 {
			if err := tx.CreateInBatches(products, importBatchSize).Error; err != nil {
				return fmt.Errorf("failed to import products: %w", err)
			}
		}
		if len(investments) > 0 {
			if err := tx.CreateInBatches(investments, importBatchSize).Error; err != nil {
				return fmt.Errorf("failed to import investments: %w", err)
			}
		}

		return nil
	})
}

// Counts returns the number of rows in each table
func (r *datasetRepository) Counts(ctx context.Context) (*DatasetCounts, error) {
	counts := &DatasetCounts{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Client{}).Count(&counts.Clients).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if err := db.Model(&models.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Model(&models.Investment{}).Count(&counts.Investments).Error; err != nil {
		return nil, fmt.Errorf("failed to count investments: %w", err)
	}

	return counts, nil
}
