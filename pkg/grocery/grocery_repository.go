package grocery

import (
	"context"
	"errors"
	"time"

	"plateplan-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		GetPricesByItemName(ctx context.Context, itemName string) ([]*entities.GroceryPrice, error)
		UpsertPrice(ctx context.Context, itemName string, storeName string, price float64, unitMeasure string) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) GetPricesByItemName(ctx context.Context, itemName string) ([]*entities.GroceryPrice, error) {
	var prices []*entities.GroceryPrice
	if err := r.db.WithContext(ctx).
		Where("LOWER(item_name) = LOWER(?)", itemName).
		Order("price asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *groceryRepository) UpsertPrice(ctx context.Context, itemName string, storeName string, price float64, unitMeasure string) error {
	var existing entities.GroceryPrice
	err := r.db.WithContext(ctx).
		Where("LOWER(item_name) = LOWER(?) AND LOWER(store_name) = LOWER(?)", itemName, storeName).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		record := &entities.GroceryPrice{
			ID:          uuid.New(),
			ItemName:    itemName,
			StoreName:   storeName,
			Price:       price,
			UnitMeasure: unitMeasure,
			LastUpdated: time.Now(),
		}
		return r.db.WithContext(ctx).Create(record).Error
	}

	existing.Price = price
	if unitMeasure != "" {
		existing.UnitMeasure = unitMeasure
	}
	existing.LastUpdated = time.Now()
	return r.db.WithContext(ctx).Save(&existing).Error
}
