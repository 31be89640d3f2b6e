package postgres

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/gorm"
)

type LaundryTypeRepository struct {
	DB *gorm.DB
}

func NewLaundryTypeRepository(db *gorm.DB) *LaundryTypeRepository {
	return &LaundryTypeRepository{
		DB: db,
	}
}

func (r *LaundryTypeRepository) FindAll(ctx context.Context) ([]domain.LaundryType, error) {
	var types []domain.LaundryType

	if err := r.DB.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}

	return types, nil
}

func (r *LaundryTypeRepository) FindByID(ctx context.Context, id string) (domain.LaundryType, error) {
	var laundryType domain.LaundryType

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&laundryType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LaundryType{}, errors.New("laundry type not found")
		}
		return domain.LaundryType{}, err
	}

	return laundryType, nil
}

// Upsert inserts the laundry type unless a row with the same id already
// exists. Used by startup seeding only.
func (r *LaundryTypeRepository) Upsert(ctx context.Context, laundryType *domain.LaundryType) error {
	var existing domain.LaundryType

	err := r.DB.WithContext(ctx).Where("id = ?", laundryType.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.DB.WithContext(ctx).Create(laundryType).Error
}
