package postgres

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/gorm"
)

type PaymentsRepository struct {
	DB *gorm.DB
}

func NewPaymentsRepository(db *gorm.DB) *PaymentsRepository {
	return &PaymentsRepository{
		DB: db,
	}
}

func (r *PaymentsRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := r.DB.WithContext(ctx).Create(&payment).Error; err != nil {
		return err
	}

	return nil
}

func (r *PaymentsRepository) FindByID(ctx context.Context, id string) (domain.Payment, error) {
	var payment domain.Payment

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Payment{}, errors.New("payment not found")
		}
		return domain.Payment{}, err
	}

	return payment, nil
}

func (r *PaymentsRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Payment, error) {
	var payments []domain.Payment

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}
