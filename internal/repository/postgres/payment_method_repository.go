package postgres

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	DB *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		DB: db,
	}
}

func (r *PaymentMethodRepository) FindAll(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod

	if err := r.DB.WithContext(ctx).Order("id").Find(&methods).Error; err != nil {
		return nil, err
	}

	return methods, nil
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id string) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentMethod{}, errors.New("payment method not found")
		}
		return domain.PaymentMethod{}, err
	}

	return method, nil
}

func (r *PaymentMethodRepository) Upsert(ctx context.Context, method *domain.PaymentMethod) error {
	var existing domain.PaymentMethod

	err := r.DB.WithContext(ctx).Where("id = ?", method.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.DB.WithContext(ctx).Create(method).Error
}
