package postgres

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		DB: db,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if err := r.DB.WithContext(ctx).Create(&invoice).Error; err != nil {
		return err
	}

	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (domain.Invoice, error) {
	var invoice domain.Invoice

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Invoice{}, errors.New("invoice not found")
		}
		return domain.Invoice{}, err
	}

	return invoice, nil
}

func (r *InvoiceRepository) FindByPaymentID(ctx context.Context, paymentID string) (domain.Invoice, error) {
	var invoice domain.Invoice

	err := r.DB.WithContext(ctx).Where("payment_id = ?", paymentID).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Invoice{}, errors.New("invoice not found for this payment")
		}
		return domain.Invoice{}, err
	}

	return invoice, nil
}

func (r *InvoiceRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Invoice, error) {
	var invoices []domain.Invoice

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	return invoices, nil
}
