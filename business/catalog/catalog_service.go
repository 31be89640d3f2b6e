package catalog

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
)

// LaundryTypeRepository contract interface
type LaundryTypeRepository interface {
	FindAll(ctx context.Context) ([]domain.LaundryType, error)
	FindByID(ctx context.Context, id string) (domain.LaundryType, error)
	Upsert(ctx context.Context, laundryType *domain.LaundryType) error
}

// PaymentMethodRepository contract interface
type PaymentMethodRepository interface {
	FindAll(ctx context.Context) ([]domain.PaymentMethod, error)
	FindByID(ctx context.Context, id string) (domain.PaymentMethod, error)
	Upsert(ctx context.Context, method *domain.PaymentMethod) error
}

type catalogService struct {
	laundryTypeRepo   LaundryTypeRepository
	paymentMethodRepo PaymentMethodRepository
}

func NewCatalogService(laundryTypeRepo LaundryTypeRepository, paymentMethodRepo PaymentMethodRepository) *catalogService {
	return &catalogService{
		laundryTypeRepo:   laundryTypeRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

func (s *catalogService) GetLaundryTypes(ctx context.Context) ([]domain.LaundryType, error) {
	types, err := s.laundryTypeRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find laundry types", err)
		return nil, err
	}

	return types, nil
}

func (s *catalogService) GetLaundryTypeByID(ctx context.Context, id string) (domain.LaundryType, error) {
	if id == "" {
		return domain.LaundryType{}, errors.New("invalid laundry type id")
	}

	laundryType, err := s.laundryTypeRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find laundry type", err)
		return domain.LaundryType{}, err
	}

	return laundryType, nil
}

func (s *catalogService) GetPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.paymentMethodRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find payment methods", err)
		return nil, err
	}

	return methods, nil
}

func (s *catalogService) GetServiceItems(ctx context.Context) []domain.ServiceItem {
	return ServiceItems()
}

// Seed writes the static reference data (laundry types and payment methods)
// into the store. Existing rows are left alone.
func (s *catalogService) Seed(ctx context.Context) error {
	for i := range seedLaundryTypes {
		if err := s.laundryTypeRepo.Upsert(ctx, &seedLaundryTypes[i]); err != nil {
			logger.Error("Failed to seed laundry type", err)
			return err
		}
	}

	for i := range seedPaymentMethods {
		if err := s.paymentMethodRepo.Upsert(ctx, &seedPaymentMethods[i]); err != nil {
			logger.Error("Failed to seed payment method", err)
			return err
		}
	}

	logger.Info("Reference data seeded", "laundry_types", len(seedLaundryTypes), "payment_methods", len(seedPaymentMethods))

	return nil
}
