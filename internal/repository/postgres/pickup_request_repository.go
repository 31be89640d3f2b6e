package postgres

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/gorm"
)

type PickupRequestRepository struct {
	DB *gorm.DB
}

func NewPickupRequestRepository(db *gorm.DB) *PickupRequestRepository {
	return &PickupRequestRepository{
		DB: db,
	}
}

func (r *PickupRequestRepository) Create(ctx context.Context, request *domain.PickupRequest) error {
	if err := r.DB.WithContext(ctx).Create(&request).Error; err != nil {
		return err
	}

	return nil
}

func (r *PickupRequestRepository) FindByID(ctx context.Context, id string) (domain.PickupRequest, error) {
	var request domain.PickupRequest

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PickupRequest{}, errors.New("pickup request not found")
		}
		return domain.PickupRequest{}, err
	}

	return request, nil
}

func (r *PickupRequestRepository) FindByUserID(ctx context.Context, userID string) ([]domain.PickupRequest, error) {
	var requests []domain.PickupRequest

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *PickupRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.DB.WithContext(ctx).
		Model(&domain.PickupRequest{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("pickup request not found")
	}

	return nil
}
