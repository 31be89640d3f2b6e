package pickup

import (
	"context"
	"errors"

	"github.com/The-Batman-Code/laundry-service/business/booking"
	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
	"github.com/The-Batman-Code/laundry-service/pkg/metrics"

	"github.com/google/uuid"
)

// PickupRequestRepository contract interface
type PickupRequestRepository interface {
	Create(ctx context.Context, request *domain.PickupRequest) error
	FindByID(ctx context.Context, id string) (domain.PickupRequest, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.PickupRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// TimeSlotProvider contract interface
type TimeSlotProvider interface {
	IsValidSlot(slotID string) bool
}

// ItemSelection is one submitted (item, quantity) pair.
type ItemSelection struct {
	ItemID   string
	Quantity int
}

// CreateInput carries everything the booking form collects.
type CreateInput struct {
	Address             domain.Address
	TimeSlotID          string
	ServiceTypeIDs      []string
	Items               []ItemSelection
	SpecialInstructions string
}

var ErrNotOwner = errors.New("not authorized to access this pickup request")

type pickupService struct {
	pickupRepo PickupRequestRepository
	slots      TimeSlotProvider
}

func NewPickupService(pickupRepo PickupRequestRepository, slots TimeSlotProvider) *pickupService {
	return &pickupService{
		pickupRepo: pickupRepo,
		slots:      slots,
	}
}

// Create runs the submitted form through the booking state machine, so every
// step gate (address, slot, nonzero selection) applies server-side, then
// persists the assembled pickup request.
func (s *pickupService) Create(ctx context.Context, userID string, input CreateInput) (domain.PickupRequest, error) {
	if !s.slots.IsValidSlot(input.TimeSlotID) {
		return domain.PickupRequest{}, booking.ErrNoTimeSlot
	}

	session := booking.NewSession()
	if err := session.SetAddress(input.Address); err != nil {
		return domain.PickupRequest{}, err
	}
	if err := session.SelectTimeSlot(input.TimeSlotID); err != nil {
		return domain.PickupRequest{}, err
	}
	session.SetSpecialInstructions(input.SpecialInstructions)

	for _, typeID := range input.ServiceTypeIDs {
		if err := session.SelectCategory(typeID); err != nil {
			return domain.PickupRequest{}, err
		}
	}

	for _, selection := range input.Items {
		if err := session.SetItemQuantity(selection.ItemID, selection.Quantity); err != nil {
			logger.Error("Rejected service item selection", "item_id", selection.ItemID, "error", err)
			return domain.PickupRequest{}, err
		}
	}

	request, err := session.BuildPickupRequest(userID)
	if err != nil {
		return domain.PickupRequest{}, err
	}
	request.ID = uuid.NewString()

	if err := s.pickupRepo.Create(ctx, &request); err != nil {
		logger.Error("Failed to create pickup request", err)
		return domain.PickupRequest{}, err
	}

	metrics.PickupRequestsCreated.Inc()
	logger.Info("Pickup request created", "pickup_request_id", request.ID, "user_id", userID)

	return request, nil
}

func (s *pickupService) GetByID(ctx context.Context, id, userID string) (domain.PickupRequest, error) {
	request, err := s.pickupRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get pickup request", err)
		return domain.PickupRequest{}, err
	}

	if request.UserID != userID {
		return domain.PickupRequest{}, ErrNotOwner
	}

	return request, nil
}

func (s *pickupService) GetAllForUser(ctx context.Context, userID string) ([]domain.PickupRequest, error) {
	requests, err := s.pickupRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list pickup requests", err)
		return nil, err
	}

	return requests, nil
}
