package booking

import (
	"errors"

	"github.com/The-Batman-Code/laundry-service/business/catalog"
	"github.com/The-Batman-Code/laundry-service/domain"

	"gorm.io/datatypes"
)

// Step is the tag of the booking state machine. Transitions are strictly
// forward/backward; Payment is unreachable without a created pickup request
// and Confirmation is unreachable without a recorded payment.
type Step int

const (
	StepAddress Step = iota
	StepTimeSlot
	StepServices
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepTimeSlot:
		return "time_slot"
	case StepServices:
		return "services"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return "unknown"
}

var (
	ErrIncompleteAddress  = errors.New("street, city, state and zip are required")
	ErrNoTimeSlot         = errors.New("a time slot must be chosen")
	ErrEmptySelection     = errors.New("at least one item must be selected")
	ErrNoPaymentMethod    = errors.New("a payment method must be chosen")
	ErrUnknownItem        = errors.New("unknown service item")
	ErrCategoryUnselected = errors.New("service category is not selected")
	ErrWrongStep          = errors.New("operation not allowed at this step")
	ErrAlreadyConfirmed   = errors.New("booking already confirmed")
)

// Session holds one user's in-progress booking. State lives only in memory;
// abandoning the session loses it.
type Session struct {
	step Step

	address             domain.Address
	timeSlotID          string
	specialInstructions string

	categories []string             // selection order preserved
	lines      []domain.ServiceLine // entry order preserved

	paymentMethodID string
	pickupRequestID string
	paymentID       string

	lookup func(string) (domain.ServiceItem, bool)
}

func NewSession() *Session {
	return &Session{lookup: catalog.FindItem}
}

// NewSessionWithLookup overrides the item table, for tests.
func NewSessionWithLookup(lookup func(string) (domain.ServiceItem, bool)) *Session {
	return &Session{lookup: lookup}
}

func (s *Session) Step() Step { return s.step }

// Next advances one step after validating the gate of the current one.
// Creating the pickup request and the payment happen through Confirm and
// CompletePayment, not Next.
func (s *Session) Next() error {
	switch s.step {
	case StepAddress:
		if !s.addressComplete() {
			return ErrIncompleteAddress
		}
		s.step = StepTimeSlot
	case StepTimeSlot:
		if s.timeSlotID == "" {
			return ErrNoTimeSlot
		}
		s.step = StepServices
	case StepServices, StepPayment:
		return ErrWrongStep
	case StepConfirmation:
		return ErrAlreadyConfirmed
	}
	return nil
}

// Back moves one step backwards. Once confirmed there is no way back.
func (s *Session) Back() error {
	switch s.step {
	case StepAddress:
		return ErrWrongStep
	case StepConfirmation:
		return ErrAlreadyConfirmed
	case StepPayment:
		// leaving payment abandons the created pickup request reference
		s.pickupRequestID = ""
		s.step = StepServices
	default:
		s.step--
	}
	return nil
}

func (s *Session) SetAddress(address domain.Address) error {
	if s.step >= StepPayment {
		return ErrWrongStep
	}
	s.address = address
	return nil
}

func (s *Session) Address() domain.Address { return s.address }

func (s *Session) addressComplete() bool {
	return s.address.Street != "" && s.address.City != "" &&
		s.address.State != "" && s.address.ZipCode != ""
}

// CanContinueFromAddress mirrors the address-step gate without advancing.
func (s *Session) CanContinueFromAddress() bool {
	return s.addressComplete()
}

func (s *Session) SelectTimeSlot(slotID string) error {
	if s.step >= StepPayment {
		return ErrWrongStep
	}
	s.timeSlotID = slotID
	return nil
}

func (s *Session) TimeSlotID() string { return s.timeSlotID }

func (s *Session) SetSpecialInstructions(instructions string) {
	s.specialInstructions = instructions
}

func (s *Session) SelectCategory(laundryTypeID string) error {
	if s.step >= StepPayment {
		return ErrWrongStep
	}
	for _, id := range s.categories {
		if id == laundryTypeID {
			return nil
		}
	}
	s.categories = append(s.categories, laundryTypeID)
	return nil
}

// DeselectCategory removes the category and clears every item quantity
// grouped under it.
func (s *Session) DeselectCategory(laundryTypeID string) error {
	if s.step >= StepPayment {
		return ErrWrongStep
	}

	kept := s.categories[:0]
	for _, id := range s.categories {
		if id != laundryTypeID {
			kept = append(kept, id)
		}
	}
	s.categories = kept

	keptLines := s.lines[:0]
	for _, line := range s.lines {
		if line.LaundryTypeID != laundryTypeID {
			keptLines = append(keptLines, line)
		}
	}
	s.lines = keptLines

	return nil
}

func (s *Session) SelectedCategories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// SetItemQuantity sets the quantity for one item. Negative quantities clamp
// to zero; a zero quantity drops the line. The item's category must be
// selected first.
func (s *Session) SetItemQuantity(itemID string, quantity int) error {
	if s.step >= StepPayment {
		return ErrWrongStep
	}

	item, ok := s.lookup(itemID)
	if !ok {
		return ErrUnknownItem
	}

	if !s.categorySelected(item.LaundryTypeID) {
		return ErrCategoryUnselected
	}

	if quantity < 0 {
		quantity = 0
	}

	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			if quantity == 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = quantity
			}
			return nil
		}
	}

	if quantity == 0 {
		return nil
	}

	s.lines = append(s.lines, domain.ServiceLine{
		LaundryTypeID: item.LaundryTypeID,
		ItemID:        item.ID,
		ItemName:      item.Name,
		Quantity:      quantity,
		UnitPrice:     item.Price,
	})

	return nil
}

// AdjustItemQuantity increments or decrements one item by delta.
func (s *Session) AdjustItemQuantity(itemID string, delta int) error {
	current := 0
	for _, line := range s.lines {
		if line.ItemID == itemID {
			current = line.Quantity
			break
		}
	}
	return s.SetItemQuantity(itemID, current+delta)
}

func (s *Session) categorySelected(laundryTypeID string) bool {
	for _, id := range s.categories {
		if id == laundryTypeID {
			return true
		}
	}
	return false
}

// Lines returns the ordered (category, item, quantity) entries.
func (s *Session) Lines() []domain.ServiceLine {
	out := make([]domain.ServiceLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Quote prices the current selection. Recomputed on every call, never cached.
func (s *Session) Quote() Quote {
	return ComputeQuote(s.lines)
}

func (s *Session) ChoosePaymentMethod(methodID string) error {
	if s.step != StepPayment {
		return ErrWrongStep
	}
	s.paymentMethodID = methodID
	return nil
}

func (s *Session) PaymentMethodID() string { return s.paymentMethodID }

// Confirm validates the services gate and binds the created pickup request,
// moving the session to the payment step.
func (s *Session) Confirm(pickupRequestID string) error {
	if s.step != StepServices {
		return ErrWrongStep
	}
	if ComputeQuote(s.lines).Total <= 0 {
		return ErrEmptySelection
	}
	s.pickupRequestID = pickupRequestID
	s.step = StepPayment
	return nil
}

// CompletePayment binds the recorded payment and moves the session to the
// confirmation step.
func (s *Session) CompletePayment(paymentID string) error {
	if s.step != StepPayment {
		return ErrWrongStep
	}
	if s.paymentMethodID == "" {
		return ErrNoPaymentMethod
	}
	s.paymentID = paymentID
	s.step = StepConfirmation
	return nil
}

func (s *Session) PickupRequestID() string { return s.pickupRequestID }
func (s *Session) PaymentID() string       { return s.paymentID }

// BuildPickupRequest assembles the persistable pickup request from the
// session state. Valid only while the services gate passes.
func (s *Session) BuildPickupRequest(userID string) (domain.PickupRequest, error) {
	if !s.addressComplete() {
		return domain.PickupRequest{}, ErrIncompleteAddress
	}
	if s.timeSlotID == "" {
		return domain.PickupRequest{}, ErrNoTimeSlot
	}
	quote := ComputeQuote(s.lines)
	if quote.Total <= 0 {
		return domain.PickupRequest{}, ErrEmptySelection
	}

	request := domain.PickupRequest{
		UserID:              userID,
		Address:             datatypes.NewJSONType(s.address),
		TimeSlotID:          s.timeSlotID,
		SpecialInstructions: s.specialInstructions,
		Status:              domain.PickupStatusPending,
	}
	request.ServiceTypeIDs = append(request.ServiceTypeIDs, s.categories...)
	request.ServiceLines = append(request.ServiceLines, quote.Lines...)

	return request, nil
}
