package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
	"github.com/The-Batman-Code/laundry-service/pkg/metrics"

	"github.com/google/uuid"
)

// Deliveries are promised two days after payment.
const deliveryLeadTime = 48 * time.Hour

// InvoiceRepository contract interface
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	FindByID(ctx context.Context, id string) (domain.Invoice, error)
	FindByPaymentID(ctx context.Context, paymentID string) (domain.Invoice, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Invoice, error)
}

// PickupRequestRepository contract interface
type PickupRequestRepository interface {
	FindByID(ctx context.Context, id string) (domain.PickupRequest, error)
}

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

var ErrNotOwner = errors.New("not authorized to access this invoice")

type invoiceService struct {
	invoiceRepo InvoiceRepository
	pickupRepo  PickupRequestRepository
	userRepo    UserRepository
}

func NewInvoiceService(invoiceRepo InvoiceRepository, pickupRepo PickupRequestRepository, userRepo UserRepository) *invoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		pickupRepo:  pickupRepo,
		userRepo:    userRepo,
	}
}

// Issue synthesizes the invoice for a recorded payment, itemized with the
// pickup request's service lines. Invoices are read-only after this.
func (s *invoiceService) Issue(ctx context.Context, payment domain.Payment, request domain.PickupRequest) (domain.Invoice, error) {
	now := time.Now()

	inv := domain.Invoice{
		ID:                uuid.NewString(),
		UserID:            payment.UserID,
		PickupRequestID:   payment.PickupRequestID,
		PaymentID:         payment.ID,
		Amount:            payment.Amount,
		Status:            domain.InvoiceStatusIssued,
		Lines:             request.ServiceLines,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}

	if err := s.invoiceRepo.Create(ctx, &inv); err != nil {
		logger.Error("Failed to create invoice", err)
		return domain.Invoice{}, err
	}

	logger.Info("Invoice issued", "invoice_id", inv.ID, "payment_id", payment.ID)

	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id, userID string) (domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get invoice", err)
		return domain.Invoice{}, err
	}

	if inv.UserID != userID {
		return domain.Invoice{}, ErrNotOwner
	}

	return inv, nil
}

func (s *invoiceService) GetByPaymentID(ctx context.Context, paymentID, userID string) (domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		logger.Error("Failed to get invoice by payment", err)
		return domain.Invoice{}, err
	}

	if inv.UserID != userID {
		return domain.Invoice{}, ErrNotOwner
	}

	return inv, nil
}

func (s *invoiceService) GetAllForUser(ctx context.Context, userID string) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list invoices", err)
		return nil, err
	}

	return invoices, nil
}

// RenderPDF lays out the printable document for one invoice, joining the
// related pickup request and user records.
func (s *invoiceService) RenderPDF(ctx context.Context, id, userID string) ([]byte, error) {
	inv, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	request, err := s.pickupRepo.FindByID(ctx, inv.PickupRequestID)
	if err != nil {
		logger.Error("Failed to get pickup request for invoice", err)
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, inv.UserID)
	if err != nil {
		logger.Error("Failed to get user for invoice", err)
		return nil, err
	}

	pdf, err := RenderPDF(inv, request, user)
	if err != nil {
		logger.Error("Failed to render invoice PDF", err)
		return nil, err
	}

	metrics.InvoicePDFsRendered.Inc()

	return pdf, nil
}
