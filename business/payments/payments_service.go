package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/The-Batman-Code/laundry-service/business/booking"
	"github.com/The-Batman-Code/laundry-service/business/invoice"
	"github.com/The-Batman-Code/laundry-service/domain"
	"github.com/The-Batman-Code/laundry-service/pkg/logger"
	"github.com/The-Batman-Code/laundry-service/pkg/metrics"

	"github.com/google/uuid"
)

// PaymentsRepository contract interface
type PaymentsRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id string) (domain.Payment, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Payment, error)
}

// PickupRequestRepository contract interface
type PickupRequestRepository interface {
	FindByID(ctx context.Context, id string) (domain.PickupRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PaymentMethodRepository contract interface
type PaymentMethodRepository interface {
	FindByID(ctx context.Context, id string) (domain.PaymentMethod, error)
}

// UserRepository contract interface
type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

// InvoiceIssuer contract interface
type InvoiceIssuer interface {
	Issue(ctx context.Context, payment domain.Payment, request domain.PickupRequest) (domain.Invoice, error)
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, body string, pdfAttachment []byte) error
}

type CreateInput struct {
	PickupRequestID string
	PaymentMethodID string
	Amount          float64
}

var ErrNotOwner = errors.New("not authorized to create payment for this pickup request")

const receiptSubject = "Your laundry invoice"

type paymentsService struct {
	paymentRepo PaymentsRepository
	pickupRepo  PickupRequestRepository
	methodRepo  PaymentMethodRepository
	userRepo    UserRepository
	invoiceSvc  InvoiceIssuer
	notifRepo   NotificationRepository
}

func NewPaymentsService(
	paymentRepo PaymentsRepository,
	pickupRepo PickupRequestRepository,
	methodRepo PaymentMethodRepository,
	userRepo UserRepository,
	invoiceSvc InvoiceIssuer,
	notifRepo NotificationRepository,
) *paymentsService {
	return &paymentsService{
		paymentRepo: paymentRepo,
		pickupRepo:  pickupRepo,
		methodRepo:  methodRepo,
		userRepo:    userRepo,
		invoiceSvc:  invoiceSvc,
		notifRepo:   notifRepo,
	}
}

// CreatePayment records the mocked transaction for a pickup request, flips
// the request's status and synthesizes the invoice. The amount is taken from
// the client as-is; a recomputed mismatch is logged, never rejected.
func (s *paymentsService) CreatePayment(ctx context.Context, userID string, input CreateInput) (domain.Payment, error) {
	request, err := s.pickupRepo.FindByID(ctx, input.PickupRequestID)
	if err != nil {
		logger.Error("Pickup request lookup failed for payment", err)
		return domain.Payment{}, err
	}

	if request.UserID != userID {
		return domain.Payment{}, ErrNotOwner
	}

	method, err := s.methodRepo.FindByID(ctx, input.PaymentMethodID)
	if err != nil {
		logger.Error("Unknown payment method", err)
		return domain.Payment{}, err
	}

	expected := booking.ComputeQuote(request.ServiceLines).Total
	if math.Abs(expected-input.Amount) > 0.01 {
		logger.Warn("Client amount differs from recomputed total",
			"pickup_request_id", request.ID,
			"client_amount", input.Amount,
			"recomputed", expected,
		)
	}

	// Cash settles at pickup, everything else clears immediately.
	paymentStatus := domain.PaymentStatusCompleted
	pickupStatus := domain.PickupStatusPaid
	if method.ID == domain.PaymentMethodCash {
		paymentStatus = domain.PaymentStatusPending
		pickupStatus = domain.PickupStatusConfirmed
	}

	payment := domain.Payment{
		ID:              uuid.NewString(),
		UserID:          userID,
		PickupRequestID: request.ID,
		PaymentMethodID: method.ID,
		Amount:          input.Amount,
		Status:          paymentStatus,
	}

	if err := s.paymentRepo.Create(ctx, &payment); err != nil {
		logger.Error("Failed to create payment", err)
		return domain.Payment{}, err
	}

	if err := s.pickupRepo.UpdateStatus(ctx, request.ID, pickupStatus); err != nil {
		logger.Warn("Failed to update pickup request status", err)
	}

	// The payment row and the status flip above stay recorded even when
	// invoice issuance fails, so a client retry produces a second payment.
	// This matches the published capture contract; see DESIGN.md.
	inv, err := s.invoiceSvc.Issue(ctx, payment, request)
	if err != nil {
		logger.Error("Failed to issue invoice for payment", err)
		return domain.Payment{}, err
	}

	metrics.PaymentsProcessed.WithLabelValues(method.ID).Inc()

	s.sendReceipt(ctx, inv, request)

	return payment, nil
}

// sendReceipt mails the rendered invoice. Best effort only, a mail failure
// never fails the payment.
func (s *paymentsService) sendReceipt(ctx context.Context, inv domain.Invoice, request domain.PickupRequest) {
	if s.notifRepo == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, inv.UserID)
	if err != nil {
		logger.Warn("Skipping receipt email, user lookup failed", err)
		return
	}

	pdf, err := invoice.RenderPDF(inv, request, user)
	if err != nil {
		logger.Warn("Skipping receipt attachment, render failed", err)
	}

	body := fmt.Sprintf(
		"Hi %s, your payment of %.2f was recorded. Estimated delivery: %s.",
		user.FullName, inv.Amount, inv.EstimatedDelivery.Format("2006-01-02"),
	)

	if err := s.notifRepo.SendEmail(user.FullName, user.Email, receiptSubject, body, pdf); err != nil {
		logger.Warn("Failed to send receipt email", err)
	}
}

func (s *paymentsService) GetPayment(ctx context.Context, id, userID string) (domain.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get payment", err)
		return domain.Payment{}, err
	}

	if payment.UserID != userID {
		return domain.Payment{}, errors.New("not authorized to view this payment")
	}

	return payment, nil
}

func (s *paymentsService) GetAllPayments(ctx context.Context, userID string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("Failed to list payments", err)
		return nil, err
	}

	return payments, nil
}
