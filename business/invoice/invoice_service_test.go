package invoice

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/The-Batman-Code/laundry-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeInvoiceRepo struct {
	invoices map[string]domain.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]domain.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) FindByID(ctx context.Context, id string) (domain.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return domain.Invoice{}, errors.New("invoice not found")
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) FindByPaymentID(ctx context.Context, paymentID string) (domain.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.PaymentID == paymentID {
			return inv, nil
		}
	}
	return domain.Invoice{}, errors.New("invoice not found for this payment")
}

func (r *fakeInvoiceRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakePickupRepo struct {
	requests map[string]domain.PickupRequest
}

func (r *fakePickupRepo) FindByID(ctx context.Context, id string) (domain.PickupRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return domain.PickupRequest{}, errors.New("pickup request not found")
	}
	return req, nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	return domain.User{ID: id, Email: "jane@example.com", FullName: "Jane Doe"}, nil
}

func testRequest() domain.PickupRequest {
	return domain.PickupRequest{
		ID:         "pr-1",
		UserID:     "user-1",
		TimeSlotID: "2026-09-01-morning",
		Address: datatypes.NewJSONType(domain.Address{
			Street:  "123 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62704",
		}),
		SpecialInstructions: "ring the bell twice",
		ServiceLines: datatypes.JSONSlice[domain.ServiceLine]{
			{LaundryTypeID: "regular", ItemID: "tshirt", ItemName: "T-Shirt", Quantity: 2, UnitPrice: 25},
			{LaundryTypeID: "bag", ItemID: "small_bag", ItemName: "Small Bag", Quantity: 1, UnitPrice: 150},
		},
	}
}

func testPayment() domain.Payment {
	return domain.Payment{
		ID:              "pay-1",
		UserID:          "user-1",
		PickupRequestID: "pr-1",
		PaymentMethodID: "credit_card",
		Amount:          216,
		Status:          domain.PaymentStatusCompleted,
	}
}

func newService() (*invoiceService, *fakeInvoiceRepo) {
	repo := newFakeInvoiceRepo()
	pickups := &fakePickupRepo{requests: map[string]domain.PickupRequest{"pr-1": testRequest()}}
	return NewInvoiceService(repo, pickups, fakeUserRepo{}), repo
}

func TestIssue(t *testing.T) {
	service, repo := newService()

	before := time.Now()
	inv, err := service.Issue(context.Background(), testPayment(), testRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "user-1", inv.UserID)
	assert.Equal(t, "pr-1", inv.PickupRequestID)
	assert.Equal(t, "pay-1", inv.PaymentID)
	assert.Equal(t, 216.0, inv.Amount)
	assert.Equal(t, domain.InvoiceStatusIssued, inv.Status)
	assert.Len(t, inv.Lines, 2)

	// delivery promise is two days out
	expected := before.Add(48 * time.Hour)
	assert.WithinDuration(t, expected, inv.EstimatedDelivery, 5*time.Second)

	_, ok := repo.invoices[inv.ID]
	assert.True(t, ok)
}

func TestGetByIDOwnership(t *testing.T) {
	service, _ := newService()

	inv, err := service.Issue(context.Background(), testPayment(), testRequest())
	require.NoError(t, err)

	got, err := service.GetByID(context.Background(), inv.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = service.GetByID(context.Background(), inv.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = service.GetByID(context.Background(), "missing", "user-1")
	assert.EqualError(t, err, "invoice not found")
}

func TestGetByPaymentID(t *testing.T) {
	service, _ := newService()

	inv, err := service.Issue(context.Background(), testPayment(), testRequest())
	require.NoError(t, err)

	got, err := service.GetByPaymentID(context.Background(), "pay-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	_, err = service.GetByPaymentID(context.Background(), "pay-1", "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = service.GetByPaymentID(context.Background(), "missing", "user-1")
	assert.EqualError(t, err, "invoice not found for this payment")
}

func TestGetAllForUser(t *testing.T) {
	service, _ := newService()

	_, err := service.Issue(context.Background(), testPayment(), testRequest())
	require.NoError(t, err)

	mine, err := service.GetAllForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := service.GetAllForUser(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestRenderPDF(t *testing.T) {
	service, _ := newService()

	inv, err := service.Issue(context.Background(), testPayment(), testRequest())
	require.NoError(t, err)

	pdf, err := service.RenderPDF(context.Background(), inv.ID, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")

	_, err = service.RenderPDF(context.Background(), inv.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)
}
