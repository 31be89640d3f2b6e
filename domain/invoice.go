package domain

import (
	"time"

	"gorm.io/datatypes"
)

const InvoiceStatusIssued = "issued"

// Invoice is synthesized by the backend when a payment is recorded and is
// read-only thereafter. Lines are copied from the pickup request at issue time.
type Invoice struct {
	ID                string                           `gorm:"primaryKey;type:uuid" json:"id"`
	UserID            string                           `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	PickupRequestID   string                           `gorm:"column:pickup_request_id;type:uuid;not null" json:"pickup_request_id"`
	PaymentID         string                           `gorm:"column:payment_id;type:uuid;not null;index" json:"payment_id"`
	Amount            float64                          `gorm:"column:amount;not null" json:"amount"`
	Status            string                           `gorm:"column:status;default:issued" json:"status"`
	Lines             datatypes.JSONSlice[ServiceLine] `gorm:"column:lines" json:"lines,omitempty"`
	CreatedAt         time.Time                        `json:"created_at"`
	EstimatedDelivery time.Time                        `gorm:"column:estimated_delivery;not null" json:"estimated_delivery"`
}

func (Invoice) TableName() string {
	return "invoices"
}
