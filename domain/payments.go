package domain

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"

	PaymentMethodCash = "cash"
)

type (
	PaymentMethod struct {
		ID          string `gorm:"primaryKey;column:id" json:"id"`
		Name        string `gorm:"column:name;not null" json:"name"`
		Description string `gorm:"column:description;type:text" json:"description"`
	}

	Payment struct {
		ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
		UserID          string    `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
		PickupRequestID string    `gorm:"column:pickup_request_id;type:uuid;not null" json:"pickup_request_id"`
		PaymentMethodID string    `gorm:"column:payment_method_id;not null" json:"payment_method_id"`
		Amount          float64   `gorm:"column:amount;not null" json:"amount"`
		Status          string    `gorm:"column:status;default:completed" json:"status"`
		CreatedAt       time.Time `json:"created_at"`
	}
)

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

func (Payment) TableName() string {
	return "payments"
}
