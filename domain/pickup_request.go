package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Pickup request lifecycle. "completed" is a legal stored value but no
// endpoint drives a request there.
const (
	PickupStatusPending   = "pending"
	PickupStatusConfirmed = "confirmed"
	PickupStatusPaid      = "paid"
	PickupStatusCompleted = "completed"
)

// Address is an embedded value object, stored as JSONB on the pickup request.
type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Instructions string `json:"instructions,omitempty"`
}

// ServiceLine is one ordered (category, item, quantity) entry of a booking.
// Unit price is captured at creation so invoices survive catalog edits.
type ServiceLine struct {
	LaundryTypeID string  `json:"laundry_type_id"`
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

func (l ServiceLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type PickupRequest struct {
	ID                  string                           `gorm:"primaryKey;type:uuid" json:"id"`
	UserID              string                           `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Address             datatypes.JSONType[Address]      `gorm:"column:address;not null" json:"address"`
	TimeSlotID          string                           `gorm:"column:time_slot_id;not null" json:"time_slot_id"`
	ServiceTypeIDs      datatypes.JSONSlice[string]      `gorm:"column:service_type_ids" json:"service_type_ids"`
	ServiceLines        datatypes.JSONSlice[ServiceLine] `gorm:"column:service_lines" json:"service_lines"`
	SpecialInstructions string                           `gorm:"column:special_instructions;type:text" json:"special_instructions,omitempty"`
	Status              string                           `gorm:"column:status;default:pending" json:"status"`
	CreatedAt           time.Time                        `json:"created_at"`
}

func (PickupRequest) TableName() string {
	return "pickup_requests"
}
