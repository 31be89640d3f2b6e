package domain

import (
	"time"
)

// CREATE TABLE public.laundry_types (
//     id          TEXT PRIMARY KEY,
//     name        TEXT NOT NULL,
//     price       NUMERIC(10,2) NOT NULL,
//     description TEXT NOT NULL,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type LaundryType struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

func (LaundryType) TableName() string {
	return "laundry_types"
}

// ServiceItem is a priced item grouped under a LaundryType. The table is
// static reference data held in code, not persisted.
type ServiceItem struct {
	ID            string  `json:"id"`
	LaundryTypeID string  `json:"laundry_type_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
}
