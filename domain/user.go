package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          string         `gorm:"primaryKey;type:uuid" json:"id"`
	Email       string         `gorm:"column:email;unique;not null" json:"email"`
	FullName    string         `gorm:"column:full_name;not null" json:"full_name"`
	PhoneNumber string         `gorm:"column:phone_number;not null" json:"phone_number"`
	Password    string         `gorm:"column:password;not null" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
