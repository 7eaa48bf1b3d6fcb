package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Transaction is a single financial record tied to a customer.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Amount      int       `gorm:"not null" json:"amount" validate:"required"`
	Description string    `gorm:"type:text" json:"description" validate:"max=1000"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id" validate:"required"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (t *Transaction) Validate() error {
	v := validator.New()

	return v.Struct(t)
}
