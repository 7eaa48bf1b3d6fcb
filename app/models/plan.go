package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Plan is a catalog entry customers can subscribe to.
type Plan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	Price       int       `gorm:"not null" json:"price" validate:"gte=0"`
	Description string    `gorm:"type:text;default:null" json:"description" validate:"max=1000"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Plan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
