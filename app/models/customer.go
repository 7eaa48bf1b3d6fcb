package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Description  string    `gorm:"type:text;default:null" json:"description" validate:"max=1000"`
	Email        string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	Age          int       `json:"age" validate:"gte=0,lte=150"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Customer) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// CreateCustomer builds a validated customer with a hashed password.
func CreateCustomer(name, description, email string, age int, password string) (*Customer, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		Name:         name,
		Description:  description,
		Email:        email,
		Age:          age,
		PasswordHash: pw,
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the customer's stored password
func (c *Customer) CheckPassword(password string) bool {
	return CheckPasswordHash(password, c.PasswordHash)
}

// SetPassword hashes and sets a new password for the customer
func (c *Customer) SetPassword(password string) error {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}
	c.PasswordHash = hashedPassword
	return nil
}
