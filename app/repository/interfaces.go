package repository

import (
	"github.com/planfox/planfox/app/models"
	"gorm.io/gorm"
)

// CustomerRepository defines the interface for customer-related database operations
type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	EmailExists(email string) (bool, error)
	EmailExistsExceptID(email string, id uint) (bool, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	List() ([]models.Customer, error)
	Count() (int64, error)
}

// PlanRepository defines the interface for plan catalog operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	List() ([]models.Plan, error)
	Count() (int64, error)
}

// TransactionRepository defines the interface for transaction-related database operations
type TransactionRepository interface {
	Create(transaction *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	GetByCustomerID(customerID uint) ([]models.Transaction, error)
	List(offset, limit int) ([]models.Transaction, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Customer    CustomerRepository
	Plan        PlanRepository
	Transaction TransactionRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:    NewCustomerRepository(db),
		Plan:        NewPlanRepository(db),
		Transaction: NewTransactionRepository(db),
	}
}
