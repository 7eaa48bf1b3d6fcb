package repository

import (
	"github.com/planfox/planfox/app/models"
	"gorm.io/gorm"
)

// customerRepository implements the CustomerRepository interface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create creates a new customer in the database
func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID retrieves a customer by their ID
func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByEmail retrieves a customer by their email address
func (r *customerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// EmailExists reports whether any customer already uses the given email.
func (r *customerRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// EmailExistsExceptID reports whether a customer other than id uses the given email.
func (r *customerRepository) EmailExistsExceptID(email string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error
	return count > 0, err
}

// Update updates an existing customer in the database
func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete removes a customer and its dependent rows in one transaction.
// Transactions and ledger entries referencing the customer go with it; leaving
// them orphaned was an explicit defect in earlier versions of this service.
func (r *customerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerPlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Customer{}, id).Error
	})
}

// List retrieves all customers
func (r *customerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("id").Find(&customers).Error
	return customers, err
}

// Count returns the total number of customers
func (r *customerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
