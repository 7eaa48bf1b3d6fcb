package repository

import (
	"github.com/planfox/planfox/app/models"
	"gorm.io/gorm"
)

// transactionRepository implements the TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction in the database
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

// GetByID retrieves a transaction by its ID
func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// GetByCustomerID retrieves all transactions for a customer
func (r *transactionRepository) GetByCustomerID(customerID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Where("customer_id = ?", customerID).Order("id").Find(&transactions).Error
	return transactions, err
}

// List retrieves a paginated window of transactions in insertion order
func (r *transactionRepository) List(offset, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&transactions).Error
	return transactions, err
}

// Count returns the total number of transactions
func (r *transactionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Count(&count).Error
	return count, err
}
