package subscription

import (
	"github.com/planfox/planfox/app/models"
	"gorm.io/gorm"
)

// Repository provides DB operations used by the subscription service.
type Repository interface {
	CustomerExists(customerID uint) (bool, error)
	PlanExists(planID uint) (bool, error)
	GetPlansByIDs(planIDs []uint) ([]models.Plan, error)
	InsertEntry(entry *models.CustomerPlan) error
	LatestEntry(customerID, planID uint) (*models.CustomerPlan, error)
	ListEntriesByCustomerDesc(customerID uint) ([]models.CustomerPlan, error)
	ListEntriesByCustomer(customerID uint) ([]models.CustomerPlan, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a subscription repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CustomerExists(customerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("id = ?", customerID).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) PlanExists(planID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Where("id = ?", planID).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) GetPlansByIDs(planIDs []uint) ([]models.Plan, error) {
	var plans []models.Plan
	if len(planIDs) == 0 {
		return plans, nil
	}
	err := r.db.Where("id IN ?", planIDs).Find(&plans).Error
	return plans, err
}

// InsertEntry appends a new ledger row. Rows are never updated in place.
func (r *gormRepository) InsertEntry(entry *models.CustomerPlan) error {
	return r.db.Create(entry).Error
}

// LatestEntry returns the highest-id ledger row for the pair.
func (r *gormRepository) LatestEntry(customerID, planID uint) (*models.CustomerPlan, error) {
	var entry models.CustomerPlan
	err := r.db.
		Where("customer_id = ? AND plan_id = ?", customerID, planID).
		Order("id DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *gormRepository) ListEntriesByCustomerDesc(customerID uint) ([]models.CustomerPlan, error) {
	var entries []models.CustomerPlan
	err := r.db.Where("customer_id = ?", customerID).Order("id DESC").Find(&entries).Error
	return entries, err
}

func (r *gormRepository) ListEntriesByCustomer(customerID uint) ([]models.CustomerPlan, error) {
	var entries []models.CustomerPlan
	err := r.db.Where("customer_id = ?", customerID).Order("id").Find(&entries).Error
	return entries, err
}
