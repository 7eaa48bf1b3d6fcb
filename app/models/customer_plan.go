package models

import "time"

const (
	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
)

// CustomerPlan is one immutable ledger row recording a customer-plan-status
// association. Rows are only ever inserted; for a (customer_id, plan_id) pair
// the row with the highest id is authoritative.
type CustomerPlan struct {
	ID         uint      `gorm:"primaryKey;index:idx_customer_plans_pair,priority:3" json:"id"`
	CustomerID uint      `gorm:"not null;index:idx_customer_plans_pair,priority:1" json:"customer_id"`
	PlanID     uint      `gorm:"not null;index:idx_customer_plans_pair,priority:2" json:"plan_id"`
	Status     string    `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// IsValidPlanStatus reports whether s is a recognized subscription status.
func IsValidPlanStatus(s string) bool {
	return s == STATUS_ACTIVE || s == STATUS_INACTIVE
}
