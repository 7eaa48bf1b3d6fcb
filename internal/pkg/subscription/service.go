package subscription

import (
	"context"
	"errors"

	"github.com/planfox/planfox/app/models"
	"gorm.io/gorm"
)

var (
	// ErrCustomerNotFound is returned when the referenced customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrPlanNotFound is returned when the referenced plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrNotSubscribed is returned when no ledger row exists for the pair.
	ErrNotSubscribed = errors.New("customer is not linked to this plan")
	// ErrNotActive is returned when the pair has no active subscription to end.
	ErrNotActive = errors.New("subscription not found or already inactive")
	// ErrInvalidStatus is returned for a status outside active/inactive.
	ErrInvalidStatus = errors.New("invalid plan status")
)

// PlanStatus is one row of the "current plans" view: the latest ledger state
// for a plan, joined with the plan name.
type PlanStatus struct {
	PlanID   uint   `json:"plan_id"`
	PlanName string `json:"plan_name"`
	Status   string `json:"status"`
}

// HistoryEntry is one ledger row reduced to its plan and status.
type HistoryEntry struct {
	PlanID uint   `json:"plan_id"`
	Status string `json:"status"`
}

// Service records and queries the append-only customer/plan subscription ledger.
type Service struct {
	repo Repository
}

// NewService creates a subscription service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a subscription service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Subscribe appends a ledger row linking the customer to the plan with the
// given status. Both entities must exist. An already-active pair may be
// subscribed again; duplicates are permitted.
func (s *Service) Subscribe(ctx context.Context, customerID, planID uint, status string) (*models.CustomerPlan, error) {
	_ = ctx
	if status == "" {
		status = models.STATUS_ACTIVE
	}
	if !models.IsValidPlanStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.checkPair(customerID, planID); err != nil {
		return nil, err
	}

	entry := &models.CustomerPlan{
		CustomerID: customerID,
		PlanID:     planID,
		Status:     status,
	}
	if err := s.repo.InsertEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetStatus appends a row with the new status for an already-subscribed pair.
// The prior rows are left untouched so the full history survives.
func (s *Service) SetStatus(ctx context.Context, customerID, planID uint, status string) (*models.CustomerPlan, error) {
	_ = ctx
	if !models.IsValidPlanStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.checkPair(customerID, planID); err != nil {
		return nil, err
	}

	_, err := s.repo.LatestEntry(customerID, planID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotSubscribed
	}
	if err != nil {
		return nil, err
	}

	entry := &models.CustomerPlan{
		CustomerID: customerID,
		PlanID:     planID,
		Status:     status,
	}
	if err := s.repo.InsertEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Unsubscribe appends an inactive row for a pair whose latest row is active.
func (s *Service) Unsubscribe(ctx context.Context, customerID, planID uint) (*models.CustomerPlan, error) {
	_ = ctx
	if err := s.checkPair(customerID, planID); err != nil {
		return nil, err
	}

	latest, err := s.repo.LatestEntry(customerID, planID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotActive
	}
	if err != nil {
		return nil, err
	}
	if latest.Status != models.STATUS_ACTIVE {
		return nil, ErrNotActive
	}

	entry := &models.CustomerPlan{
		CustomerID: customerID,
		PlanID:     planID,
		Status:     models.STATUS_INACTIVE,
	}
	if err := s.repo.InsertEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CurrentPlans reconstructs the customer's current state from the ledger:
// scan rows highest-id first, keep the first row seen per plan, then filter
// by the requested status and join plan names.
func (s *Service) CurrentPlans(ctx context.Context, customerID uint, status string) ([]PlanStatus, error) {
	_ = ctx
	if status == "" {
		status = models.STATUS_ACTIVE
	}
	if !models.IsValidPlanStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.checkCustomer(customerID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntriesByCustomerDesc(customerID)
	if err != nil {
		return nil, err
	}

	latest := make(map[uint]models.CustomerPlan)
	order := make([]uint, 0, len(entries))
	for _, e := range entries {
		if _, seen := latest[e.PlanID]; !seen {
			latest[e.PlanID] = e
			order = append(order, e.PlanID)
		}
	}

	matching := make([]uint, 0, len(order))
	for _, planID := range order {
		if latest[planID].Status == status {
			matching = append(matching, planID)
		}
	}

	plans, err := s.repo.GetPlansByIDs(matching)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(plans))
	for _, p := range plans {
		names[p.ID] = p.Name
	}

	result := make([]PlanStatus, 0, len(matching))
	for _, planID := range matching {
		name, ok := names[planID]
		if !ok {
			// Plan row vanished underneath the ledger; skip it like the join would.
			continue
		}
		result = append(result, PlanStatus{
			PlanID:   planID,
			PlanName: name,
			Status:   latest[planID].Status,
		})
	}
	return result, nil
}

// History returns every ledger row for the customer, unfiltered.
func (s *Service) History(ctx context.Context, customerID uint) ([]HistoryEntry, error) {
	_ = ctx
	if err := s.checkCustomer(customerID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntriesByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	history := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, HistoryEntry{PlanID: e.PlanID, Status: e.Status})
	}
	return history, nil
}

func (s *Service) checkCustomer(customerID uint) error {
	ok, err := s.repo.CustomerExists(customerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCustomerNotFound
	}
	return nil
}

func (s *Service) checkPair(customerID, planID uint) error {
	if err := s.checkCustomer(customerID); err != nil {
		return err
	}
	ok, err := s.repo.PlanExists(planID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPlanNotFound
	}
	return nil
}
