package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/planfox/planfox/app/models"
	"github.com/planfox/planfox/internal/pkg/database"
	"github.com/planfox/planfox/internal/pkg/subscription"
)

func subscriptionService() *subscription.Service {
	return subscription.NewServiceFromDB(database.GetDB())
}

// HandleSubscribeCustomerToPlan appends a new ledger entry linking the customer
// to the plan. plan_status defaults to active.
func HandleSubscribeCustomerToPlan(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}

	status := c.Query("plan_status", models.STATUS_ACTIVE)
	entry, err := subscriptionService().Subscribe(c.Context(), customerID, planID, status)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleGetCurrentCustomerPlans returns the customer's current plans filtered
// by status, reconstructed latest-wins from the ledger.
func HandleGetCurrentCustomerPlans(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Customer not found")
	}

	status := c.Query("plan_status", models.STATUS_ACTIVE)
	plans, err := subscriptionService().CurrentPlans(c.Context(), customerID, status)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(plans)
}

// HandleSetCustomerPlanStatus appends a ledger entry with the new status for an
// already-subscribed pair.
func HandleSetCustomerPlanStatus(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}

	status := c.Query("plan_status")
	entry, err := subscriptionService().SetStatus(c.Context(), customerID, planID, status)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"detail":        "Customer plan status updated successfully",
		"new_record_id": entry.ID,
	})
}

// HandleUnsubscribeCustomerFromPlan appends an inactive ledger entry when the
// pair is currently active.
func HandleUnsubscribeCustomerFromPlan(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return notFound(c, "The customer or plan doesn't exist")
	}

	entry, err := subscriptionService().Unsubscribe(c.Context(), customerID, planID)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"detail":        "Customer unsubscribed from plan",
		"new_record_id": entry.ID,
	})
}

// HandleGetCustomerPlanHistory returns every ledger entry for the customer.
func HandleGetCustomerPlanHistory(c *fiber.Ctx) error {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Customer not found")
	}

	history, err := subscriptionService().History(c.Context(), customerID)
	if err != nil {
		return subscriptionErrorResponse(c, err)
	}

	return c.JSON(history)
}

func subscriptionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, subscription.ErrCustomerNotFound):
		return notFound(c, "Customer not found")
	case errors.Is(err, subscription.ErrPlanNotFound):
		return notFound(c, "The customer or plan doesn't exist")
	case errors.Is(err, subscription.ErrNotSubscribed):
		return notFound(c, "This customer is not linked to this plan yet")
	case errors.Is(err, subscription.ErrNotActive):
		return notFound(c, "Subscription not found or already inactive")
	case errors.Is(err, subscription.ErrInvalidStatus):
		return unprocessable(c, "plan_status must be 'active' or 'inactive'")
	default:
		return internalError(c, "Failed to update subscription")
	}
}
