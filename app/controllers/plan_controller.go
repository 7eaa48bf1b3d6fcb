package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/planfox/planfox/app/models"
	"github.com/planfox/planfox/app/repository"
)

// HandleCreatePlan adds a plan to the catalog.
func HandleCreatePlan(c *fiber.Ctx) error {
	var plan models.Plan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}
	plan.ID = 0
	if err := plan.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if err := repo.Create(&plan); err != nil {
		return internalError(c, "Failed to create plan")
	}

	return c.JSON(plan)
}

// HandleListPlans returns the whole plan catalog.
func HandleListPlans(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPlanRepository()
	plans, err := repo.List()
	if err != nil {
		return internalError(c, "Failed to list plans")
	}
	return c.JSON(plans)
}

// HandleGetPlan returns a single plan by ID.
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Plan not found")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Plan not found")
		}
		return internalError(c, "Failed to load plan")
	}
	return c.JSON(plan)
}
