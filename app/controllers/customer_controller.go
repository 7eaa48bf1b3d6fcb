package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/planfox/planfox/app/models"
	"github.com/planfox/planfox/app/repository"
)

type customerCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	Password    string `json:"password"`
}

type customerUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Age         *int    `json:"age"`
	Password    *string `json:"password"`
}

type customerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleCreateCustomer registers a new customer. The duplicate-email check runs
// here as an explicit pre-insert query, not inside model validation.
func HandleCreateCustomer(c *fiber.Ctx) error {
	var req customerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}
	if len(req.Password) < 6 {
		return unprocessable(c, "password must be at least 6 characters")
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	exists, err := repo.EmailExists(req.Email)
	if err != nil {
		return internalError(c, "Failed to check email")
	}
	if exists {
		return unprocessable(c, "This email is already registered")
	}

	customer, err := models.CreateCustomer(req.Name, req.Description, req.Email, req.Age, req.Password)
	if err != nil {
		return unprocessable(c, err.Error())
	}
	if err := repo.Create(customer); err != nil {
		return internalError(c, "Failed to create customer")
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleListCustomers returns all registered customers.
func HandleListCustomers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customers, err := repo.List()
	if err != nil {
		return internalError(c, "Failed to list customers")
	}
	return c.JSON(customers)
}

// HandleGetCustomer returns a single customer by ID.
func HandleGetCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Customer not found")
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}
	return c.JSON(customer)
}

// HandleUpdateCustomer merges only the fields present in the request body into
// the stored customer. Omitted fields are left untouched.
func HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Customer not found")
	}

	var req customerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}

	if req.Email != nil && *req.Email != customer.Email {
		taken, err := repo.EmailExistsExceptID(*req.Email, customer.ID)
		if err != nil {
			return internalError(c, "Failed to check email")
		}
		if taken {
			return unprocessable(c, "This email is already registered")
		}
		customer.Email = *req.Email
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Description != nil {
		customer.Description = *req.Description
	}
	if req.Age != nil {
		customer.Age = *req.Age
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return unprocessable(c, "password must be at least 6 characters")
		}
		if err := customer.SetPassword(*req.Password); err != nil {
			return internalError(c, "Failed to set password")
		}
	}

	if err := customer.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := repo.Update(customer); err != nil {
		return internalError(c, "Failed to update customer")
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleDeleteCustomer removes a customer together with its transactions and
// ledger rows.
func HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return notFound(c, "Customer not found")
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	if _, err := repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, "Failed to load customer")
	}
	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete customer")
	}

	return c.JSON(fiber.Map{"detail": "ok"})
}

// HandleLoginCustomer checks an email/password pair. Unknown email and wrong
// password produce the same response so the two cases are indistinguishable.
func HandleLoginCustomer(c *fiber.Ctx) error {
	var req customerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loginFailed(c)
		}
		return internalError(c, "Failed to load customer")
	}
	if !customer.CheckPassword(req.Password) {
		return loginFailed(c)
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Login successful for %s", customer.Name)})
}

func loginFailed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid email or password"})
}
