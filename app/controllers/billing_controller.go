package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/planfox/planfox/app/models"
	"github.com/planfox/planfox/app/repository"
)

type transactionCreateRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
	CustomerID  uint   `json:"customer_id"`
}

// HandleCreateTransaction records a financial transaction for an existing
// customer. Nothing is written when the customer is missing.
func HandleCreateTransaction(c *fiber.Ctx) error {
	var req transactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}

	customerRepo := repository.GetGlobalFactory().GetCustomerRepository()
	if _, err := customerRepo.GetByID(req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Customer doesn't exist")
		}
		return internalError(c, "Failed to load customer")
	}

	transaction := &models.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		CustomerID:  req.CustomerID,
	}
	if err := transaction.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}

	transactionRepo := repository.GetGlobalFactory().GetTransactionRepository()
	if err := transactionRepo.Create(transaction); err != nil {
		return internalError(c, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(transaction)
}

// HandleListTransactions returns the [skip, skip+limit) window of all
// transactions plus the total count.
func HandleListTransactions(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 10)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	repo := repository.GetGlobalFactory().GetTransactionRepository()
	total, err := repo.Count()
	if err != nil {
		return internalError(c, "Failed to count transactions")
	}
	items, err := repo.List(skip, limit)
	if err != nil {
		return internalError(c, "Failed to list transactions")
	}
	if items == nil {
		items = []models.Transaction{}
	}

	return c.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

// HandleCreateInvoice echoes the invoice payload with the total recomputed
// from the embedded transactions. The derived sum is authoritative; a supplied
// total that disagrees is rejected.
func HandleCreateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid payload"})
	}

	computed := invoice.AmountTotal()
	if invoice.Total != 0 && invoice.Total != computed {
		return unprocessable(c, "total does not match the sum of transaction amounts")
	}
	invoice.Total = computed

	return c.JSON(invoice)
}
