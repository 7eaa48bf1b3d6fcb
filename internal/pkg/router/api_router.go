package router

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/planfox/planfox/app/controllers"
	"github.com/planfox/planfox/internal/pkg/env"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("", limiter.New(limiter.Config{
		Max:     rateLimit(),
		Storage: limiterStorage(),
	}))

	api.Post("/customers", controllers.HandleCreateCustomer)
	api.Get("/customers", controllers.HandleListCustomers)
	api.Post("/customers/login", controllers.HandleLoginCustomer)
	api.Get("/customers/:id", controllers.HandleGetCustomer)
	api.Patch("/customers/:id", controllers.HandleUpdateCustomer)
	api.Delete("/customers/:id", controllers.HandleDeleteCustomer)

	api.Get("/customers/:id/plans/history", controllers.HandleGetCustomerPlanHistory)
	api.Get("/customers/:id/plans", controllers.HandleGetCurrentCustomerPlans)
	api.Post("/customers/:id/plans/:planId", controllers.HandleSubscribeCustomerToPlan)
	api.Patch("/customers/:id/plans/:planId/set", controllers.HandleSetCustomerPlanStatus)
	api.Patch("/customers/:id/plans/:planId/unsubscribe", controllers.HandleUnsubscribeCustomerFromPlan)

	api.Post("/transactions", controllers.HandleCreateTransaction)
	api.Get("/transactions", controllers.HandleListTransactions)
	api.Post("/invoices", controllers.HandleCreateInvoice)

	api.Post("/plans", controllers.HandleCreatePlan)
	api.Get("/plans", controllers.HandleListPlans)
	api.Get("/plans/:id", controllers.HandleGetPlan)
}

func rateLimit() int {
	max, err := strconv.Atoi(env.GetEnv("RATE_LIMIT_MAX", "120"))
	if err != nil || max <= 0 {
		return 120
	}
	return max
}

// limiterStorage returns a redis-backed limiter store when enabled, otherwise
// nil so the limiter falls back to its in-memory store.
func limiterStorage() fiber.Storage {
	if env.GetEnv("REDIS_ENABLE", "false") != "true" {
		return nil
	}
	port, err := strconv.Atoi(env.GetEnv("REDIS_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	return redis.New(redis.Config{
		Host:     env.GetEnv("REDIS_HOST", "localhost"),
		Port:     port,
		Password: env.GetEnv("REDIS_PASSWORD", ""),
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
