package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/planfox/planfox/app/controllers"
	"github.com/planfox/planfox/internal/pkg/env"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	auth := basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("BASIC_AUTH_USER", "indu"): env.GetEnv("BASIC_AUTH_PASSWORD", "1234"),
		},
	})

	app.Get("/", auth, func(c *fiber.Ctx) error {
		username := c.Locals("username")
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Hello, %v!", username)})
	})

	app.Get("/metrics", auth, monitor.New())

	app.Get("/time/:isoCode", controllers.HandleGetTimeByISOCode)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
