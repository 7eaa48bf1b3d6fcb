package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/planfox/planfox/app/repository"
	"github.com/planfox/planfox/internal/pkg/database"
	"github.com/planfox/planfox/internal/pkg/env"
	"github.com/planfox/planfox/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	app := fiber.New(fiber.Config{
		AppName: "planfox",
	})

	// recovery, request ids and logging
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// SWAGGER / OPENAPI
	if basePath, ok := findBasePath(); ok {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/docs/api/",
			FilePath: basePath + "public/docs/v1/openapi.yml",
			Path:     "v1",
		}))
	} else {
		log.Println("OpenAPI document not found, /docs/api/v1 disabled")
	}

	// ROUTER
	router.InstallRouter(app)

	return app
}

// findBasePath locates the project root so the binary works from the repo root
// and from cmd/planfox.
func findBasePath() (string, bool) {
	basePaths := []string{
		"./",
		"../../",
		"../../../",
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public/docs/v1/openapi.yml"); err == nil {
			return path, true
		}
	}
	return "", false
}
