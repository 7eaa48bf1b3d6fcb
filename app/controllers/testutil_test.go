package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/planfox/planfox/app/repository"
	"github.com/planfox/planfox/internal/pkg/database"
	"github.com/planfox/planfox/internal/pkg/router"
)

// newTestApp wires the full fiber app against a fresh in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.SetDB(db)
	database.Migrate(db)
	repository.ResetFactory()
	repository.InitializeFactory(db)

	app := fiber.New()
	router.InstallRouter(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	status, raw := doRaw(t, app, method, path, body)
	if len(raw) == 0 {
		return status, nil
	}
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return status, parsed
}

func doJSONList(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []map[string]interface{}) {
	t.Helper()

	status, raw := doRaw(t, app, method, path, body)
	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return status, parsed
}

func doRaw(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createCustomer(t *testing.T, app *fiber.App, name, email string) uint {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"name":     name,
		"email":    email,
		"age":      30,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	return uint(body["id"].(float64))
}

func createPlan(t *testing.T, app *fiber.App, name string, price int) uint {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/plans", map[string]interface{}{
		"name":  name,
		"price": price,
	})
	require.Equal(t, http.StatusOK, status)
	return uint(body["id"].(float64))
}
