package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetCustomer(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"name":        "Ana Torres",
		"description": "premium prospect",
		"email":       "ana@example.com",
		"age":         28,
		"password":    "secret123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Ana Torres", created["name"])
	assert.Equal(t, "ana@example.com", created["email"])
	assert.NotContains(t, created, "password_hash")

	id := uint(created["id"].(float64))
	status, fetched := doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created["name"], fetched["name"])
	assert.Equal(t, created["email"], fetched["email"])
	assert.Equal(t, created["age"], fetched["age"])
	assert.Equal(t, created["id"], fetched["id"])
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	createCustomer(t, app, "First", "dup@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"name":     "Second",
		"email":    "dup@example.com",
		"age":      40,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "validation_error", body["error"])
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/customers", map[string]interface{}{
		"name":     "Bad Email",
		"email":    "not-an-email",
		"age":      22,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestListCustomers(t *testing.T) {
	app := newTestApp(t)

	createCustomer(t, app, "One", "one@example.com")
	createCustomer(t, app, "Two", "two@example.com")

	status, list := doJSONList(t, app, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list, 2)
}

func TestPartialUpdateLeavesOtherFieldsUntouched(t *testing.T) {
	app := newTestApp(t)

	id := createCustomer(t, app, "Keep Me", "keep@example.com")

	status, updated := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/customers/%d", id), map[string]interface{}{
		"age": 40,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(40), updated["age"])
	assert.Equal(t, "Keep Me", updated["name"])
	assert.Equal(t, "keep@example.com", updated["email"])

	status, fetched := doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(40), fetched["age"])
	assert.Equal(t, "Keep Me", fetched["name"])
}

func TestUpdateCustomerEmailConflict(t *testing.T) {
	app := newTestApp(t)

	createCustomer(t, app, "Holder", "held@example.com")
	id := createCustomer(t, app, "Mover", "mover@example.com")

	status, _ := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/customers/%d", id), map[string]interface{}{
		"email": "held@example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPatch, "/customers/999", map[string]interface{}{
		"age": 50,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteCustomer(t *testing.T) {
	app := newTestApp(t)

	id := createCustomer(t, app, "Doomed", "doomed@example.com")

	status, body := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["detail"])

	status, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteCustomerRemovesDependents(t *testing.T) {
	app := newTestApp(t)

	id := createCustomer(t, app, "Parent", "parent@example.com")
	planID := createPlan(t, app, "Gold", 100)

	status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/customers/%d/plans/%d", id, planID), nil)
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, "/transactions", map[string]interface{}{
		"amount":      50,
		"description": "setup fee",
		"customer_id": id,
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])
}

func TestLoginCustomer(t *testing.T) {
	app := newTestApp(t)

	createCustomer(t, app, "Login User", "login@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/customers/login", map[string]interface{}{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], "Login User")

	status, wrongPw := doJSON(t, app, http.MethodPost, "/customers/login", map[string]interface{}{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, unknown := doJSON(t, app, http.MethodPost, "/customers/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Unknown email and wrong password are indistinguishable.
	assert.Equal(t, wrongPw, unknown)
}
