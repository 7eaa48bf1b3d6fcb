package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListPlans(t *testing.T) {
	app := newTestApp(t)

	status, created := doJSON(t, app, http.MethodPost, "/plans", map[string]interface{}{
		"name":        "Gold",
		"price":       100,
		"description": "all the features",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Gold", created["name"])
	assert.NotZero(t, created["id"])

	createPlan(t, app, "Silver", 50)

	status, list := doJSONList(t, app, http.MethodGet, "/plans", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list, 2)
}

func TestGetPlan(t *testing.T) {
	app := newTestApp(t)

	id := createPlan(t, app, "Gold", 100)

	status, plan := doJSON(t, app, http.MethodGet, fmt.Sprintf("/plans/%d", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Gold", plan["name"])

	status, _ = doJSON(t, app, http.MethodGet, "/plans/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreatePlanValidation(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/plans", map[string]interface{}{
		"name":  "X",
		"price": -5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}
