package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimeByISOCode(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/time/co", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], "Colombia")
	assert.NotEmpty(t, body["time"])
}

func TestGetTimeUnknownCode(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/time/XX", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body["error"])
}
