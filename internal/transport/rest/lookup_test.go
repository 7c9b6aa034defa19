package rest

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id": `+strconv.FormatInt(app.cardio, 10)+`, "name": "Cardiologist"},
		{"id": `+strconv.FormatInt(app.derma, 10)+`, "name": "Dermatologist"}
	]`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/v1/categories/"+strconv.FormatInt(app.derma, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": `+strconv.FormatInt(app.derma, 10)+`, "name": "Dermatologist"}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/v1/categories/9999", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/v1/categories/x", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, app.do(t, http.MethodDelete, "/api/v1/categories/1", nil).Code)
}

func TestDistricts(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/districts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id": `+strconv.FormatInt(app.central, 10)+`, "name": "Central"},
		{"id": `+strconv.FormatInt(app.kowloon, 10)+`, "name": "Kowloon"}
	]`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/api/v1/districts/"+strconv.FormatInt(app.kowloon, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id": `+strconv.FormatInt(app.kowloon, 10)+`, "name": "Kowloon"}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/v1/districts/9999", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/v1/districts/north", nil).Code)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/nothing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found.", decode[errorResponseBody](t, rec).Message)
}
