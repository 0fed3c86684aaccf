package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Month int    `json:"month" validate:"min=1,max=12"`
}

func TestDecodeJSON(t *testing.T) {
	var v sample
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","month":3}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "Ana", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sample{Name: "Ana", Month: 1}))

	err := ValidateStruct(&sample{Month: 13})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name (required)")
	assert.Contains(t, err.Error(), "Month (max)")
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-1"} {
		r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err = PathInt64(r, "id")
		assert.Error(t, err, raw)
	}
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondForbidden(w, "доступ запрещен")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Forbidden","message":"доступ запрещен"}`, w.Body.String())
}
