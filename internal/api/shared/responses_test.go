package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListEnvelopeMeta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           PageParams
		wantPage       int
		wantTotalPages int64
	}{
		{name: "ExactMultiple", total: 30, page: PageParams{Skip: 0, Take: 10}, wantPage: 1, wantTotalPages: 3},
		{name: "Remainder", total: 25, page: PageParams{Skip: 10, Take: 10}, wantPage: 2, wantTotalPages: 3},
		{name: "Empty", total: 0, page: PageParams{Skip: 0, Take: 10}, wantPage: 1, wantTotalPages: 0},
		{name: "SingleRow", total: 1, page: PageParams{Skip: 0, Take: 100}, wantPage: 1, wantTotalPages: 1},
		{name: "DeepWindow", total: 1000, page: PageParams{Skip: 990, Take: 10}, wantPage: 100, wantTotalPages: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := NewListEnvelope([]string{}, tc.total, tc.page)
			assert.Equal(t, tc.total, env.Meta.Total)
			assert.Equal(t, tc.page.Skip, env.Meta.Skip)
			assert.Equal(t, tc.page.Take, env.Meta.Take)
			assert.Equal(t, tc.wantPage, env.Meta.Page)
			assert.Equal(t, tc.wantTotalPages, env.Meta.TotalPages)
		})
	}
}

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/users", nil)

	RespondWithJSON(w, r, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestRespondWithConflict(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/users", nil)

	RespondWithConflict(w, r, []string{"username"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"username"}, resp.Fields)
	assert.Contains(t, resp.Error, "username")
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/users/1", nil)
	r = r.WithContext(SetTraceID(r.Context()))

	RespondWithError(w, r, http.StatusNotFound, "user not found")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user not found", resp.Error)
	assert.Len(t, resp.TraceID, 32)
}
