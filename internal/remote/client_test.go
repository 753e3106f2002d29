package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/remote"
)

func TestClient_List(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/pantry/items", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.PantryItem{
			{ID: "a", Name: "Milk"},
			{ID: "b", Name: "Rice"},
		})
	}))
	defer ts.Close()

	items, err := remote.NewClient(ts.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestClient_CreateReturnsStoreVersion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pantry/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var item domain.PantryItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		item.ID = "assigned-by-store"
		item.Status = domain.StatusExpiring
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	}))
	defer ts.Close()

	created, err := remote.NewClient(ts.URL).Create(context.Background(), domain.PantryItem{Name: "Eggs"})
	require.NoError(t, err)
	assert.Equal(t, "assigned-by-store", created.ID)
	assert.Equal(t, domain.StatusExpiring, created.Status)
}

func TestClient_UpdateTargetsItemPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/pantry/items/abc", r.URL.Path)
		json.NewEncoder(w).Encode(domain.PantryItem{ID: "abc", Name: "Eggs"})
	}))
	defer ts.Close()

	updated, err := remote.NewClient(ts.URL).Update(context.Background(), "abc", domain.PantryItem{Name: "Eggs"})
	require.NoError(t, err)
	assert.Equal(t, "abc", updated.ID)
}

func TestClient_Delete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/pantry/items/abc", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	require.NoError(t, remote.NewClient(ts.URL).Delete(context.Background(), "abc"))
}

func TestClient_APIErrorMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "item not found"})
	}))
	defer ts.Close()

	err := remote.NewClient(ts.URL).Delete(context.Background(), "ghost")
	require.Error(t, err)

	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "item not found", apiErr.Message)
}

func TestClient_APIErrorWithoutBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := remote.NewClient(ts.URL).List(context.Background())
	var apiErr *remote.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClient_WasteStats(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/waste/enhanced", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"trend":   []map[string]any{{"label": "Mon", "value": 1}},
			"summary": map[string]any{"total": "1 item", "delta": "100%"},
		})
	}))
	defer ts.Close()

	stats, err := remote.NewClient(ts.URL).WasteStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.Trend, 1)
	assert.Equal(t, "1 item", stats.Summary.Total)
}
