package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := Config{BaseURL: srv.URL, TimeoutSeconds: 2}
	require.NoError(t, cfg.Normalize())
	return NewClient(cfg)
}

func TestFetchReturnsProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Product/GetProducts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Стол","description":"Кухонный стол","price":5000,"room":0},
			{"id":2,"title":"Кровать","description":"Двуспальная","price":20000,"room":1}
		]`))
	})

	products, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Стол", products[0].Title)
	assert.Equal(t, int64(20000), products[1].Price)
	assert.Equal(t, RoomBedroom, products[1].Room)
}

func TestFetchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	})

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchUnreachable(t *testing.T) {
	cfg := Config{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1}
	require.NoError(t, cfg.Normalize())
	client := NewClient(cfg)

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestFilterByRoom(t *testing.T) {
	products := []Product{
		{ID: 1, Room: RoomKitchen},
		{ID: 2, Room: RoomBedroom},
		{ID: 3, Room: RoomKitchen},
	}

	kitchen := FilterByRoom(products, RoomKitchen)
	require.Len(t, kitchen, 2)
	assert.Equal(t, int64(1), kitchen[0].ID)
	assert.Equal(t, int64(3), kitchen[1].ID)

	assert.Empty(t, FilterByRoom(products, RoomBathroom))
}

func TestParseRoom(t *testing.T) {
	room, ok := ParseRoom("kitchen")
	require.True(t, ok)
	assert.Equal(t, RoomKitchen, room)

	_, ok = ParseRoom("garage")
	assert.False(t, ok)
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{BaseURL: "http://storage/"}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, "http://storage", cfg.BaseURL)
	assert.Equal(t, 10, cfg.TimeoutSeconds)

	var empty Config
	assert.Error(t, empty.Normalize())
}
