package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/furnibot/internal/catalog"
)

type fakeLister struct {
	products []catalog.Product
	err      error
}

func (f *fakeLister) List(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGetProducts(t *testing.T) {
	lister := &fakeLister{products: []catalog.Product{
		{ID: 1, Title: "Стол", Description: "Кухонный стол", Price: 5000, Room: catalog.RoomKitchen},
	}}
	srv := NewServer(ServerConfig{Listen: ":0"}, lister, &fakePinger{})

	rec := doRequest(t, srv, "/Product/GetProducts")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Стол", got[0].Title)
}

func TestGetProductsEmptyListIsArray(t *testing.T) {
	srv := NewServer(ServerConfig{Listen: ":0"}, &fakeLister{}, &fakePinger{})

	rec := doRequest(t, srv, "/Product/GetProducts")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestGetProductsRepoError(t *testing.T) {
	srv := NewServer(ServerConfig{Listen: ":0"}, &fakeLister{err: errors.New("db down")}, &fakePinger{})

	rec := doRequest(t, srv, "/Product/GetProducts")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProbes(t *testing.T) {
	pinger := &fakePinger{}
	srv := NewServer(ServerConfig{Listen: ":0"}, &fakeLister{}, pinger)

	assert.Equal(t, http.StatusOK, doRequest(t, srv, "/healthz").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, srv, "/readyz").Code)

	pinger.err = errors.New("no db")
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(t, srv, "/readyz").Code)
}
