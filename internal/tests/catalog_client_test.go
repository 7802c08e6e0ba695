package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"meal-orders/internal/catalog"
	"meal-orders/internal/domain"
	"meal-orders/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func catalogStub(t *testing.T, items map[string]domain.ResolvedItem) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/items/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/items/"):]
		item, ok := items[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(item)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCatalogClient_ResolveItems(t *testing.T) {
	ctx := context.Background()
	server := catalogStub(t, map[string]domain.ResolvedItem{
		"item-a": {Name: "Plov", Price: 25000, Available: true},
		"item-b": {Name: "Lagman", Price: 28000, Available: false},
	})

	client := catalog.NewClient(server.URL, time.Second, nil)

	resolution, err := client.ResolveItems(ctx, []string{"item-a", "item-b", "item-a"}, nil)
	assert.NoError(t, err)

	assert.True(t, resolution.Verified)
	assert.Len(t, resolution.Items, 2)
	assert.Equal(t, "Plov", resolution.Items["item-a"].Name)
	assert.Equal(t, "item-a", resolution.Items["item-a"].ID)
	assert.False(t, resolution.Items["item-b"].Available)
	assert.Empty(t, resolution.FromFallback)
}

func TestCatalogClient_NotFoundUsesFallbackOrOmits(t *testing.T) {
	ctx := context.Background()
	server := catalogStub(t, map[string]domain.ResolvedItem{})

	client := catalog.NewClient(server.URL, time.Second, nil)

	resolution, err := client.ResolveItems(ctx, []string{"with-fb", "without-fb"},
		map[string]domain.ItemFallback{"with-fb": {Name: "Soup", Price: 50000}})
	assert.NoError(t, err)

	// A 404 is an answer, not an outage.
	assert.True(t, resolution.Verified)
	assert.Len(t, resolution.Items, 1)
	assert.Equal(t, "Soup", resolution.Items["with-fb"].Name)
	assert.True(t, resolution.FromFallback["with-fb"])
	_, present := resolution.Items["without-fb"]
	assert.False(t, present)
}

func TestCatalogClient_TransportFailure(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // every request now fails to connect

	client := catalog.NewClient(server.URL, time.Second, nil)

	t.Run("fallback_keeps_order_flowing", func(t *testing.T) {
		resolution, err := client.ResolveItems(ctx, []string{"item-a"},
			map[string]domain.ItemFallback{"item-a": {Name: "Plov", Price: 25000}})
		assert.NoError(t, err)

		assert.False(t, resolution.Verified)
		assert.True(t, resolution.FromFallback["item-a"])
		assert.Equal(t, 25000.0, resolution.Items["item-a"].Price)
	})

	t.Run("no_fallback_is_fatal", func(t *testing.T) {
		resolution, err := client.ResolveItems(ctx, []string{"item-a"}, nil)
		assert.ErrorIs(t, err, catalog.ErrCatalogUnavailable)
		assert.NotNil(t, resolution)
		assert.False(t, resolution.Verified)
	})
}

func TestCatalogClient_ServerError(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, time.Second, nil)

	_, err := client.ResolveItems(ctx, []string{"item-a"}, nil)
	assert.ErrorIs(t, err, catalog.ErrCatalogUnavailable)
}

func TestCatalogClient_CacheShortCircuitsLookups(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache := storage.NewRedisPriceCache(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Second)

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(domain.ResolvedItem{Name: "Plov", Price: 25000, Available: true})
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, time.Second, cache)

	first, err := client.ResolveItems(ctx, []string{"item-a"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	second, err := client.ResolveItems(ctx, []string{"item-a"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second lookup must be served from cache")

	assert.Equal(t, first.Items["item-a"], second.Items["item-a"])
	assert.True(t, second.Verified)
}

func TestCatalogClient_CacheExpiryFallsThrough(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache := storage.NewRedisPriceCache(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Second)

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(domain.ResolvedItem{Name: "Plov", Price: 25000, Available: true})
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, time.Second, cache)

	_, err := client.ResolveItems(ctx, []string{"item-a"}, nil)
	assert.NoError(t, err)

	mr.FastForward(31 * time.Second)

	_, err = client.ResolveItems(ctx, []string{"item-a"}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRedisPriceCache_RoundTrip(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	cache := storage.NewRedisPriceCache(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)

	key := cache.ItemKey("item-a")
	assert.Equal(t, "catalog:item:item-a", key)

	missing, err := cache.GetItem(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, missing)

	item := &domain.ResolvedItem{ID: "item-a", Name: "Plov", Price: 25000, Available: true}
	assert.NoError(t, cache.SetItem(ctx, key, item))

	got, err := cache.GetItem(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, item, got)
}
