package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"meal-orders/internal/domain"
)

// ErrCatalogUnavailable is returned when the catalog could not be reached
// for at least one id that had no fallback. Ids that did have a fallback are
// still present in the resolution.
var ErrCatalogUnavailable = errors.New("catalog service unavailable")

// PriceCache is a short-TTL read-through cache in front of the catalog.
type PriceCache interface {
	ItemKey(itemID string) string
	GetItem(ctx context.Context, key string) (*domain.ResolvedItem, error)
	SetItem(ctx context.Context, key string, item *domain.ResolvedItem) error
}

type Client struct {
	baseURL string
	client  *http.Client
	cache   PriceCache
}

// NewClient builds a catalog client with an immutable base URL and timeout.
// cache may be nil.
func NewClient(baseURL string, timeout time.Duration, cache PriceCache) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
	}
}

// Resolution is the outcome of a batch lookup. Verified is false when any
// call failed at the transport level, meaning prices may have come from
// caller-supplied fallback data. FromFallback marks which ids did.
type Resolution struct {
	Items        map[string]domain.ResolvedItem
	Verified     bool
	FromFallback map[string]bool
}

type fetchResult struct {
	id       string
	item     *domain.ResolvedItem
	notFound bool
	err      error
}

// ResolveItems looks up every distinct id concurrently. Per-id 404s are not
// errors: the id's fallback is used if present, otherwise the id is omitted
// and the caller decides whether that is fatal. Transport failures degrade to
// fallback data where available; ErrCatalogUnavailable is returned only when
// an unreachable id had no fallback to stand in for it.
func (c *Client) ResolveItems(ctx context.Context, ids []string, fallback map[string]domain.ItemFallback) (*Resolution, error) {
	distinct := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	results := make(chan fetchResult, len(distinct))
	for _, id := range distinct {
		go func(id string) {
			results <- c.fetchOne(ctx, id)
		}(id)
	}

	resolution := &Resolution{
		Items:        make(map[string]domain.ResolvedItem, len(distinct)),
		Verified:     true,
		FromFallback: make(map[string]bool),
	}
	unavailable := false

	for range distinct {
		res := <-results
		switch {
		case res.err != nil:
			resolution.Verified = false
			log.Printf("Warning: catalog lookup failed for item %s: %v", res.id, res.err)
			if fb, ok := fallback[res.id]; ok {
				resolution.Items[res.id] = domain.ResolvedItem{
					ID: res.id, Name: fb.Name, Price: fb.Price, Available: true,
				}
				resolution.FromFallback[res.id] = true
			} else {
				unavailable = true
			}
		case res.notFound:
			if fb, ok := fallback[res.id]; ok {
				resolution.Items[res.id] = domain.ResolvedItem{
					ID: res.id, Name: fb.Name, Price: fb.Price, Available: true,
				}
				resolution.FromFallback[res.id] = true
			}
		default:
			resolution.Items[res.id] = *res.item
		}
	}

	if unavailable {
		return resolution, ErrCatalogUnavailable
	}
	return resolution, nil
}

func (c *Client) fetchOne(ctx context.Context, itemID string) fetchResult {
	if c.cache != nil {
		if item, err := c.cache.GetItem(ctx, c.cache.ItemKey(itemID)); err == nil && item != nil {
			return fetchResult{id: itemID, item: item}
		}
	}

	url := fmt.Sprintf("%s/items/%s", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fetchResult{id: itemID, err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fetchResult{id: itemID, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fetchResult{id: itemID, notFound: true}
	}
	if resp.StatusCode != http.StatusOK {
		return fetchResult{id: itemID, err: fmt.Errorf("catalog returned status %d", resp.StatusCode)}
	}

	var item domain.ResolvedItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return fetchResult{id: itemID, err: fmt.Errorf("failed to decode catalog response: %w", err)}
	}
	item.ID = itemID

	if c.cache != nil {
		if err := c.cache.SetItem(ctx, c.cache.ItemKey(itemID), &item); err != nil {
			log.Printf("Warning: failed to cache catalog item %s: %v", itemID, err)
		}
	}

	return fetchResult{id: itemID, item: &item}
}
