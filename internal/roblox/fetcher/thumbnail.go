package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/jaxron/roapi.go/pkg/api"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const thumbnailsAPIURL = "https://thumbnails.roblox.com/v1"

// The thumbnails API accepts at most 100 IDs per request.
const iconBatchSize = 100

// ThumbnailFetcher handles retrieval of group icons from the Roblox API.
type ThumbnailFetcher struct {
	roAPI  *api.API
	logger *zap.Logger
}

// NewThumbnailFetcher creates a ThumbnailFetcher with the provided API client and logger.
func NewThumbnailFetcher(roAPI *api.API, logger *zap.Logger) *ThumbnailFetcher {
	return &ThumbnailFetcher{
		roAPI:  roAPI,
		logger: logger.Named("thumbnail_fetcher"),
	}
}

// GetGroupIcons retrieves icon URLs for a set of groups, keyed by group ID.
// Batches are fetched concurrently; a failed batch is logged and skipped so
// that missing icons never fail the lookup they decorate.
func (t *ThumbnailFetcher) GetGroupIcons(ctx context.Context, groupIDs []uint64) map[uint64]string {
	var (
		iconURLs = make(map[uint64]string, len(groupIDs))
		p        = pool.New().WithContext(ctx)
		mu       sync.Mutex
	)

	for start := 0; start < len(groupIDs); start += iconBatchSize {
		end := min(start+iconBatchSize, len(groupIDs))
		batch := groupIDs[start:end]

		p.Go(func(ctx context.Context) error {
			batchURLs, err := t.fetchIconBatch(ctx, batch)
			if err != nil {
				t.logger.Error("Error fetching group icons",
					zap.Int("batchSize", len(batch)),
					zap.Error(err))

				return nil // Don't fail the whole lookup for one batch
			}

			mu.Lock()

			for id, url := range batchURLs {
				iconURLs[id] = url
			}

			mu.Unlock()

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		t.logger.Error("Error during group icon fetch", zap.Error(err))
	}

	t.logger.Debug("Finished fetching group icons",
		zap.Int("totalRequested", len(groupIDs)),
		zap.Int("successfulFetches", len(iconURLs)))

	return iconURLs
}

// fetchIconBatch requests icons for a single batch of group IDs.
func (t *ThumbnailFetcher) fetchIconBatch(ctx context.Context, groupIDs []uint64) (map[uint64]string, error) {
	ids := make([]string, len(groupIDs))
	for i, id := range groupIDs {
		ids[i] = strconv.FormatUint(id, 10)
	}

	resp, err := t.roAPI.GetClient().NewRequest().
		Method(http.MethodGet).
		URL(thumbnailsAPIURL + "/groups/icons").
		Query("groupIds", strings.Join(ids, ",")).
		Query("format", "Png").
		Query("size", "150x150").
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get group icons: %w", err)
	}
	defer resp.Body.Close()

	var result groupIconsResponse
	if err := decodeBody(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode group icons response: %w", err)
	}

	iconURLs := make(map[uint64]string, len(result.Data))

	for _, icon := range result.Data {
		if icon.State == "Completed" && icon.ImageURL != nil {
			iconURLs[icon.TargetID] = *icon.ImageURL
		}
	}

	return iconURLs, nil
}
