package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
)

const catalogResolveWorkers = 8

// CatalogItem is one asset with its resolved descriptor. Resolved is false
// when the descriptor could not be fetched and a placeholder was substituted.
type CatalogItem struct {
	Asset      entity.AssetRecord
	Descriptor entity.ContentDescriptor
	Resolved   bool
}

// GetCatalog builds the full catalog view: the ledger's asset list with each
// descriptor resolved from the content store. Resolutions run concurrently
// but the output always follows the ledger's returned order; an unresolvable
// descriptor degrades that item to a placeholder, never the whole view.
func (u *Usecase) GetCatalog(ctx context.Context) ([]CatalogItem, error) {
	assets, err := u.ledger.GetAllAssets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetAllAssets")
	}

	out := make(chan CatalogItem)
	stream := cstream.NewStream(ctx, catalogResolveWorkers, out)

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	go func() {
		defer stream.Close()
		for _, asset := range assets {
			asset := asset
			stream.Go(func() CatalogItem {
				return u.resolveCatalogItem(ctx, asset)
			})
		}
	}()

	items := make([]CatalogItem, 0, len(assets))
	for item := range out {
		items = append(items, item)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context done")
	}
	return items, nil
}

func (u *Usecase) resolveCatalogItem(ctx context.Context, asset entity.AssetRecord) CatalogItem {
	var descriptor entity.ContentDescriptor
	if err := u.storage.FetchJSON(ctx, asset.ContentLocator, &descriptor); err != nil {
		logger.DebugContext(ctx, "can't resolve content descriptor",
			slogx.Uint64("assetId", asset.ID),
			slogx.String("locator", asset.ContentLocator),
			slogx.Error(err),
		)
		return CatalogItem{Asset: asset, Descriptor: entity.PlaceholderDescriptor(asset.ID)}
	}
	return CatalogItem{Asset: asset, Descriptor: descriptor, Resolved: true}
}
