package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalog(t *testing.T) {
	owner := ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("resolves descriptors in ledger order", func(t *testing.T) {
		assets := []entity.AssetRecord{
			{ID: 1, Owner: owner, Creator: owner, ContentLocator: "store://1"},
			{ID: 2, Owner: owner, Creator: owner, ContentLocator: "store://2"},
			{ID: 3, Owner: owner, Creator: owner, ContentLocator: "store://3"},
		}
		storage := &fakeStorage{docs: map[string]entity.ContentDescriptor{
			"store://1": {Name: "First", Description: "one", Image: "store://img1"},
			"store://2": {Name: "Second", Description: "two", Image: "store://img2"},
			"store://3": {Name: "Third", Description: "three", Image: "store://img3"},
		}}
		u := newTestUsecase(&fakeLedger{assets: assets}, storage, nil)

		items, err := u.GetCatalog(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 3)
		for i, item := range items {
			assert.Equal(t, assets[i], item.Asset)
			assert.True(t, item.Resolved)
		}
		assert.Equal(t, "First", items[0].Descriptor.Name)
		assert.Equal(t, "Second", items[1].Descriptor.Name)
		assert.Equal(t, "Third", items[2].Descriptor.Name)
	})

	t.Run("unresolvable descriptor degrades one item, not the view", func(t *testing.T) {
		assets := []entity.AssetRecord{
			{ID: 1, Owner: owner, Creator: owner, ContentLocator: "store://1"},
			{ID: 2, Owner: owner, Creator: owner, ContentLocator: "store://missing"},
			{ID: 3, Owner: owner, Creator: owner, ContentLocator: "store://3"},
		}
		storage := &fakeStorage{docs: map[string]entity.ContentDescriptor{
			"store://1": {Name: "First"},
			"store://3": {Name: "Third"},
		}}
		u := newTestUsecase(&fakeLedger{assets: assets}, storage, nil)

		items, err := u.GetCatalog(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.True(t, items[0].Resolved)
		assert.True(t, items[2].Resolved)

		degraded := items[1]
		assert.False(t, degraded.Resolved)
		assert.Equal(t, "Asset #2", degraded.Descriptor.Name)
		assert.Equal(t, entity.PlaceholderDescription, degraded.Descriptor.Description)
		assert.Equal(t, entity.PlaceholderImage, degraded.Descriptor.Image)
		assert.Equal(t, assets[1], degraded.Asset)
	})

	t.Run("empty ledger yields an empty catalog", func(t *testing.T) {
		u := newTestUsecase(&fakeLedger{}, &fakeStorage{}, nil)

		items, err := u.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("ledger failure fails the whole view", func(t *testing.T) {
		u := newTestUsecase(&fakeLedger{assetsErr: errors.New("rpc unavailable")}, &fakeStorage{}, nil)

		_, err := u.GetCatalog(context.Background())
		require.Error(t, err)
	})
}
