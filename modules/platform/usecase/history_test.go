package usecase

import (
	"context"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMintHistory(t *testing.T) {
	creator := ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("events come back newest first", func(t *testing.T) {
		ledger := &fakeLedger{mintEvents: []entity.MintEvent{
			{AssetID: 1, Creator: creator, BlockNumber: 10},
			{AssetID: 2, Creator: creator, BlockNumber: 20},
			{AssetID: 3, Creator: creator, BlockNumber: 30},
		}}
		u := newTestUsecase(ledger, &fakeStorage{}, nil)

		events, err := u.GetMintHistory(context.Background(), creator)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, uint64(30), events[0].BlockNumber)
		assert.Equal(t, uint64(20), events[1].BlockNumber)
		assert.Equal(t, uint64(10), events[2].BlockNumber)
	})

	t.Run("no events yields an empty history", func(t *testing.T) {
		u := newTestUsecase(&fakeLedger{}, &fakeStorage{}, nil)

		events, err := u.GetMintHistory(context.Background(), creator)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("ledger failure propagates", func(t *testing.T) {
		u := newTestUsecase(&fakeLedger{mintEventsErr: errors.New("rpc unavailable")}, &fakeStorage{}, nil)

		_, err := u.GetMintHistory(context.Background(), creator)
		require.Error(t, err)
	})
}

func TestGetRewardHistory(t *testing.T) {
	creator := ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("events come back newest first", func(t *testing.T) {
		ledger := &fakeLedger{rewardEvents: []entity.RewardEvent{
			{AssetID: 1, Creator: creator, Amount: big.NewInt(100), BlockNumber: 10},
			{AssetID: 2, Creator: creator, Amount: big.NewInt(100), BlockNumber: 20},
		}}
		u := newTestUsecase(ledger, &fakeStorage{}, nil)

		events, err := u.GetRewardHistory(context.Background(), creator)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, uint64(20), events[0].BlockNumber)
		assert.Equal(t, uint64(10), events[1].BlockNumber)
	})

	t.Run("ledger failure propagates", func(t *testing.T) {
		u := newTestUsecase(&fakeLedger{rewardEventsErr: errors.New("rpc unavailable")}, &fakeStorage{}, nil)

		_, err := u.GetRewardHistory(context.Background(), creator)
		require.Error(t, err)
	})
}
