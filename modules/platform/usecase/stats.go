package usecase

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// GetCreatorStats builds the statistics view. It is a single aggregate ledger
// read, recomputed on every call and never cached.
func (u *Usecase) GetCreatorStats(ctx context.Context, creator ethcommon.Address) (entity.CreatorStats, error) {
	stats, err := u.ledger.GetCreatorStats(ctx, creator)
	if err != nil {
		return entity.CreatorStats{}, errors.Wrap(err, "error during GetCreatorStats")
	}
	return stats, nil
}

// GetCreatorReward returns the fixed per-mint reward constant.
func (u *Usecase) GetCreatorReward(ctx context.Context) (*big.Int, error) {
	reward, err := u.ledger.GetCreatorReward(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetCreatorReward")
	}
	return reward, nil
}
