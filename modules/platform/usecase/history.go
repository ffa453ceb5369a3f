package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// GetMintHistory builds the per-creator mint history view, most recent first.
// The ledger returns events oldest-first; the reversal is a presentation
// choice, not a ledger guarantee.
func (u *Usecase) GetMintHistory(ctx context.Context, creator ethcommon.Address) ([]entity.MintEvent, error) {
	events, err := u.ledger.GetMintEvents(ctx, &creator, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetMintEvents")
	}
	return lo.Reverse(events), nil
}

// GetRewardHistory builds the per-creator reward-credit history, most recent first.
func (u *Usecase) GetRewardHistory(ctx context.Context, creator ethcommon.Address) ([]entity.RewardEvent, error) {
	events, err := u.ledger.GetRewardEvents(ctx, &creator, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetRewardEvents")
	}
	return lo.Reverse(events), nil
}
