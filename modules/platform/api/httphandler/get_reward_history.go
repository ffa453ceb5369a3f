package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getRewardHistoryRequest struct {
	Address string `params:"address"`
}

func (r getRewardHistoryRequest) Validate() error {
	if r.Address == "" {
		return errs.NewPublicError("'address' is required")
	}
	return nil
}

type rewardHistoryItem struct {
	AssetID       uint64      `json:"assetId"`
	Amount        tokenAmount `json:"amount"`
	TxHash        string      `json:"transactionHash"`
	TxExplorerURL string      `json:"transactionExplorerUrl"`
	BlockNumber   uint64      `json:"blockNumber"`
}

type getRewardHistoryResult struct {
	List []rewardHistoryItem `json:"list"`
}

type getRewardHistoryResponse = HttpResponse[getRewardHistoryResult]

// GetRewardHistory returns the creator's reward payouts, newest first.
func (h *HttpHandler) GetRewardHistory(ctx *fiber.Ctx) (err error) {
	var req getRewardHistoryRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	address, ok := resolveAddress(req.Address)
	if !ok {
		return errs.NewPublicError("unable to resolve account from \"address\"")
	}

	events, err := h.usecase.GetRewardHistory(ctx.UserContext(), address)
	if err != nil {
		return errors.Wrap(err, "error during GetRewardHistory")
	}

	resp := getRewardHistoryResponse{
		Result: &getRewardHistoryResult{
			List: lo.Map(events, func(event entity.RewardEvent, _ int) rewardHistoryItem {
				return rewardHistoryItem{
					AssetID:       event.AssetID,
					Amount:        newTokenAmount(event.Amount),
					TxHash:        event.TxHash.Hex(),
					TxExplorerURL: h.network.ExplorerTxURL(event.TxHash.Hex()),
					BlockNumber:   event.BlockNumber,
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
