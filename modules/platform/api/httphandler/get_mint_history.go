package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getMintHistoryRequest struct {
	Address string `params:"address"`
}

func (r getMintHistoryRequest) Validate() error {
	if r.Address == "" {
		return errs.NewPublicError("'address' is required")
	}
	return nil
}

type mintHistoryItem struct {
	AssetID        uint64      `json:"assetId"`
	Owner          string      `json:"owner"`
	ContentLocator string      `json:"contentLocator"`
	Reward         tokenAmount `json:"reward"`
	TxHash         string      `json:"transactionHash"`
	TxExplorerURL  string      `json:"transactionExplorerUrl"`
	BlockNumber    uint64      `json:"blockNumber"`
}

type getMintHistoryResult struct {
	List []mintHistoryItem `json:"list"`
}

type getMintHistoryResponse = HttpResponse[getMintHistoryResult]

// GetMintHistory returns the creator's mint events, newest first.
func (h *HttpHandler) GetMintHistory(ctx *fiber.Ctx) (err error) {
	var req getMintHistoryRequest
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

	events, err := h.usecase.GetMintHistory(ctx.UserContext(), address)
	if err != nil {
		return errors.Wrap(err, "error during GetMintHistory")
	}

	resp := getMintHistoryResponse{
		Result: &getMintHistoryResult{
			List: lo.Map(events, func(event entity.MintEvent, _ int) mintHistoryItem {
				return mintHistoryItem{
					AssetID:        event.AssetID,
					Owner:          event.Owner.Hex(),
					ContentLocator: event.ContentLocator,
					Reward:         newTokenAmount(event.RewardAmount),
					TxHash:         event.TxHash.Hex(),
					TxExplorerURL:  h.network.ExplorerTxURL(event.TxHash.Hex()),
					BlockNumber:    event.BlockNumber,
				}
			}),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
