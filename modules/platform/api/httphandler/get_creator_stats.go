package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/pkg/decimals"
	"github.com/gofiber/fiber/v2"
)

type getCreatorStatsRequest struct {
	Address string `params:"address"`
}

func (r getCreatorStatsRequest) Validate() error {
	if r.Address == "" {
		return errs.NewPublicError("'address' is required")
	}
	return nil
}

type tokenAmount struct {
	Raw     string `json:"raw"`
	Display string `json:"display"`
}

type getCreatorStatsResult struct {
	AssetCount         uint64      `json:"assetCount"`
	TotalRewardsEarned tokenAmount `json:"totalRewardsEarned"`
	TokenBalance       tokenAmount `json:"tokenBalance"`
}

type getCreatorStatsResponse = HttpResponse[getCreatorStatsResult]

// GetCreatorStats returns the per-creator statistics view.
func (h *HttpHandler) GetCreatorStats(ctx *fiber.Ctx) (err error) {
	var req getCreatorStatsRequest
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

	stats, err := h.usecase.GetCreatorStats(ctx.UserContext(), address)
	if err != nil {
		return errors.Wrap(err, "error during GetCreatorStats")
	}

	resp := getCreatorStatsResponse{
		Result: &getCreatorStatsResult{
			AssetCount:         stats.AssetCount,
			TotalRewardsEarned: newTokenAmount(stats.TotalRewardsEarned),
			TokenBalance:       newTokenAmount(stats.TokenBalance),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func newTokenAmount(raw interface{ String() string }) tokenAmount {
	return tokenAmount{
		Raw:     raw.String(),
		Display: decimals.ToDecimal(raw.String(), decimals.TokenDecimals).String(),
	}
}
