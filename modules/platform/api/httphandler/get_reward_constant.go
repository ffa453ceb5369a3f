package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getRewardConstantResult struct {
	RewardPerMint tokenAmount `json:"rewardPerMint"`
}

type getRewardConstantResponse = HttpResponse[getRewardConstantResult]

// GetRewardConstant returns the fixed reward paid out per mint.
func (h *HttpHandler) GetRewardConstant(ctx *fiber.Ctx) (err error) {
	reward, err := h.usecase.GetCreatorReward(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetCreatorReward")
	}

	resp := getRewardConstantResponse{
		Result: &getRewardConstantResult{
			RewardPerMint: newTokenAmount(reward),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
