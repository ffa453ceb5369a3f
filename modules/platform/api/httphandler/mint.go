package httphandler

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/usecase"
	"github.com/essienricch/Nft-Creator-Haven/pkg/decimals"
	"github.com/gofiber/fiber/v2"
)

type mintResult struct {
	Status         string  `json:"status"`
	AssetID        *uint64 `json:"assetId,omitempty"`
	TxHash         string  `json:"transactionHash,omitempty"`
	TxExplorerURL  string  `json:"transactionExplorerUrl,omitempty"`
	ContentLocator string  `json:"contentLocator,omitempty"`
	MediaLocator   string  `json:"mediaLocator,omitempty"`

	// RewardAmount is null when the reward read failed after a successful
	// mint; the mint itself still succeeded.
	RewardAmount        *string `json:"rewardAmount,omitempty"`
	RewardAmountDisplay *string `json:"rewardAmountDisplay,omitempty"`
}

type mintResponse = HttpResponse[mintResult]

// Mint runs one full mint session synchronously: media upload, metadata
// upload, transaction submission and the confirmation wait.
func (h *HttpHandler) Mint(ctx *fiber.Ctx) (err error) {
	name := ctx.FormValue("name")
	description := ctx.FormValue("description")

	input := usecase.MintInput{
		Name:        name,
		Description: description,
	}

	fileHeader, err := ctx.FormFile("media")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "can't open uploaded media")
		}
		defer file.Close()
		media, err := io.ReadAll(file)
		if err != nil {
			return errors.Wrap(err, "can't read uploaded media")
		}
		input.Media = media
		input.MediaContentType = fileHeader.Header.Get("Content-Type")
	}

	session, err := h.usecase.Mint(ctx.UserContext(), input)
	if err != nil {
		return errs.WithPublicMessage(errors.WithStack(err), string(session.FailedStage))
	}

	result := mintResult{
		Status:         string(session.Status),
		AssetID:        session.AssetID,
		TxHash:         session.TxHash.Hex(),
		TxExplorerURL:  h.network.ExplorerTxURL(session.TxHash.Hex()),
		ContentLocator: session.ContentLocator,
		MediaLocator:   session.MediaLocator,
	}
	if session.RewardAmount != nil {
		raw := session.RewardAmount.String()
		display := decimals.FromWei(session.RewardAmount).String()
		result.RewardAmount = &raw
		result.RewardAmountDisplay = &display
	}

	resp := mintResponse{Result: &result}
	return errors.WithStack(ctx.JSON(resp))
}
