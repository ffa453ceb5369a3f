package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
)

type MintInput struct {
	Name             string
	Description      string
	Media            []byte
	MediaContentType string
}

// Validate checks the input locally. No external call is made before it passes.
func (in MintInput) Validate() error {
	var missing []error
	if in.Name == "" {
		missing = append(missing, errors.New("'name' is required"))
	}
	if in.Description == "" {
		missing = append(missing, errors.New("'description' is required"))
	}
	if len(in.Media) == 0 {
		missing = append(missing, errors.New("'media' is required"))
	}
	if err := errors.Join(missing...); err != nil {
		return errors.Mark(errs.WithPublicMessage(err, "incomplete input"), errs.IncompleteInput)
	}
	return nil
}

// Mint drives one mint attempt through its five stages. Stages are strictly
// sequential; each depends on the previous stage's output. Any stage failure
// discards the session entirely — a later attempt starts from Idle and reuses
// nothing, not even uploads that nominally succeeded.
//
// The returned error is non-nil exactly when the session ends Failed; the
// session names the failing stage either way.
func (u *Usecase) Mint(ctx context.Context, input MintInput) (*entity.MintSession, error) {
	session := &entity.MintSession{Status: entity.StatusIdle}

	if err := input.Validate(); err != nil {
		return u.failSession(ctx, session, err)
	}
	creator, err := u.agent.ActiveAccount(ctx)
	if err != nil {
		return u.failSession(ctx, session, errors.WithStack(err))
	}

	session.Status = entity.StatusUploadingMedia
	mediaLocator, err := u.storage.StoreFile(ctx, input.Media, input.MediaContentType)
	if err != nil {
		return u.failSession(ctx, session, errors.Wrap(err, "media upload failed"))
	}
	session.MediaLocator = mediaLocator

	session.Status = entity.StatusUploadingMetadata
	descriptor := entity.ContentDescriptor{
		Name:        input.Name,
		Description: input.Description,
		Image:       mediaLocator,
		Attributes: []entity.Attribute{
			{TraitType: "Creator", Value: creator.Hex()},
			{TraitType: "Created At", Value: time.Now().UTC().Format(time.RFC3339)},
		},
	}
	contentLocator, err := u.storage.StoreJSON(ctx, descriptor)
	if err != nil {
		return u.failSession(ctx, session, errors.Wrap(err, "metadata upload failed"))
	}
	session.ContentLocator = contentLocator

	session.Status = entity.StatusSubmittingTransaction
	receipt, err := u.ledger.Mint(ctx, creator, contentLocator)
	if err != nil {
		if errors.Is(err, errs.ConfirmationTimeout) {
			session.Status = entity.StatusConfirmingTransaction
		}
		return u.failSession(ctx, session, errors.Wrap(err, "mint transaction failed"))
	}
	session.TxHash = receipt.TxHash

	session.Status = entity.StatusConfirmingTransaction
	if len(receipt.Events) == 0 {
		// A confirmed mint with no mint event means the receipt and ledger
		// state disagree. Never fabricate an identifier from it.
		return u.failSession(ctx, session, errors.Wrapf(errs.InconsistentReceipt,
			"transaction %s confirmed without a mint event", receipt.TxHash))
	}
	assetID := receipt.Events[0].AssetID
	session.AssetID = &assetID
	session.Status = entity.StatusMinted

	// Display-only read; its failure degrades to an unknown reward.
	if reward, err := u.ledger.GetCreatorReward(ctx); err != nil {
		logger.WarnContext(ctx, "can't fetch creator reward for display", slogx.Error(err))
	} else {
		session.RewardAmount = reward
	}

	logger.InfoContext(ctx, "asset minted",
		slogx.Uint64("assetId", assetID),
		slogx.Stringer("tx", receipt.TxHash),
	)
	return session, nil
}

func (u *Usecase) failSession(ctx context.Context, session *entity.MintSession, err error) (*entity.MintSession, error) {
	stage := session.Status
	session.FailedStage = stage
	session.Status = entity.StatusFailed
	session.Err = err
	logger.WarnContext(ctx, "mint session failed",
		slogx.String("stage", string(stage)),
		slogx.Error(err),
	)
	return session, errors.Wrapf(err, "mint failed at stage %q", stage)
}
