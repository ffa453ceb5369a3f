package entity

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// SessionStatus is the stage of a mint session. A session only moves forward;
// no stage is re-entrant except by starting a brand-new session from Idle.
type SessionStatus string

const (
	StatusIdle                  SessionStatus = "idle"
	StatusUploadingMedia        SessionStatus = "uploading_media"
	StatusUploadingMetadata     SessionStatus = "uploading_metadata"
	StatusSubmittingTransaction SessionStatus = "submitting_transaction"
	StatusConfirmingTransaction SessionStatus = "confirming_transaction"
	StatusMinted                SessionStatus = "minted"
	StatusFailed                SessionStatus = "failed"
)

// MintSession is the ephemeral state of one mint attempt. It lives for the
// duration of the attempt and is discarded on completion; a failed attempt
// carries nothing over to the next one, even nominally successful uploads.
type MintSession struct {
	Status         SessionStatus
	MediaLocator   string
	ContentLocator string
	TxHash         ethcommon.Hash

	// AssetID is set only on a Minted session, resolved from the mint event
	// in the confirmed receipt.
	AssetID *uint64

	// RewardAmount is the per-mint reward fetched after a successful mint.
	// nil means the reward read failed and the amount is unknown; that does
	// not fail the mint.
	RewardAmount *big.Int

	// FailedStage and Err are set only on a Failed session.
	FailedStage SessionStatus
	Err         error
}
