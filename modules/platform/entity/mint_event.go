package entity

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// MintEvent is the historical fact emitted at mint confirmation time.
type MintEvent struct {
	AssetID        uint64
	Creator        ethcommon.Address
	Owner          ethcommon.Address
	ContentLocator string
	RewardAmount   *big.Int
	TxHash         ethcommon.Hash
	BlockNumber    uint64
}

// RewardEvent is the reward-credit fact emitted alongside each mint.
type RewardEvent struct {
	Creator     ethcommon.Address
	Amount      *big.Int
	AssetID     uint64
	TxHash      ethcommon.Hash
	BlockNumber uint64
}

// MintReceipt is a confirmed mint transaction with its emitted mint events.
// The ledger client only produces a receipt after confirmation, never on
// mere submission.
type MintReceipt struct {
	TxHash      ethcommon.Hash
	BlockNumber uint64
	Events      []MintEvent
}
