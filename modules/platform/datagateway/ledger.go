package datagateway

import (
	"context"
	"math/big"

	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

type LedgerDataGateway interface {
	LedgerReaderDataGateway
	LedgerWriterDataGateway
}

type LedgerReaderDataGateway interface {
	// GetAllAssets returns every minted asset in ledger order.
	GetAllAssets(ctx context.Context) ([]entity.AssetRecord, error)

	// GetTokenBalance returns the reward token balance of an account, in wei scale.
	GetTokenBalance(ctx context.Context, account ethcommon.Address) (*big.Int, error)

	// GetCreatorStats returns the aggregate per-creator statistics in one ledger call.
	GetCreatorStats(ctx context.Context, creator ethcommon.Address) (entity.CreatorStats, error)

	// GetCreatorReward returns the fixed per-mint reward constant.
	GetCreatorReward(ctx context.Context) (*big.Int, error)

	// GetMintEvents returns historical mint events oldest-first by ledger
	// ordinal. creator is optional; toBlock 0 means the latest block.
	GetMintEvents(ctx context.Context, creator *ethcommon.Address, fromBlock, toBlock uint64) ([]entity.MintEvent, error)

	// GetRewardEvents returns historical reward-credit events oldest-first by
	// ledger ordinal. creator is optional; toBlock 0 means the latest block.
	GetRewardEvents(ctx context.Context, creator *ethcommon.Address, fromBlock, toBlock uint64) ([]entity.RewardEvent, error)
}

type LedgerWriterDataGateway interface {
	// Mint submits the mint transaction through the signing agent and waits
	// for confirmation within the client's bounded confirmation timeout.
	// Returns errs.NotConnected, errs.TransactionRejected or
	// errs.ConfirmationTimeout.
	Mint(ctx context.Context, to ethcommon.Address, contentLocator string) (*entity.MintReceipt, error)
}
