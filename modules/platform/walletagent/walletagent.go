package walletagent

import (
	"context"
	"math/big"

	"github.com/essienricch/Nft-Creator-Haven/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Agent is the external key custodian that authorizes transactions. The core
// treats it as available or errs.NotConnected and does not manage its
// lifecycle.
type Agent interface {
	// ActiveAccount returns the currently active account.
	// Returns errs.NotConnected when no account is available.
	ActiveAccount(ctx context.Context) (ethcommon.Address, error)

	// RequestAccess asks the agent to make an account available.
	RequestAccess(ctx context.Context) error

	// SwitchNetwork points the agent at another ledger deployment. Holders of
	// ledger connections are expected to recreate them wholesale afterwards.
	SwitchNetwork(ctx context.Context, network common.Network) error

	// SignTx signs a transaction with the active account's key.
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

	// OnAccountChange registers fn to be called whenever the active account
	// changes. The returned function unsubscribes.
	OnAccountChange(fn func(ethcommon.Address)) (unsubscribe func())
}
