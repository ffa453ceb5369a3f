package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/datagateway"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/walletagent"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger"
	"github.com/essienricch/Nft-Creator-Haven/pkg/logger/slogx"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

type Config struct {
	// RPCURL overrides the network's default RPC endpoint.
	RPCURL string `mapstructure:"rpc_url"`

	// ContractAddress is the fixed deployment address of the platform contract.
	ContractAddress string `mapstructure:"contract_address"`

	// ConfirmationTimeout bounds the wait between transaction submission and
	// confirmation. Queries and uploads rely on ordinary network failure
	// signaling and are not bounded here.
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`

	// ConfirmationPollInterval is the receipt polling cadence.
	ConfirmationPollInterval time.Duration `mapstructure:"confirmation_poll_interval"`
}

const (
	defaultConfirmationTimeout      = 90 * time.Second
	defaultConfirmationPollInterval = 2 * time.Second
)

// Client holds one connection to the platform contract through a
// signing-agent-backed account. It is recreated wholesale on account or
// network change rather than mutated in place.
type Client struct {
	eth            *ethclient.Client
	contract       ethcommon.Address
	agent          walletagent.Agent
	network        common.Network
	chainID        *big.Int
	confirmTimeout time.Duration
	pollInterval   time.Duration
}

var _ datagateway.LedgerDataGateway = (*Client)(nil)

func New(ctx context.Context, cfg Config, network common.Network, agent walletagent.Agent) (*Client, error) {
	if !ethcommon.IsHexAddress(cfg.ContractAddress) {
		return nil, errors.Errorf("invalid contract address %q", cfg.ContractAddress)
	}
	rpcURL := cfg.RPCURL
	if rpcURL == "" {
		rpcURL = network.DefaultRPCURL()
	}
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrapf(err, "can't connect to ledger RPC %q", rpcURL)
	}

	chainID := network.ChainID()
	if chainID == nil {
		chainID, err = eth.ChainID(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "can't resolve chain id")
		}
	}

	confirmTimeout := cfg.ConfirmationTimeout
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirmationTimeout
	}
	pollInterval := cfg.ConfirmationPollInterval
	if pollInterval <= 0 {
		pollInterval = defaultConfirmationPollInterval
	}

	return &Client{
		eth:            eth,
		contract:       ethcommon.HexToAddress(cfg.ContractAddress),
		agent:          agent,
		network:        network,
		chainID:        chainID,
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// call executes a read-only contract call. Safe to retry and to run concurrently.
func (c *Client) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "can't pack %q call", method)
	}
	out, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "%q call failed", method)
	}
	vals, err := contractABI.Unpack(method, out)
	if err != nil {
		return nil, errors.Wrapf(err, "can't unpack %q result", method)
	}
	return vals, nil
}

func (c *Client) GetAllAssets(ctx context.Context) ([]entity.AssetRecord, error) {
	vals, err := c.call(ctx, "getAllNFTsData")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(vals) != 4 {
		return nil, errors.Errorf("getAllNFTsData returned %d values, expected 4", len(vals))
	}
	tokenIds, ok1 := vals[0].([]*big.Int)
	owners, ok2 := vals[1].([]ethcommon.Address)
	creators, ok3 := vals[2].([]ethcommon.Address)
	tokenURIs, ok4 := vals[3].([]string)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, errors.New("getAllNFTsData returned unexpected types")
	}
	if len(owners) != len(tokenIds) || len(creators) != len(tokenIds) || len(tokenURIs) != len(tokenIds) {
		return nil, errors.New("getAllNFTsData returned mismatched array lengths")
	}

	assets := make([]entity.AssetRecord, 0, len(tokenIds))
	for i := range tokenIds {
		assets = append(assets, entity.AssetRecord{
			ID:             tokenIds[i].Uint64(),
			Owner:          owners[i],
			Creator:        creators[i],
			ContentLocator: tokenURIs[i],
		})
	}
	return assets, nil
}

func (c *Client) GetTokenBalance(ctx context.Context, account ethcommon.Address) (*big.Int, error) {
	vals, err := c.call(ctx, "balanceOf", account)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	balance, ok := vals[0].(*big.Int)
	if !ok {
		return nil, errors.New("balanceOf returned unexpected type")
	}
	return balance, nil
}

func (c *Client) GetCreatorStats(ctx context.Context, creator ethcommon.Address) (entity.CreatorStats, error) {
	vals, err := c.call(ctx, "getCreatorStats", creator)
	if err != nil {
		return entity.CreatorStats{}, errors.WithStack(err)
	}
	if len(vals) != 3 {
		return entity.CreatorStats{}, errors.Errorf("getCreatorStats returned %d values, expected 3", len(vals))
	}
	nftCount, ok1 := vals[0].(*big.Int)
	totalRewards, ok2 := vals[1].(*big.Int)
	tokenBalance, ok3 := vals[2].(*big.Int)
	if !ok1 || !ok2 || !ok3 {
		return entity.CreatorStats{}, errors.New("getCreatorStats returned unexpected types")
	}
	return entity.CreatorStats{
		AssetCount:         nftCount.Uint64(),
		TotalRewardsEarned: totalRewards,
		TokenBalance:       tokenBalance,
	}, nil
}

func (c *Client) GetCreatorReward(ctx context.Context) (*big.Int, error) {
	vals, err := c.call(ctx, "CREATOR_REWARD")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	reward, ok := vals[0].(*big.Int)
	if !ok {
		return nil, errors.New("CREATOR_REWARD returned unexpected type")
	}
	return reward, nil
}

// Mint submits the mint transaction and waits for confirmation. Success is
// only claimed once the receipt lands; submission and confirmation are
// distinct steps with distinct failure modes.
func (c *Client) Mint(ctx context.Context, to ethcommon.Address, contentLocator string) (*entity.MintReceipt, error) {
	account, err := c.agent.ActiveAccount(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := contractABI.Pack("mintNFT", to, contentLocator)
	if err != nil {
		return nil, errors.Wrap(err, "can't pack mintNFT call")
	}

	nonce, err := c.eth.PendingNonceAt(ctx, account)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch account nonce")
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch gas price")
	}
	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: account,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		// Estimation failure is the ledger refusing the call (e.g. a revert).
		return nil, errors.Wrap(errs.TransactionRejected, err.Error())
	}

	tx := types.NewTransaction(nonce, c.contract, new(big.Int), gasLimit, gasPrice, data)
	signed, err := c.agent.SignTx(ctx, tx, c.chainID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return nil, errors.Wrap(errs.TransactionRejected, err.Error())
	}

	logger.InfoContext(ctx, "mint transaction submitted",
		slogx.Stringer("tx", signed.Hash()),
		slogx.Stringer("to", to),
	)

	receipt, err := c.waitConfirmed(ctx, signed.Hash())
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, errors.Wrapf(errs.TransactionRejected, "transaction %s reverted", signed.Hash())
	}

	events := make([]entity.MintEvent, 0, 1)
	for _, log := range receipt.Logs {
		if log == nil || log.Removed || log.Address != c.contract {
			continue
		}
		if len(log.Topics) == 0 || log.Topics[0] != mintEventID {
			continue
		}
		event, err := parseMintLog(*log)
		if err != nil {
			return nil, errors.Wrap(err, "can't parse mint event from receipt")
		}
		events = append(events, event)
	}

	return &entity.MintReceipt{
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber.Uint64(),
		Events:      events,
	}, nil
}

// waitConfirmed polls for the transaction receipt until it lands or the
// confirmation timeout elapses. The transaction itself cannot be recalled;
// on timeout the caller merely stops waiting for it.
func (c *Client) waitConfirmed(ctx context.Context, txHash ethcommon.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(waitCtx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) && waitCtx.Err() == nil {
			return nil, errors.Wrapf(err, "can't fetch receipt for %s", txHash)
		}

		select {
		case <-waitCtx.Done():
			return nil, errors.Wrapf(errs.ConfirmationTimeout, "transaction %s not confirmed within %s", txHash, c.confirmTimeout)
		case <-ticker.C:
		}
	}
}
