package ledger

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// GetMintEvents returns historical mint events, optionally filtered by
// creator, oldest-first by ledger ordinal. toBlock 0 means the latest block.
func (c *Client) GetMintEvents(ctx context.Context, creator *ethcommon.Address, fromBlock, toBlock uint64) ([]entity.MintEvent, error) {
	// NFTMinted topics: [event id, tokenId, creator, owner]
	topics := [][]ethcommon.Hash{{mintEventID}}
	if creator != nil {
		topics = append(topics, nil, []ethcommon.Hash{addressTopic(*creator)})
	}

	logs, err := c.filterLogs(ctx, topics, fromBlock, toBlock)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]entity.MintEvent, 0, len(logs))
	for _, log := range logs {
		event, err := parseMintLog(log)
		if err != nil {
			return nil, errors.Wrap(err, "can't parse mint event")
		}
		events = append(events, event)
	}
	return events, nil
}

// GetRewardEvents returns historical reward-credit events, optionally
// filtered by creator, oldest-first by ledger ordinal.
func (c *Client) GetRewardEvents(ctx context.Context, creator *ethcommon.Address, fromBlock, toBlock uint64) ([]entity.RewardEvent, error) {
	// CreatorRewarded topics: [event id, creator]
	topics := [][]ethcommon.Hash{{rewardEventID}}
	if creator != nil {
		topics = append(topics, []ethcommon.Hash{addressTopic(*creator)})
	}

	logs, err := c.filterLogs(ctx, topics, fromBlock, toBlock)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events := make([]entity.RewardEvent, 0, len(logs))
	for _, log := range logs {
		event, err := parseRewardLog(log)
		if err != nil {
			return nil, errors.Wrap(err, "can't parse reward event")
		}
		events = append(events, event)
	}
	return events, nil
}

func (c *Client) filterLogs(ctx context.Context, topics [][]ethcommon.Hash, fromBlock, toBlock uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []ethcommon.Address{c.contract},
		Topics:    topics,
	}
	if toBlock != 0 {
		query.ToBlock = new(big.Int).SetUint64(toBlock)
	}
	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "event query failed")
	}
	filtered := logs[:0]
	for _, log := range logs {
		if log.Removed {
			continue
		}
		filtered = append(filtered, log)
	}
	return filtered, nil
}

func parseMintLog(log types.Log) (entity.MintEvent, error) {
	if len(log.Topics) != 4 {
		return entity.MintEvent{}, errors.Errorf("mint event has %d topics, expected 4", len(log.Topics))
	}
	vals, err := contractABI.Unpack("NFTMinted", log.Data)
	if err != nil {
		return entity.MintEvent{}, errors.Wrap(err, "can't unpack mint event data")
	}
	if len(vals) != 2 {
		return entity.MintEvent{}, errors.Errorf("mint event data has %d values, expected 2", len(vals))
	}
	tokenURI, ok1 := vals[0].(string)
	rewardAmount, ok2 := vals[1].(*big.Int)
	if !ok1 || !ok2 {
		return entity.MintEvent{}, errors.New("mint event data has unexpected types")
	}

	return entity.MintEvent{
		AssetID:        new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(),
		Creator:        ethcommon.BytesToAddress(log.Topics[2].Bytes()),
		Owner:          ethcommon.BytesToAddress(log.Topics[3].Bytes()),
		ContentLocator: tokenURI,
		RewardAmount:   rewardAmount,
		TxHash:         log.TxHash,
		BlockNumber:    log.BlockNumber,
	}, nil
}

func parseRewardLog(log types.Log) (entity.RewardEvent, error) {
	if len(log.Topics) != 2 {
		return entity.RewardEvent{}, errors.Errorf("reward event has %d topics, expected 2", len(log.Topics))
	}
	vals, err := contractABI.Unpack("CreatorRewarded", log.Data)
	if err != nil {
		return entity.RewardEvent{}, errors.Wrap(err, "can't unpack reward event data")
	}
	if len(vals) != 2 {
		return entity.RewardEvent{}, errors.Errorf("reward event data has %d values, expected 2", len(vals))
	}
	amount, ok1 := vals[0].(*big.Int)
	tokenID, ok2 := vals[1].(*big.Int)
	if !ok1 || !ok2 {
		return entity.RewardEvent{}, errors.New("reward event data has unexpected types")
	}

	return entity.RewardEvent{
		Creator:     ethcommon.BytesToAddress(log.Topics[1].Bytes()),
		Amount:      amount,
		AssetID:     tokenID.Uint64(),
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
	}, nil
}

func addressTopic(address ethcommon.Address) ethcommon.Hash {
	return ethcommon.BytesToHash(address.Bytes())
}
