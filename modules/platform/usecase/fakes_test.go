package usecase

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/entity"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type fakeLedger struct {
	assets    []entity.AssetRecord
	assetsErr error

	stats    entity.CreatorStats
	statsErr error

	reward    *big.Int
	rewardErr error

	balance    *big.Int
	balanceErr error

	mintEvents    []entity.MintEvent
	mintEventsErr error

	rewardEvents    []entity.RewardEvent
	rewardEventsErr error

	receipt *entity.MintReceipt
	mintErr error

	mintCalls   int
	mintTo      ethcommon.Address
	mintLocator string
}

func (l *fakeLedger) GetAllAssets(_ context.Context) ([]entity.AssetRecord, error) {
	return l.assets, l.assetsErr
}

func (l *fakeLedger) GetTokenBalance(_ context.Context, _ ethcommon.Address) (*big.Int, error) {
	return l.balance, l.balanceErr
}

func (l *fakeLedger) GetCreatorStats(_ context.Context, _ ethcommon.Address) (entity.CreatorStats, error) {
	return l.stats, l.statsErr
}

func (l *fakeLedger) GetCreatorReward(_ context.Context) (*big.Int, error) {
	return l.reward, l.rewardErr
}

func (l *fakeLedger) GetMintEvents(_ context.Context, _ *ethcommon.Address, _, _ uint64) ([]entity.MintEvent, error) {
	return l.mintEvents, l.mintEventsErr
}

func (l *fakeLedger) GetRewardEvents(_ context.Context, _ *ethcommon.Address, _, _ uint64) ([]entity.RewardEvent, error) {
	return l.rewardEvents, l.rewardEventsErr
}

func (l *fakeLedger) Mint(_ context.Context, to ethcommon.Address, contentLocator string) (*entity.MintReceipt, error) {
	l.mintCalls++
	l.mintTo = to
	l.mintLocator = contentLocator
	if l.mintErr != nil {
		return nil, l.mintErr
	}
	return l.receipt, nil
}

type fakeStorage struct {
	fileLocator string
	fileErr     error

	jsonLocator string
	jsonErr     error

	// docs maps locators to resolvable documents for FetchJSON.
	docs map[string]entity.ContentDescriptor

	storeFileCalls int
	storeJSONCalls int
	storedFile     []byte
	storedDoc      any
}

func (s *fakeStorage) StoreFile(_ context.Context, data []byte, _ string) (string, error) {
	s.storeFileCalls++
	s.storedFile = data
	return s.fileLocator, s.fileErr
}

func (s *fakeStorage) StoreJSON(_ context.Context, doc any) (string, error) {
	s.storeJSONCalls++
	s.storedDoc = doc
	return s.jsonLocator, s.jsonErr
}

func (s *fakeStorage) FetchJSON(_ context.Context, locator string, out any) error {
	doc, ok := s.docs[locator]
	if !ok {
		return errors.Errorf("no document at %q", locator)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(json.Unmarshal(body, out))
}

type fakeAgent struct {
	account    ethcommon.Address
	accountErr error
}

func (a *fakeAgent) ActiveAccount(_ context.Context) (ethcommon.Address, error) {
	return a.account, a.accountErr
}

func (a *fakeAgent) RequestAccess(_ context.Context) error { return nil }

func (a *fakeAgent) SwitchNetwork(_ context.Context, _ common.Network) error { return nil }

func (a *fakeAgent) SignTx(_ context.Context, tx *types.Transaction, _ *big.Int) (*types.Transaction, error) {
	return tx, nil
}

func (a *fakeAgent) OnAccountChange(_ func(ethcommon.Address)) func() { return func() {} }

func newTestUsecase(ledger *fakeLedger, storage *fakeStorage, agent *fakeAgent) *Usecase {
	if agent == nil {
		agent = &fakeAgent{account: ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")}
	}
	return New(ledger, storage, agent, common.NetworkLiskSepolia)
}
