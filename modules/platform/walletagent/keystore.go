package walletagent

import (
	"context"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type Config struct {
	// KeystoreDir is the directory holding encrypted key files.
	KeystoreDir string `mapstructure:"keystore_dir"`

	// Account selects the key to use. Empty means the first account in the keystore.
	Account string `mapstructure:"account"`

	// Passphrase unlocks the selected key.
	Passphrase string `mapstructure:"passphrase"`
}

// KeystoreAgent is a local signing agent backed by a go-ethereum encrypted
// keystore directory. It satisfies the same surface a browser wallet would.
type KeystoreAgent struct {
	ks         *keystore.KeyStore
	passphrase string

	mu          sync.RWMutex
	active      *accounts.Account
	network     common.Network
	subscribers map[int]func(ethcommon.Address)
	nextSubID   int
}

var _ Agent = (*KeystoreAgent)(nil)

func NewKeystoreAgent(cfg Config, network common.Network) (*KeystoreAgent, error) {
	if cfg.KeystoreDir == "" {
		return nil, errors.Wrap(errs.NotConnected, "keystore directory is not configured")
	}
	ks := keystore.NewKeyStore(cfg.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	agent := &KeystoreAgent{
		ks:          ks,
		passphrase:  cfg.Passphrase,
		network:     network,
		subscribers: make(map[int]func(ethcommon.Address)),
	}
	if cfg.Account != "" {
		if !ethcommon.IsHexAddress(cfg.Account) {
			return nil, errors.Wrapf(errs.NotConnected, "invalid account address %q", cfg.Account)
		}
		account, err := ks.Find(accounts.Account{Address: ethcommon.HexToAddress(cfg.Account)})
		if err != nil {
			return nil, errors.Wrapf(errs.NotConnected, "account %q not found in keystore", cfg.Account)
		}
		agent.active = &account
	}
	return agent, nil
}

func (a *KeystoreAgent) ActiveAccount(_ context.Context) (ethcommon.Address, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.active == nil {
		return ethcommon.Address{}, errors.WithStack(errs.NotConnected)
	}
	return a.active.Address, nil
}

// RequestAccess selects the first keystore account as active and unlocks it,
// mirroring a wallet's account-access prompt.
func (a *KeystoreAgent) RequestAccess(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	account := a.active
	if account == nil {
		all := a.ks.Accounts()
		if len(all) == 0 {
			return errors.Wrap(errs.NotConnected, "keystore holds no accounts")
		}
		account = &all[0]
	}
	if err := a.ks.Unlock(*account, a.passphrase); err != nil {
		return errors.Wrap(errs.NotConnected, err.Error())
	}
	changed := a.active == nil || a.active.Address != account.Address
	a.active = account
	if changed {
		a.notifyLocked(account.Address)
	}
	return nil
}

func (a *KeystoreAgent) SwitchNetwork(_ context.Context, network common.Network) error {
	if !network.IsSupported() {
		return errors.Wrapf(errs.Unsupported, "%q network is not supported", network)
	}
	a.mu.Lock()
	a.network = network
	a.mu.Unlock()
	return nil
}

func (a *KeystoreAgent) SignTx(_ context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	a.mu.RLock()
	account := a.active
	a.mu.RUnlock()
	if account == nil {
		return nil, errors.WithStack(errs.NotConnected)
	}
	signed, err := a.ks.SignTx(*account, tx, chainID)
	if err != nil {
		return nil, errors.Wrap(errs.TransactionRejected, err.Error())
	}
	return signed, nil
}

func (a *KeystoreAgent) OnAccountChange(fn func(ethcommon.Address)) (unsubscribe func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subscribers, id)
	}
}

// SetActiveAccount switches the active account and notifies subscribers.
func (a *KeystoreAgent) SetActiveAccount(address ethcommon.Address) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	account, err := a.ks.Find(accounts.Account{Address: address})
	if err != nil {
		return errors.Wrapf(errs.NotConnected, "account %q not found in keystore", address)
	}
	if err := a.ks.Unlock(account, a.passphrase); err != nil {
		return errors.Wrap(errs.NotConnected, err.Error())
	}
	changed := a.active == nil || a.active.Address != account.Address
	a.active = &account
	if changed {
		a.notifyLocked(account.Address)
	}
	return nil
}

func (a *KeystoreAgent) notifyLocked(address ethcommon.Address) {
	for _, fn := range a.subscribers {
		go fn(address)
	}
}
