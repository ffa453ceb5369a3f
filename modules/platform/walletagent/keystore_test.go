package walletagent

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/common/errs"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = "passphrase"

func newTestKeystore(t *testing.T) (string, ethcommon.Address) {
	t.Helper()
	dir := t.TempDir()
	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	account, err := ks.NewAccount(testPassphrase)
	require.NoError(t, err)
	return dir, account.Address
}

func TestKeystoreAgent(t *testing.T) {
	t.Run("missing keystore directory is not connected", func(t *testing.T) {
		_, err := NewKeystoreAgent(Config{}, common.NetworkLiskSepolia)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.NotConnected))
	})

	t.Run("no active account before access is requested", func(t *testing.T) {
		dir, _ := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		_, err = agent.ActiveAccount(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.NotConnected))
	})

	t.Run("request access selects the first account", func(t *testing.T) {
		dir, address := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		require.NoError(t, agent.RequestAccess(context.Background()))
		active, err := agent.ActiveAccount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, address, active)
	})

	t.Run("wrong passphrase stays not connected", func(t *testing.T) {
		dir, _ := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: "wrong"}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		err = agent.RequestAccess(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.NotConnected))
	})

	t.Run("configured account must exist in the keystore", func(t *testing.T) {
		dir, _ := newTestKeystore(t)
		_, err := NewKeystoreAgent(Config{
			KeystoreDir: dir,
			Account:     "0x00000000000000000000000000000000000000ff",
			Passphrase:  testPassphrase,
		}, common.NetworkLiskSepolia)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.NotConnected))
	})

	t.Run("signs a transaction with the active account", func(t *testing.T) {
		dir, address := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)
		require.NoError(t, agent.RequestAccess(context.Background()))

		chainID := common.NetworkLiskSepolia.ChainID()
		tx := types.NewTransaction(0, address, new(big.Int), 21000, big.NewInt(1), nil)
		signed, err := agent.SignTx(context.Background(), tx, chainID)
		require.NoError(t, err)

		sender, err := types.Sender(types.NewEIP155Signer(chainID), signed)
		require.NoError(t, err)
		assert.Equal(t, address, sender)
	})

	t.Run("signing without an account is not connected", func(t *testing.T) {
		dir, address := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		tx := types.NewTransaction(0, address, new(big.Int), 21000, big.NewInt(1), nil)
		_, err = agent.SignTx(context.Background(), tx, common.NetworkLiskSepolia.ChainID())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.NotConnected))
	})

	t.Run("unsupported network is rejected", func(t *testing.T) {
		dir, _ := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		err = agent.SwitchNetwork(context.Background(), common.Network("unknown"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.Unsupported))
	})

	t.Run("account change notifies subscribers", func(t *testing.T) {
		dir, address := newTestKeystore(t)
		agent, err := NewKeystoreAgent(Config{KeystoreDir: dir, Passphrase: testPassphrase}, common.NetworkLiskSepolia)
		require.NoError(t, err)

		changed := make(chan ethcommon.Address, 1)
		unsubscribe := agent.OnAccountChange(func(addr ethcommon.Address) {
			changed <- addr
		})
		defer unsubscribe()

		require.NoError(t, agent.RequestAccess(context.Background()))
		select {
		case addr := <-changed:
			assert.Equal(t, address, addr)
		case <-time.After(time.Second):
			t.Fatal("no account change notification")
		}
	})
}
