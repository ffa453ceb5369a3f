package common

import (
	"fmt"
	"math/big"
)

// Network is a named ledger deployment target.
type Network string

const (
	NetworkLisk        Network = "lisk"
	NetworkLiskSepolia Network = "lisk-sepolia"
)

func (n Network) String() string {
	return string(n)
}

func (n Network) IsSupported() bool {
	switch n {
	case NetworkLisk, NetworkLiskSepolia:
		return true
	}
	return false
}

// ChainID returns the EVM chain id of the network.
func (n Network) ChainID() *big.Int {
	switch n {
	case NetworkLisk:
		return big.NewInt(1135)
	case NetworkLiskSepolia:
		return big.NewInt(4202)
	}
	return nil
}

// DefaultRPCURL returns the public RPC endpoint of the network.
func (n Network) DefaultRPCURL() string {
	switch n {
	case NetworkLisk:
		return "https://rpc.api.lisk.com"
	case NetworkLiskSepolia:
		return "https://rpc.sepolia-api.lisk.com"
	}
	return ""
}

// ExplorerURL returns the block explorer base URL of the network.
func (n Network) ExplorerURL() string {
	switch n {
	case NetworkLisk:
		return "https://blockscout.lisk.com"
	case NetworkLiskSepolia:
		return "https://sepolia-blockscout.lisk.com"
	}
	return ""
}

// ExplorerTxURL returns the block explorer URL for a transaction hash.
func (n Network) ExplorerTxURL(txHash string) string {
	return fmt.Sprintf("%s/tx/%s", n.ExplorerURL(), txHash)
}

// ExplorerAddressURL returns the block explorer URL for an account.
func (n Network) ExplorerAddressURL(address string) string {
	return fmt.Sprintf("%s/address/%s", n.ExplorerURL(), address)
}
