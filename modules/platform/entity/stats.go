package entity

import "math/big"

// CreatorStats is derived on demand from ledger queries and never stored.
type CreatorStats struct {
	AssetCount         uint64
	TotalRewardsEarned *big.Int
	TokenBalance       *big.Int
}
