package entity

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// AssetRecord is one minted asset as recorded on the ledger. Created exactly
// once by a successful mint transaction; the creator never changes, the owner
// may change through later transfers.
type AssetRecord struct {
	ID             uint64
	Owner          ethcommon.Address
	Creator        ethcommon.Address
	ContentLocator string
}
