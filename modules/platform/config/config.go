package config

import (
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/contentstore/pinata"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/contentstore/s3store"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/ledger"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/walletagent"
)

// Content store backends.
const (
	ContentStoreBackendPinata = "pinata"
	ContentStoreBackendS3     = "s3"
)

type Config struct {
	Ledger       ledger.Config      `mapstructure:"ledger"`
	ContentStore ContentStore       `mapstructure:"content_store"`
	Wallet       walletagent.Config `mapstructure:"wallet"`
}

type ContentStore struct {
	// Backend selects the content store implementation, "pinata" or "s3".
	Backend string `mapstructure:"backend"`

	Pinata pinata.Config  `mapstructure:"pinata"`
	S3     s3store.Config `mapstructure:"s3"`
}
