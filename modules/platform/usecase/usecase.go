package usecase

import (
	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/datagateway"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/walletagent"
)

type Usecase struct {
	ledger  datagateway.LedgerDataGateway
	storage datagateway.ContentStorage
	agent   walletagent.Agent
	network common.Network
}

func New(ledger datagateway.LedgerDataGateway, storage datagateway.ContentStorage, agent walletagent.Agent, network common.Network) *Usecase {
	return &Usecase{
		ledger:  ledger,
		storage: storage,
		agent:   agent,
		network: network,
	}
}
