package httphandler

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/essienricch/Nft-Creator-Haven/common"
	"github.com/essienricch/Nft-Creator-Haven/modules/platform/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

func resolveAddress(wallet string) (ethcommon.Address, bool) {
	if !ethcommon.IsHexAddress(wallet) {
		return ethcommon.Address{}, false
	}
	return ethcommon.HexToAddress(wallet), true
}
