package ledger

import (
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract surface consumed by the client: the mint write, the catalog and
// stats reads, the reward constant, and the two emitted event kinds.
const contractABIJSON = `[
	{"type":"function","name":"mintNFT","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getAllNFTsData","stateMutability":"view","inputs":[],"outputs":[{"name":"tokenIds","type":"uint256[]"},{"name":"owners","type":"address[]"},{"name":"creators","type":"address[]"},{"name":"tokenURIs","type":"string[]"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getCreatorStats","stateMutability":"view","inputs":[{"name":"creator","type":"address"}],"outputs":[{"name":"nftCount","type":"uint256"},{"name":"totalRewards","type":"uint256"},{"name":"tokenBalance","type":"uint256"}]},
	{"type":"function","name":"CREATOR_REWARD","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"NFTMinted","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"creator","type":"address","indexed":true},{"name":"owner","type":"address","indexed":true},{"name":"tokenURI","type":"string","indexed":false},{"name":"rewardAmount","type":"uint256","indexed":false}],"anonymous":false},
	{"type":"event","name":"CreatorRewarded","inputs":[{"name":"creator","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false},{"name":"tokenId","type":"uint256","indexed":false}],"anonymous":false}
]`

var (
	contractABI = utils.Must(abi.JSON(strings.NewReader(contractABIJSON)))

	mintEventID   = contractABI.Events["NFTMinted"].ID
	rewardEventID = contractABI.Events["CreatorRewarded"].ID
)
