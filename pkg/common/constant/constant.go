package constant

import "github.com/fystack/cardano-query/pkg/common/enum"

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// Blockfrost project header
	BlockfrostAuthHeader = "project_id"

	KoiosMainnetURL = "https://api.koios.rest/api/v1"

	DefaultPageCount = 10
	DefaultPage      = 1
	DefaultOrder     = enum.OrderAsc
)

// BlockfrostURLs are the Blockfrost base URLs per network
var BlockfrostURLs = map[enum.Network]string{
	enum.NetworkMainnet:          "https://cardano-mainnet.blockfrost.io/api/v0",
	enum.NetworkPreprod:          "https://cardano-preprod.blockfrost.io/api/v0",
	enum.NetworkPreview:          "https://cardano-preview.blockfrost.io/api/v0",
	enum.NetworkIPFS:             "https://ipfs.blockfrost.io/api/v0",
	enum.NetworkMilkomedaMainnet: "https://milkomeda-mainnet.blockfrost.io/api/v0",
	enum.NetworkMilkomedaTestnet: "https://milkomeda-testnet.blockfrost.io/api/v0",
}
