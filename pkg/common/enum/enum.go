package enum

type Order string
type Network string
type Provider string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

const (
	NetworkMainnet          Network = "mainnet"
	NetworkPreprod          Network = "preprod"
	NetworkPreview          Network = "preview"
	NetworkIPFS             Network = "ipfs"
	NetworkMilkomedaMainnet Network = "milkomeda-mainnet"
	NetworkMilkomedaTestnet Network = "milkomeda-testnet"
)

const (
	ProviderBlockfrost Provider = "blockfrost"
	ProviderKoios      Provider = "koios"
)
