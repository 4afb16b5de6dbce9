package koios

import (
	"context"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/cardano"
)

// KoiosAPI defines the Koios lookups. Every call sends a singleton batch and unwraps element 0.
type KoiosAPI interface {
	rpc.NetworkClient
	GetAccount(ctx context.Context, stakeAddress string) (*cardano.StakeAccount, error)
	GetAddress(ctx context.Context, address string) (*cardano.Address, error)
	GetTransaction(ctx context.Context, txHash string) (*cardano.Transaction, error)
	GetAssetInfo(ctx context.Context, policyID, assetNameHex string) (*cardano.AssetDetail, error)
}
