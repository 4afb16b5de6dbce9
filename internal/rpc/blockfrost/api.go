package blockfrost

import (
	"context"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/cardano"
)

// BlockfrostAPI defines the Blockfrost lookups
type BlockfrostAPI interface {
	rpc.NetworkClient
	GetAccount(ctx context.Context, stakeAddress string) (*cardano.StakeAccount, error)
	GetAccountAddresses(ctx context.Context, stakeAddress string, page Page) ([]cardano.Address, error)
	GetAccountAssets(ctx context.Context, stakeAddress string, page Page) ([]cardano.Amount, error)
	GetAddress(ctx context.Context, address string) (*cardano.Address, error)
	ListAssets(ctx context.Context, page Page) ([]cardano.AssetSummary, error)
	GetAsset(ctx context.Context, assetID string) (*cardano.AssetDetail, error)
	GetTransaction(ctx context.Context, txHash string) (*cardano.Transaction, error)
}
