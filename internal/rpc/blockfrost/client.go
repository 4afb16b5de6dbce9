package blockfrost

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/fystack/cardano-query/pkg/common/constant"
	"github.com/fystack/cardano-query/pkg/common/enum"
)

type BlockfrostClient struct {
	*rpc.BaseClient
	projectID string
}

var _ BlockfrostAPI = (*BlockfrostClient)(nil)

// NewBlockfrostClient creates a new Blockfrost client (https://blockfrost.io/).
// Every request carries the project_id header.
func NewBlockfrostClient(baseURL, projectID string, timeout time.Duration) *BlockfrostClient {
	return &BlockfrostClient{
		BaseClient: rpc.NewBaseClient(
			baseURL,
			enum.ProviderBlockfrost,
			rpc.HeaderAuth(constant.BlockfrostAuthHeader, projectID),
			timeout,
		),
		projectID: projectID,
	}
}

func (c *BlockfrostClient) require(field, value string) error {
	if err := rpc.Require("project_id", c.projectID); err != nil {
		return err
	}
	return rpc.Require(field, value)
}

func (c *BlockfrostClient) get(ctx context.Context, endpoint string, query *rpc.Query) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil, query)
}

// GetAccount fetches a stake account: GET /accounts/{stake_address}
func (c *BlockfrostClient) GetAccount(ctx context.Context, stakeAddress string) (*cardano.StakeAccount, error) {
	if err := c.require("stake_address", stakeAddress); err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/accounts/"+rpc.PathEscape(stakeAddress), nil)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", stakeAddress, err)
	}
	account, err := rpc.DecodeRenamed[cardano.StakeAccount](data, accountFields)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", stakeAddress, err)
	}
	return &account, nil
}

// GetAccountAddresses lists the addresses of a stake account: GET /accounts/{stake_address}/addresses
func (c *BlockfrostClient) GetAccountAddresses(ctx context.Context, stakeAddress string, page Page) ([]cardano.Address, error) {
	if err := c.require("stake_address", stakeAddress); err != nil {
		return nil, err
	}
	query, err := page.Query()
	if err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/accounts/"+rpc.PathEscape(stakeAddress)+"/addresses", query)
	if err != nil {
		return nil, fmt.Errorf("get account addresses %s: %w", stakeAddress, err)
	}
	addresses, err := rpc.DecodeListRenamed[cardano.Address](data, addressFields)
	if err != nil {
		return nil, fmt.Errorf("get account addresses %s: %w", stakeAddress, err)
	}
	return addresses, nil
}

// GetAccountAssets lists assets held by the addresses of a stake account:
// GET /accounts/{stake_address}/addresses/assets
func (c *BlockfrostClient) GetAccountAssets(ctx context.Context, stakeAddress string, page Page) ([]cardano.Amount, error) {
	if err := c.require("stake_address", stakeAddress); err != nil {
		return nil, err
	}
	query, err := page.Query()
	if err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/accounts/"+rpc.PathEscape(stakeAddress)+"/addresses/assets", query)
	if err != nil {
		return nil, fmt.Errorf("get account assets %s: %w", stakeAddress, err)
	}
	assets, err := rpc.DecodeListRenamed[cardano.Amount](data, amountFields)
	if err != nil {
		return nil, fmt.Errorf("get account assets %s: %w", stakeAddress, err)
	}
	return assets, nil
}

// GetAddress fetches a payment address: GET /addresses/{address}
func (c *BlockfrostClient) GetAddress(ctx context.Context, address string) (*cardano.Address, error) {
	if err := c.require("address", address); err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/addresses/"+rpc.PathEscape(address), nil)
	if err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, err)
	}
	addr, err := rpc.DecodeRenamed[cardano.Address](data, addressFields)
	if err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, err)
	}
	return &addr, nil
}

// ListAssets lists native assets: GET /assets
func (c *BlockfrostClient) ListAssets(ctx context.Context, page Page) ([]cardano.AssetSummary, error) {
	if err := rpc.Require("project_id", c.projectID); err != nil {
		return nil, err
	}
	query, err := page.Query()
	if err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/assets", query)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	assets, err := rpc.DecodeListRenamed[cardano.AssetSummary](data, assetSummaryFields)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// GetAsset fetches a native asset with its on-chain and registry metadata: GET /assets/{asset}
func (c *BlockfrostClient) GetAsset(ctx context.Context, assetID string) (*cardano.AssetDetail, error) {
	if err := c.require("asset_id", assetID); err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/assets/"+rpc.PathEscape(assetID), nil)
	if err != nil {
		return nil, fmt.Errorf("get asset %s: %w", assetID, err)
	}
	asset, err := rpc.DecodeRenamed[cardano.AssetDetail](data, assetFields)
	if err != nil {
		return nil, fmt.Errorf("get asset %s: %w", assetID, err)
	}
	if asset.AssetID == "" {
		asset.AssetID = cardano.AssetID(asset.PolicyID, asset.AssetNameHex)
	}
	asset.AssetNameASCII = cardano.HexToASCII(asset.AssetNameHex)
	return &asset, nil
}

// GetTransaction fetches a transaction by its hash: GET /txs/{hash}
func (c *BlockfrostClient) GetTransaction(ctx context.Context, txHash string) (*cardano.Transaction, error) {
	if err := c.require("tx_hash", txHash); err != nil {
		return nil, err
	}
	data, err := c.get(ctx, "/txs/"+rpc.PathEscape(txHash), nil)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	tx, err := rpc.DecodeRenamed[cardano.Transaction](data, transactionFields)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	return &tx, nil
}
