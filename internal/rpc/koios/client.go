package koios

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

type KoiosClient struct {
	*rpc.BaseClient
}

var _ KoiosAPI = (*KoiosClient)(nil)

// NewKoiosClient creates a new Koios client (https://koios.rest/).
// apiToken is optional; when set it is sent as a bearer token.
func NewKoiosClient(baseURL, apiToken string, timeout time.Duration) *KoiosClient {
	if baseURL == "" {
		baseURL = constant.KoiosMainnetURL
	}
	return &KoiosClient{
		BaseClient: rpc.NewBaseClient(baseURL, enum.ProviderKoios, rpc.BearerAuth(apiToken), timeout),
	}
}

func decodeFailure(data []byte, err error) error {
	return &rpc.DecodeError{Body: string(data), Err: err}
}

// GetAccount fetches a stake account: POST /account_info
func (c *KoiosClient) GetAccount(ctx context.Context, stakeAddress string) (*cardano.StakeAccount, error) {
	if err := rpc.Require("stake_address", stakeAddress); err != nil {
		return nil, err
	}
	body := accountInfoRequest{StakeAddresses: []string{stakeAddress}}
	data, err := c.Do(ctx, http.MethodPost, "/account_info", body, nil)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", stakeAddress, err)
	}
	account, err := rpc.DecodeFirstRenamed[cardano.StakeAccount](data, accountFields, "koios/account_info/"+stakeAddress)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", stakeAddress, err)
	}
	account.Active = account.Status == statusRegistered
	return &account, nil
}

// GetAddress fetches a payment address: POST /address_info
func (c *KoiosClient) GetAddress(ctx context.Context, address string) (*cardano.Address, error) {
	if err := rpc.Require("address", address); err != nil {
		return nil, err
	}
	body := addressInfoRequest{Addresses: []string{address}}
	data, err := c.Do(ctx, http.MethodPost, "/address_info", body, nil)
	if err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, err)
	}
	info, err := rpc.DecodeFirstRenamed[addressInfo](data, nil, "koios/address_info/"+address)
	if err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, err)
	}
	addr, err := info.toAddress()
	if err != nil {
		return nil, fmt.Errorf("get address %s: %w", address, decodeFailure(data, err))
	}
	return addr, nil
}

// GetTransaction fetches a transaction by its hash: POST /tx_info
func (c *KoiosClient) GetTransaction(ctx context.Context, txHash string) (*cardano.Transaction, error) {
	if err := rpc.Require("tx_hash", txHash); err != nil {
		return nil, err
	}
	body := txInfoRequest{TxHashes: []string{txHash}}
	data, err := c.Do(ctx, http.MethodPost, "/tx_info", body, nil)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	info, err := rpc.DecodeFirstRenamed[txInfo](data, nil, "koios/tx_info/"+txHash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	tx, err := info.toTransaction()
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txHash, decodeFailure(data, err))
	}
	return tx, nil
}

// GetAssetInfo fetches a native asset: GET /asset_info?_asset_policy=&_asset_name=
// An empty asset name is valid on Cardano and is sent as is.
func (c *KoiosClient) GetAssetInfo(ctx context.Context, policyID, assetNameHex string) (*cardano.AssetDetail, error) {
	if err := rpc.Require("policy_id", policyID); err != nil {
		return nil, err
	}
	query := rpc.NewQuery().
		Add("_asset_policy", policyID).
		Add("_asset_name", assetNameHex)
	data, err := c.Do(ctx, http.MethodGet, "/asset_info", nil, query)
	if err != nil {
		return nil, fmt.Errorf("get asset %s%s: %w", policyID, assetNameHex, err)
	}
	info, err := rpc.DecodeFirstRenamed[assetInfo](data, nil, "koios/asset_info/"+policyID+assetNameHex)
	if err != nil {
		return nil, fmt.Errorf("get asset %s%s: %w", policyID, assetNameHex, err)
	}
	asset, err := info.toAssetDetail()
	if err != nil {
		return nil, fmt.Errorf("get asset %s%s: %w", policyID, assetNameHex, decodeFailure(data, err))
	}
	return asset, nil
}
