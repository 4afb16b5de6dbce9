package koios

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStake  = "stake1u8xgz6ed4vsqwnvpe3qv57mel575h0yhmkl70sts3fqysgsz95350"
	testPolicy = "b0d07d45fe9514f80213f4020e5a61241458be626841cde717cb38a7"
)

type captured struct {
	method string
	path   string
	query  string
	auth   string
	ctype  string
	body   map[string][]string
}

type stub struct {
	mu   sync.Mutex
	last captured
}

func (s *stub) request() captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func newStub(t *testing.T, token string, responses map[string]string) (*stub, *KoiosClient) {
	s := &stub{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		c := captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
		}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.body)
		}
		s.mu.Lock()
		s.last = c
		s.mu.Unlock()

		body, ok := responses[r.URL.Path]
		if !ok {
			body = `[]`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return s, NewKoiosClient(server.URL, token, 5*time.Second)
}

func TestGetAccount(t *testing.T) {
	s, client := newStub(t, "", map[string]string{
		"/account_info": `[{
			"stake_address": "` + testStake + `",
			"status": "registered",
			"delegated_drep": null,
			"delegated_pool": "pool1pu5jlj4q9w9jlxeu370a3c9myx47md5j5m2str0naunn2q3lkdy",
			"total_balance": "5000000",
			"utxo": "4680846",
			"rewards": "319154",
			"withdrawals": "0",
			"rewards_available": "319154",
			"deposit": "2000000",
			"reserves": "0",
			"treasury": "0"
		}]`,
	})

	account, err := client.GetAccount(context.Background(), testStake)
	require.NoError(t, err)

	req := s.request()
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/account_info", req.path)
	assert.Equal(t, "application/json", req.ctype)
	assert.Equal(t, []string{testStake}, req.body["_stake_addresses"])
	assert.Empty(t, req.auth)

	assert.Equal(t, testStake, account.Address)
	assert.True(t, account.Active)
	assert.Equal(t, "registered", account.Status)
	assert.Equal(t, "5000000", account.ControlledAmountLovelace)
	assert.Equal(t, "319154", account.WithdrawableAmountLovelace)
	require.NotNil(t, account.PoolID)
	assert.Nil(t, account.DRepID)
	assert.Equal(t, "5.00 ₳", cardano.FormatLovelace(account.ControlledAmountLovelace))
}

func TestGetAccountNotRegistered(t *testing.T) {
	_, client := newStub(t, "", map[string]string{
		"/account_info": `[{"stake_address": "` + testStake + `", "status": "not registered", "total_balance": "0"}]`,
	})

	account, err := client.GetAccount(context.Background(), testStake)
	require.NoError(t, err)
	assert.False(t, account.Active)
}

func TestBearerToken(t *testing.T) {
	s, client := newStub(t, "koios-token", map[string]string{
		"/account_info": `[{"stake_address": "` + testStake + `", "status": "registered", "total_balance": "0"}]`,
	})

	_, err := client.GetAccount(context.Background(), testStake)
	require.NoError(t, err)
	assert.Equal(t, "Bearer koios-token", s.request().auth)
}

func TestGetAddressTypeDerivation(t *testing.T) {
	tests := []struct {
		name     string
		stake    string
		expected cardano.AddressType
	}{
		{"stake address present", `"` + testStake + `"`, cardano.AddressTypeShelley},
		{"stake address null", `null`, cardano.AddressTypeEnterprise},
		{"stake address empty", `""`, cardano.AddressTypeEnterprise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newStub(t, "", map[string]string{
				"/address_info": `[{
					"address": "addr1qx1",
					"balance": "1500000",
					"stake_address": ` + tt.stake + `,
					"script_address": false,
					"utxo_set": []
				}]`,
			})

			addr, err := client.GetAddress(context.Background(), "addr1qx1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.Type)
			assert.Equal(t, []cardano.Amount{{Unit: "lovelace", Quantity: "1500000"}}, addr.Balances)
		})
	}
}

func TestGetAddressBalances(t *testing.T) {
	s, client := newStub(t, "", map[string]string{
		"/address_info": `[{
			"address": "addr1qx1",
			"balance": "42000000",
			"stake_address": "` + testStake + `",
			"script_address": true,
			"utxo_set": [
				{"tx_hash": "aa", "tx_index": 0, "value": "20000000", "asset_list": [
					{"policy_id": "` + testPolicy + `", "asset_name": "6e7574636f696e", "quantity": "10"}
				]},
				{"tx_hash": "bb", "tx_index": 1, "value": "22000000", "asset_list": [
					{"policy_id": "` + testPolicy + `", "asset_name": "74657374", "quantity": "1"},
					{"policy_id": "` + testPolicy + `", "asset_name": "6e7574636f696e", "quantity": "5"}
				]}
			]
		}]`,
	})

	addr, err := client.GetAddress(context.Background(), "addr1qx1")
	require.NoError(t, err)
	assert.Equal(t, []string{"addr1qx1"}, s.request().body["_addresses"])
	assert.True(t, addr.IsScript)
	assert.Equal(t, []cardano.Amount{
		{Unit: "lovelace", Quantity: "42000000"},
		{Unit: testPolicy + "6e7574636f696e", Quantity: "15"},
		{Unit: testPolicy + "74657374", Quantity: "1"},
	}, addr.Balances)
}

func TestGetTransaction(t *testing.T) {
	const hash = "1e043f100dce12d107f679685acd2fc0610e10f72a92d412794c9773d11d8477"
	s, client := newStub(t, "", map[string]string{
		"/tx_info": `[{
			"tx_hash": "` + hash + `",
			"block_hash": "356b7d7dbb696ccd12775c016941057a9dc70898d87a63fc752271bb46856940",
			"block_height": 123456,
			"tx_timestamp": 1635505891,
			"absolute_slot": 42000000,
			"tx_block_index": 3,
			"tx_size": 433,
			"total_output": "42000000",
			"fee": "182485",
			"deposit": "-2000000",
			"invalid_before": null,
			"invalid_after": "13885913",
			"inputs": [{}, {}],
			"outputs": [
				{"value": "2000000", "asset_list": [{"policy_id": "` + testPolicy + `", "asset_name": "6e7574636f696e", "quantity": "7"}]},
				{"value": "40000000", "asset_list": [{"policy_id": "` + testPolicy + `", "asset_name": "6e7574636f696e", "quantity": "5"}]}
			],
			"withdrawals": [{}],
			"assets_minted": [],
			"certificates": [{"type": "stake_deregistration"}, {"type": "delegation"}, {"type": "reserve_MIR"}],
			"redeemers": null,
			"valid_contract": true
		}]`,
	})

	tx, err := client.GetTransaction(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, []string{hash}, s.request().body["_tx_hashes"])

	assert.Equal(t, hash, tx.Hash)
	assert.Equal(t, int64(123456), tx.BlockHeight)
	assert.Equal(t, int64(1635505891), tx.BlockTimeEpochSeconds)
	assert.Equal(t, int64(42000000), tx.Slot)
	assert.Equal(t, int64(3), tx.Index)
	assert.Equal(t, "182485", tx.FeesLovelace)
	assert.Equal(t, "-2000000", tx.DepositLovelace)
	assert.Nil(t, tx.InvalidBefore)
	require.NotNil(t, tx.InvalidHereafter)
	assert.Equal(t, "13885913", *tx.InvalidHereafter)
	assert.Equal(t, []cardano.Amount{
		{Unit: "lovelace", Quantity: "42000000"},
		{Unit: testPolicy + "6e7574636f696e", Quantity: "12"},
	}, tx.Outputs)
	assert.Equal(t, int64(4), tx.UTXOCount)
	assert.Equal(t, int64(1), tx.WithdrawalCount)
	assert.Equal(t, int64(1), tx.StakeCertCount)
	assert.Equal(t, int64(1), tx.DelegationCount)
	assert.Equal(t, int64(1), tx.MIRCertCount)
	assert.Equal(t, int64(0), tx.RedeemerCount)
	assert.True(t, tx.ValidContract)
}

func TestGetAssetInfo(t *testing.T) {
	s, client := newStub(t, "", map[string]string{
		"/asset_info": `[{
			"policy_id": "` + testPolicy + `",
			"asset_name": "6e7574636f696e",
			"fingerprint": "asset1pkpwyknlvul7az0xx8czhl60pyel45rpje4z8w",
			"minting_tx_hash": "6804edf9712d2b619edb6ac86861fe93a730693183a262b165fcc1ba1bc99cad",
			"total_supply": "12000",
			"mint_cnt": 2,
			"burn_cnt": 1,
			"minting_tx_metadata": {"721": {"name": "nut"}},
			"token_registry_metadata": {"name": "nutcoin", "description": "The Nut Coin", "ticker": "nutc", "decimals": 6}
		}]`,
	})

	asset, err := client.GetAssetInfo(context.Background(), testPolicy, "6e7574636f696e")
	require.NoError(t, err)

	req := s.request()
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "_asset_policy="+testPolicy+"&_asset_name=6e7574636f696e", req.query)

	assert.Equal(t, testPolicy+"6e7574636f696e", asset.AssetID)
	assert.Equal(t, "nutcoin", asset.AssetNameASCII)
	assert.Equal(t, "12000", asset.Quantity)
	assert.Equal(t, int64(3), asset.MintOrBurnCount)
	assert.Contains(t, asset.OnchainMetadata, "721")
	require.NotNil(t, asset.OffchainMetadata)
	assert.Equal(t, "nutc", asset.OffchainMetadata.Ticker)
}

func TestGetAssetInfoLegacyMetadata(t *testing.T) {
	_, client := newStub(t, "", map[string]string{
		"/asset_info": `[{
			"policy_id": "` + testPolicy + `",
			"asset_name": "xyz",
			"total_supply": "1",
			"minting_tx_metadata": [{"key": "721", "json": {"name": "nut"}}],
			"token_registry_metadata": null
		}]`,
	})

	asset, err := client.GetAssetInfo(context.Background(), testPolicy, "xyz")
	require.NoError(t, err)
	assert.Equal(t, cardano.InvalidHex, asset.AssetNameASCII)
	assert.Equal(t, map[string]any{"name": "nut"}, asset.OnchainMetadata["721"])
	assert.Nil(t, asset.OffchainMetadata)
}

func TestEmptyArrayIsNotFound(t *testing.T) {
	_, client := newStub(t, "", map[string]string{})
	ctx := context.Background()

	calls := map[string]func() error{
		"account": func() error { _, err := client.GetAccount(ctx, testStake); return err },
		"address": func() error { _, err := client.GetAddress(ctx, "addr1qx1"); return err },
		"tx":      func() error { _, err := client.GetTransaction(ctx, "abc"); return err },
		"asset":   func() error { _, err := client.GetAssetInfo(ctx, testPolicy, ""); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, rpc.ErrNotFound))
		})
	}
}

func TestMalformedAmountIsDecodeError(t *testing.T) {
	_, client := newStub(t, "", map[string]string{
		"/tx_info":      `[{"tx_hash": "abc", "fee": "1.5", "total_output": "1"}]`,
		"/address_info": `[{"address": "addr1", "balance": "10", "utxo_set": [{"asset_list": [{"policy_id": "p", "asset_name": "", "quantity": "x"}]}]}]`,
		"/account_info": `{"stake_address": "` + testStake + `"}`,
	})
	ctx := context.Background()

	var derr *rpc.DecodeError
	_, err := client.GetTransaction(ctx, "abc")
	assert.True(t, errors.As(err, &derr))

	_, err = client.GetAddress(ctx, "addr1")
	assert.True(t, errors.As(err, &derr))

	_, err = client.GetAccount(ctx, testStake)
	assert.True(t, errors.As(err, &derr))
}

func TestEmptyElementIsDecodeError(t *testing.T) {
	_, client := newStub(t, "", map[string]string{
		"/account_info": `[{}]`,
		"/address_info": `[{}]`,
		"/tx_info":      `[{}]`,
		"/asset_info":   `[{}]`,
	})
	ctx := context.Background()

	calls := map[string]func() error{
		"account": func() error { _, err := client.GetAccount(ctx, testStake); return err },
		"address": func() error { _, err := client.GetAddress(ctx, "addr1qx1"); return err },
		"tx":      func() error { _, err := client.GetTransaction(ctx, "abc"); return err },
		"asset":   func() error { _, err := client.GetAssetInfo(ctx, testPolicy, ""); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			var derr *rpc.DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "[{}]", derr.Body)
			var missing *cardano.MissingFieldError
			assert.ErrorAs(t, err, &missing)
		})
	}
}

func TestMissingIdentifiers(t *testing.T) {
	client := NewKoiosClient("http://127.0.0.1:1", "", time.Second)
	ctx := context.Background()

	_, err := client.GetAccount(ctx, "")
	assert.True(t, errors.Is(err, rpc.ErrConfiguration))
	_, err = client.GetAddress(ctx, "")
	assert.True(t, errors.Is(err, rpc.ErrConfiguration))
	_, err = client.GetTransaction(ctx, " ")
	assert.True(t, errors.Is(err, rpc.ErrConfiguration))
	_, err = client.GetAssetInfo(ctx, "", "6e7574636f696e")
	assert.True(t, errors.Is(err, rpc.ErrConfiguration))
}
