package blockfrost

import (
	"fmt"
	"strconv"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/common/constant"
	"github.com/fystack/cardano-query/pkg/common/enum"
)

const maxPageCount = 100

// Page holds the count/page/order parameters of list endpoints.
// The zero value means count=10, page=1, order=asc.
type Page struct {
	Count int        `json:"count" yaml:"count"`
	Page  int        `json:"page"  yaml:"page"`
	Order enum.Order `json:"order" yaml:"order"`
}

func (p Page) withDefaults() Page {
	if p.Count == 0 {
		p.Count = constant.DefaultPageCount
	}
	if p.Page == 0 {
		p.Page = constant.DefaultPage
	}
	if p.Order == "" {
		p.Order = constant.DefaultOrder
	}
	return p
}

// String identifies the page as count-page-order, defaults applied.
func (p Page) String() string {
	p = p.withDefaults()
	return fmt.Sprintf("%d-%d-%s", p.Count, p.Page, p.Order)
}

// PageKey identifies one page of a paginated lookup on id, e.g. a stake address.
func PageKey(id string, p Page) string {
	if id == "" {
		return ""
	}
	return id + "/" + p.String()
}

// Query validates the page and encodes it in count, page, order order.
func (p Page) Query() (*rpc.Query, error) {
	p = p.withDefaults()
	switch {
	case p.Count < 1 || p.Count > maxPageCount:
		return nil, &rpc.ConfigurationError{Field: "count", Reason: "must be between 1 and 100"}
	case p.Page < 1:
		return nil, &rpc.ConfigurationError{Field: "page", Reason: "must be positive"}
	case !p.Order.Valid():
		return nil, &rpc.ConfigurationError{Field: "order", Reason: "must be asc or desc"}
	}
	return rpc.NewQuery().
		Add("count", strconv.Itoa(p.Count)).
		Add("page", strconv.Itoa(p.Page)).
		Add("order", string(p.Order)), nil
}

// Rename tables from Blockfrost wire keys to record keys
var (
	accountFields = rpc.FieldMap{
		"stake_address":       "address",
		"active":              "active",
		"active_epoch":        "activeEpoch",
		"controlled_amount":   "controlledAmountLovelace",
		"rewards_sum":         "rewardsSumLovelace",
		"withdrawals_sum":     "withdrawalsSumLovelace",
		"reserves_sum":        "reservesSumLovelace",
		"treasury_sum":        "treasurySumLovelace",
		"withdrawable_amount": "withdrawableAmountLovelace",
		"pool_id":             "poolId",
		"drep_id":             "drepId",
	}

	addressFields = rpc.FieldMap{
		"address":       "address",
		"stake_address": "stakeAddress",
		"type":          "type",
		"script":        "isScript",
		"amount":        "balances",
	}

	amountFields = rpc.FieldMap{
		"unit":     "unit",
		"quantity": "quantity",
	}

	assetSummaryFields = rpc.FieldMap{
		"asset":    "assetId",
		"quantity": "quantity",
	}

	assetFields = rpc.FieldMap{
		"asset":                     "assetId",
		"policy_id":                 "policyId",
		"asset_name":                "assetNameHex",
		"fingerprint":               "fingerprint",
		"quantity":                  "quantity",
		"initial_mint_tx_hash":      "initialMintTxHash",
		"mint_or_burn_count":        "mintOrBurnCount",
		"onchain_metadata":          "onchainMetadata",
		"onchain_metadata_standard": "onchainMetadataStandard",
		"metadata":                  "offchainMetadata",
	}

	transactionFields = rpc.FieldMap{
		"hash":                     "hash",
		"block":                    "block",
		"block_height":             "blockHeight",
		"block_time":               "blockTimeEpochSeconds",
		"slot":                     "slot",
		"index":                    "index",
		"output_amount":            "outputs",
		"fees":                     "feesLovelace",
		"deposit":                  "depositLovelace",
		"size":                     "sizeBytes",
		"invalid_before":           "invalidBefore",
		"invalid_hereafter":        "invalidHereafter",
		"utxo_count":               "utxoCount",
		"withdrawal_count":         "withdrawalCount",
		"mir_cert_count":           "mirCertCount",
		"delegation_count":         "delegationCount",
		"stake_cert_count":         "stakeCertCount",
		"pool_update_count":        "poolUpdateCount",
		"pool_retire_count":        "poolRetireCount",
		"asset_mint_or_burn_count": "assetMintOrBurnCount",
		"redeemer_count":           "redeemerCount",
		"valid_contract":           "validContract",
	}
)
