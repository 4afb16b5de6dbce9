package koios

import (
	"encoding/json"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/cardano"
)

const statusRegistered = "registered"

// Request bodies, always a single-element batch
type (
	accountInfoRequest struct {
		StakeAddresses []string `json:"_stake_addresses"`
	}
	addressInfoRequest struct {
		Addresses []string `json:"_addresses"`
	}
	txInfoRequest struct {
		TxHashes []string `json:"_tx_hashes"`
	}
)

var accountFields = rpc.FieldMap{
	"stake_address":     "address",
	"status":            "status",
	"total_balance":     "controlledAmountLovelace",
	"rewards":           "rewardsSumLovelace",
	"withdrawals":       "withdrawalsSumLovelace",
	"reserves":          "reservesSumLovelace",
	"treasury":          "treasurySumLovelace",
	"rewards_available": "withdrawableAmountLovelace",
	"delegated_pool":    "poolId",
	"delegated_drep":    "drepId",
}

type assetEntry struct {
	PolicyID  string `json:"policy_id"`
	AssetName string `json:"asset_name"`
	Quantity  string `json:"quantity"`
}

type utxo struct {
	TxHash    string       `json:"tx_hash"`
	TxIndex   int64        `json:"tx_index"`
	Value     string       `json:"value"`
	AssetList []assetEntry `json:"asset_list"`
}

type addressInfo struct {
	Address       string  `json:"address"`
	Balance       string  `json:"balance"`
	StakeAddress  *string `json:"stake_address"`
	ScriptAddress bool    `json:"script_address"`
	UTxOSet       []utxo  `json:"utxo_set"`
}

type certificate struct {
	Type string `json:"type"`
}

type txInfo struct {
	TxHash        string            `json:"tx_hash"`
	BlockHash     string            `json:"block_hash"`
	BlockHeight   *int64            `json:"block_height"`
	TxTimestamp   int64             `json:"tx_timestamp"`
	AbsoluteSlot  int64             `json:"absolute_slot"`
	TxBlockIndex  int64             `json:"tx_block_index"`
	TxSize        int64             `json:"tx_size"`
	TotalOutput   string            `json:"total_output"`
	Fee           string            `json:"fee"`
	Deposit       string            `json:"deposit"`
	InvalidBefore *string           `json:"invalid_before"`
	InvalidAfter  *string           `json:"invalid_after"`
	Inputs        []json.RawMessage `json:"inputs"`
	Outputs       []utxo            `json:"outputs"`
	Withdrawals   []json.RawMessage `json:"withdrawals"`
	AssetsMinted  []json.RawMessage `json:"assets_minted"`
	Certificates  []certificate     `json:"certificates"`
	Redeemers     []json.RawMessage `json:"redeemers"`
	ValidContract bool              `json:"valid_contract"`
}

type assetInfo struct {
	PolicyID              string                    `json:"policy_id"`
	AssetName             string                    `json:"asset_name"`
	Fingerprint           *string                   `json:"fingerprint"`
	MintingTxHash         string                    `json:"minting_tx_hash"`
	TotalSupply           string                    `json:"total_supply"`
	MintCount             int64                     `json:"mint_cnt"`
	BurnCount             int64                     `json:"burn_cnt"`
	MintingTxMetadata     json.RawMessage           `json:"minting_tx_metadata"`
	TokenRegistryMetadata *cardano.OffchainMetadata `json:"token_registry_metadata"`
}
