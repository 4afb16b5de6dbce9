package cardano

import (
	"encoding/json"
	"fmt"
	"strings"
)

type AddressType string

const (
	AddressTypeShelley    AddressType = "Shelley"
	AddressTypeEnterprise AddressType = "Enterprise"
	AddressTypeByron      AddressType = "Byron"
)

// UnmarshalJSON accepts the provider spelling ("shelley", "byron") as well as the canonical one.
func (t *AddressType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "":
		*t = ""
	case "shelley":
		*t = AddressTypeShelley
	case "enterprise":
		*t = AddressTypeEnterprise
	case "byron":
		*t = AddressTypeByron
	default:
		return fmt.Errorf("unknown address type %q", s)
	}
	return nil
}

// Amount is a (unit, quantity) pair. Unit "lovelace" is ADA, anything else is policyID ‖ assetNameHex.
type Amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// StakeAccount represents a delegation/reward account
type StakeAccount struct {
	Address                    string  `json:"address"`
	Active                     bool    `json:"active"`
	ActiveEpoch                int64   `json:"activeEpoch"`
	Status                     string  `json:"status,omitempty"`
	ControlledAmountLovelace   string  `json:"controlledAmountLovelace"`
	RewardsSumLovelace         string  `json:"rewardsSumLovelace"`
	WithdrawalsSumLovelace     string  `json:"withdrawalsSumLovelace"`
	ReservesSumLovelace        string  `json:"reservesSumLovelace,omitempty"`
	TreasurySumLovelace        string  `json:"treasurySumLovelace,omitempty"`
	WithdrawableAmountLovelace string  `json:"withdrawableAmountLovelace,omitempty"`
	PoolID                     *string `json:"poolId,omitempty"`
	DRepID                     *string `json:"drepId,omitempty"`
}

// Address represents a payment address and its balances
type Address struct {
	Address      string      `json:"address"`
	StakeAddress *string     `json:"stakeAddress,omitempty"`
	Type         AddressType `json:"type,omitempty"`
	IsScript     bool        `json:"isScript"`
	Balances     []Amount    `json:"balances,omitempty"`
}

// AssetSummary is a row of the asset list endpoint
type AssetSummary struct {
	AssetID  string `json:"assetId"`
	Quantity string `json:"quantity"`
}

// OffchainMetadata is the token registry metadata of an asset
type OffchainMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ticker      string `json:"ticker,omitempty"`
	URL         string `json:"url,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Decimals    *int   `json:"decimals,omitempty"`
}

// AssetDetail represents a single native asset
type AssetDetail struct {
	AssetID                 string            `json:"assetId"`
	PolicyID                string            `json:"policyId"`
	AssetNameHex            string            `json:"assetNameHex"`
	AssetNameASCII          string            `json:"assetNameAscii"`
	Fingerprint             *string           `json:"fingerprint,omitempty"`
	Quantity                string            `json:"quantity"`
	InitialMintTxHash       string            `json:"initialMintTxHash,omitempty"`
	MintOrBurnCount         int64             `json:"mintOrBurnCount"`
	OnchainMetadata         map[string]any    `json:"onchainMetadata,omitempty"`
	OnchainMetadataStandard *string           `json:"onchainMetadataStandard,omitempty"`
	OffchainMetadata        *OffchainMetadata `json:"offchainMetadata,omitempty"`
}

// Transaction represents a Cardano transaction
type Transaction struct {
	Hash                  string   `json:"hash"`
	Block                 string   `json:"block"`
	BlockHeight           int64    `json:"blockHeight"`
	BlockTimeEpochSeconds int64    `json:"blockTimeEpochSeconds"`
	Slot                  int64    `json:"slot"`
	Index                 int64    `json:"index"`
	FeesLovelace          string   `json:"feesLovelace"`
	DepositLovelace       string   `json:"depositLovelace"`
	SizeBytes             int64    `json:"sizeBytes"`
	InvalidBefore         *string  `json:"invalidBefore,omitempty"`
	InvalidHereafter      *string  `json:"invalidHereafter,omitempty"`
	Outputs               []Amount `json:"outputs"`
	ValidContract         bool     `json:"validContract"`
	UTXOCount             int64    `json:"utxoCount"`
	WithdrawalCount       int64    `json:"withdrawalCount"`
	MIRCertCount          int64    `json:"mirCertCount"`
	DelegationCount       int64    `json:"delegationCount"`
	StakeCertCount        int64    `json:"stakeCertCount"`
	PoolUpdateCount       int64    `json:"poolUpdateCount"`
	PoolRetireCount       int64    `json:"poolRetireCount"`
	AssetMintOrBurnCount  int64    `json:"assetMintOrBurnCount"`
	RedeemerCount         int64    `json:"redeemerCount"`
}

// AssetID concatenates a policy id and a hex asset name.
func AssetID(policyID, assetNameHex string) string {
	return policyID + assetNameHex
}

// HasStakeAddress reports whether the address carries a non-empty stake address.
func (a *Address) HasStakeAddress() bool {
	return a.StakeAddress != nil && *a.StakeAddress != ""
}
