package koios

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/shopspring/decimal"
)

// addressType keeps the provider-agnostic heuristic: a stake part means a base (Shelley) address.
func addressType(addr *cardano.Address) cardano.AddressType {
	if addr.HasStakeAddress() {
		return cardano.AddressTypeShelley
	}
	return cardano.AddressTypeEnterprise
}

// sumAssets adds native asset quantities per unit, keeping the order units are first seen.
func sumAssets(utxos []utxo) ([]cardano.Amount, error) {
	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, u := range utxos {
		for _, a := range u.AssetList {
			q, err := cardano.ParseAmount(a.Quantity)
			if err != nil {
				return nil, fmt.Errorf("asset %s%s: %w", a.PolicyID, a.AssetName, err)
			}
			unit := cardano.AssetID(a.PolicyID, a.AssetName)
			cur, seen := totals[unit]
			if !seen {
				order = append(order, unit)
			}
			totals[unit] = cur.Add(q)
		}
	}

	out := make([]cardano.Amount, 0, len(order))
	for _, unit := range order {
		out = append(out, cardano.Amount{Unit: unit, Quantity: totals[unit].String()})
	}
	return out, nil
}

func withLovelace(lovelace string, assets []cardano.Amount) []cardano.Amount {
	out := make([]cardano.Amount, 0, len(assets)+1)
	out = append(out, cardano.Amount{Unit: cardano.LovelaceUnit, Quantity: lovelace})
	return append(out, assets...)
}

func (a *addressInfo) toAddress() (*cardano.Address, error) {
	assets, err := sumAssets(a.UTxOSet)
	if err != nil {
		return nil, err
	}
	addr := &cardano.Address{
		Address:      a.Address,
		StakeAddress: a.StakeAddress,
		IsScript:     a.ScriptAddress,
		Balances:     withLovelace(a.Balance, assets),
	}
	addr.Type = addressType(addr)
	return addr, addr.Validate()
}

func (t *txInfo) toTransaction() (*cardano.Transaction, error) {
	assets, err := sumAssets(t.Outputs)
	if err != nil {
		return nil, err
	}
	tx := &cardano.Transaction{
		Hash:                  t.TxHash,
		Block:                 t.BlockHash,
		BlockTimeEpochSeconds: t.TxTimestamp,
		Slot:                  t.AbsoluteSlot,
		Index:                 t.TxBlockIndex,
		FeesLovelace:          t.Fee,
		DepositLovelace:       t.Deposit,
		SizeBytes:             t.TxSize,
		InvalidBefore:         t.InvalidBefore,
		InvalidHereafter:      t.InvalidAfter,
		Outputs:               withLovelace(t.TotalOutput, assets),
		ValidContract:         t.ValidContract,
		UTXOCount:             int64(len(t.Inputs) + len(t.Outputs)),
		WithdrawalCount:       int64(len(t.Withdrawals)),
		AssetMintOrBurnCount:  int64(len(t.AssetsMinted)),
		RedeemerCount:         int64(len(t.Redeemers)),
	}
	if t.BlockHeight != nil {
		tx.BlockHeight = *t.BlockHeight
	}
	for _, c := range t.Certificates {
		switch {
		case c.Type == "delegation":
			tx.DelegationCount++
		case c.Type == "stake_registration" || c.Type == "stake_deregistration":
			tx.StakeCertCount++
		case c.Type == "pool_update":
			tx.PoolUpdateCount++
		case c.Type == "pool_retire":
			tx.PoolRetireCount++
		case strings.HasSuffix(c.Type, "_MIR"):
			tx.MIRCertCount++
		}
	}
	return tx, tx.Validate()
}

func (a *assetInfo) toAssetDetail() (*cardano.AssetDetail, error) {
	meta, err := mintingMetadata(a.MintingTxMetadata)
	if err != nil {
		return nil, err
	}
	asset := &cardano.AssetDetail{
		AssetID:           cardano.AssetID(a.PolicyID, a.AssetName),
		PolicyID:          a.PolicyID,
		AssetNameHex:      a.AssetName,
		AssetNameASCII:    cardano.HexToASCII(a.AssetName),
		Fingerprint:       a.Fingerprint,
		Quantity:          a.TotalSupply,
		InitialMintTxHash: a.MintingTxHash,
		MintOrBurnCount:   a.MintCount + a.BurnCount,
		OnchainMetadata:   meta,
		OffchainMetadata:  a.TokenRegistryMetadata,
	}
	return asset, asset.Validate()
}

// mintingMetadata accepts both the keyed object form ({"721": {...}}) and the
// older list form ([{"key": "721", "json": {...}}]).
func mintingMetadata(raw json.RawMessage) (map[string]any, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var entries []struct {
			Key  string `json:"key"`
			JSON any    `json:"json"`
		}
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("minting_tx_metadata: %w", err)
		}
		if len(entries) == 0 {
			return nil, nil
		}
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			out[e.Key] = e.JSON
		}
		return out, nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("minting_tx_metadata: %w", err)
	}
	return out, nil
}
