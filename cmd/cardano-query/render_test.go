package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fystack/cardano-query/internal/fetch"
	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/stretchr/testify/assert"
)

func TestRenderAddress(t *testing.T) {
	var buf bytes.Buffer
	renderAddress(&buf, &cardano.Address{
		Address: "addr1qx1",
		Type:    cardano.AddressTypeEnterprise,
		Balances: []cardano.Amount{
			{Unit: "lovelace", Quantity: "42000000"},
			{Unit: "abc6e7574", Quantity: "12"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Enterprise")
	assert.Contains(t, out, "Stake address:  -")
	assert.Contains(t, out, "Balances (2):")
	assert.Contains(t, out, "42.00 ₳")
	assert.Contains(t, out, "abc6e7574  12")
}

func TestRenderAsset(t *testing.T) {
	decimals := 6
	var buf bytes.Buffer
	renderAsset(&buf, &cardano.AssetDetail{
		AssetID:          "p6e7574636f696e",
		PolicyID:         "p",
		AssetNameHex:     "6e7574636f696e",
		AssetNameASCII:   "nutcoin",
		Quantity:         "12000",
		OnchainMetadata:  map[string]any{"name": "x", "image": "y"},
		OffchainMetadata: &cardano.OffchainMetadata{Name: "nutcoin", Ticker: "nutc", Decimals: &decimals},
	})

	out := buf.String()
	assert.Contains(t, out, "nutcoin (6e7574636f696e)")
	assert.Contains(t, out, "nutc")
	assert.Contains(t, out, "image, name")
}

func TestRenderSnapshot(t *testing.T) {
	var buf bytes.Buffer
	renderSnapshot(&buf, &fetch.Snapshot{Results: []fetch.Result{
		{Provider: "blockfrost", Kind: "account", ID: "stake1", Record: &cardano.StakeAccount{ControlledAmountLovelace: "5000000"}, Elapsed: 12 * time.Millisecond},
		{Provider: "koios", Kind: "tx", Err: errors.New("configuration error: tx_hash is required")},
	}})

	out := buf.String()
	assert.Contains(t, out, "5.00 ₳")
	assert.Contains(t, out, "tx_hash is required")
	assert.Contains(t, out, "1/2 lookups succeeded")
}
