package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fystack/cardano-query/internal/fetch"
	"github.com/fystack/cardano-query/pkg/cardano"
)

func (a *app) render(record any, text func()) error {
	if a.jsonOut {
		return printJSON(a.out, record)
	}
	text()
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// quantity shows lovelace as ADA and native assets as raw integers.
func quantity(a cardano.Amount) string {
	if a.Unit == cardano.LovelaceUnit {
		return cardano.FormatLovelace(a.Quantity)
	}
	return a.Quantity
}

func renderAccount(w io.Writer, a *cardano.StakeAccount) {
	tw := table(w)
	fmt.Fprintf(tw, "Stake address:\t%s\n", a.Address)
	fmt.Fprintf(tw, "Active:\t%t\n", a.Active)
	if a.Status != "" {
		fmt.Fprintf(tw, "Status:\t%s\n", a.Status)
	}
	if a.ActiveEpoch != 0 {
		fmt.Fprintf(tw, "Active epoch:\t%d\n", a.ActiveEpoch)
	}
	fmt.Fprintf(tw, "Controlled:\t%s\n", cardano.FormatLovelace(a.ControlledAmountLovelace))
	fmt.Fprintf(tw, "Rewards:\t%s\n", cardano.FormatLovelace(a.RewardsSumLovelace))
	fmt.Fprintf(tw, "Withdrawals:\t%s\n", cardano.FormatLovelace(a.WithdrawalsSumLovelace))
	if a.WithdrawableAmountLovelace != "" {
		fmt.Fprintf(tw, "Withdrawable:\t%s\n", cardano.FormatLovelace(a.WithdrawableAmountLovelace))
	}
	fmt.Fprintf(tw, "Pool:\t%s\n", optional(a.PoolID))
	fmt.Fprintf(tw, "DRep:\t%s\n", optional(a.DRepID))
	tw.Flush()
}

func renderAddress(w io.Writer, a *cardano.Address) {
	tw := table(w)
	fmt.Fprintf(tw, "Address:\t%s\n", a.Address)
	fmt.Fprintf(tw, "Stake address:\t%s\n", optional(a.StakeAddress))
	fmt.Fprintf(tw, "Type:\t%s\n", a.Type)
	fmt.Fprintf(tw, "Script:\t%t\n", a.IsScript)
	tw.Flush()
	renderAmounts(w, "Balances", a.Balances)
}

func renderAddresses(w io.Writer, addrs []cardano.Address) {
	for _, a := range addrs {
		fmt.Fprintln(w, a.Address)
	}
}

func renderAmounts(w io.Writer, title string, amounts []cardano.Amount) {
	fmt.Fprintf(w, "%s (%d):\n", title, len(amounts))
	tw := table(w)
	for _, a := range amounts {
		fmt.Fprintf(tw, "  %s\t%s\n", a.Unit, quantity(a))
	}
	tw.Flush()
}

func renderAssetSummaries(w io.Writer, assets []cardano.AssetSummary) {
	tw := table(w)
	fmt.Fprintln(tw, "ASSET\tQUANTITY")
	for _, a := range assets {
		fmt.Fprintf(tw, "%s\t%s\n", a.AssetID, a.Quantity)
	}
	tw.Flush()
}

func renderAsset(w io.Writer, a *cardano.AssetDetail) {
	tw := table(w)
	fmt.Fprintf(tw, "Asset:\t%s\n", a.AssetID)
	fmt.Fprintf(tw, "Policy:\t%s\n", a.PolicyID)
	fmt.Fprintf(tw, "Name:\t%s (%s)\n", a.AssetNameASCII, a.AssetNameHex)
	fmt.Fprintf(tw, "Fingerprint:\t%s\n", optional(a.Fingerprint))
	fmt.Fprintf(tw, "Quantity:\t%s\n", a.Quantity)
	fmt.Fprintf(tw, "Mint/burn count:\t%d\n", a.MintOrBurnCount)
	if a.InitialMintTxHash != "" {
		fmt.Fprintf(tw, "Initial mint tx:\t%s\n", a.InitialMintTxHash)
	}
	if a.OffchainMetadata != nil {
		m := a.OffchainMetadata
		fmt.Fprintf(tw, "Registry name:\t%s\n", m.Name)
		if m.Ticker != "" {
			fmt.Fprintf(tw, "Ticker:\t%s\n", m.Ticker)
		}
		if m.Decimals != nil {
			fmt.Fprintf(tw, "Decimals:\t%d\n", *m.Decimals)
		}
	}
	if len(a.OnchainMetadata) > 0 {
		keys := make([]string, 0, len(a.OnchainMetadata))
		for k := range a.OnchainMetadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		fmt.Fprintf(tw, "On-chain metadata:\t%s\n", strings.Join(keys, ", "))
	}
	tw.Flush()
}

func renderTransaction(w io.Writer, tx *cardano.Transaction) {
	tw := table(w)
	fmt.Fprintf(tw, "Hash:\t%s\n", tx.Hash)
	fmt.Fprintf(tw, "Block:\t%s (height %d)\n", tx.Block, tx.BlockHeight)
	fmt.Fprintf(tw, "Slot:\t%d\n", tx.Slot)
	fmt.Fprintf(tw, "Time:\t%d\n", tx.BlockTimeEpochSeconds)
	fmt.Fprintf(tw, "Fees:\t%s\n", cardano.FormatLovelace(tx.FeesLovelace))
	fmt.Fprintf(tw, "Deposit:\t%s lovelace\n", tx.DepositLovelace)
	fmt.Fprintf(tw, "Size:\t%d bytes\n", tx.SizeBytes)
	fmt.Fprintf(tw, "Valid contract:\t%t\n", tx.ValidContract)
	tw.Flush()
	renderAmounts(w, "Outputs", tx.Outputs)
}

func renderSnapshot(w io.Writer, snap *fetch.Snapshot) {
	tw := table(w)
	fmt.Fprintln(tw, "PROVIDER\tKIND\tID\tRESULT\tELAPSED")
	for _, r := range snap.Results {
		result := "ok"
		if r.Err != nil {
			result = r.Err.Error()
		} else if acc, ok := r.Record.(*cardano.StakeAccount); ok {
			result = cardano.FormatLovelace(acc.ControlledAmountLovelace)
		}
		id := r.ID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Provider, r.Kind, id, result, r.Elapsed.Round(time.Millisecond))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d/%d lookups succeeded\n", len(snap.Results)-len(snap.Failed()), len(snap.Results))
}
