package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fystack/cardano-query/internal/api"
	"github.com/fystack/cardano-query/internal/fetch"
	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/fystack/cardano-query/pkg/events"
	"github.com/fystack/cardano-query/pkg/infra"
	"github.com/spf13/cobra"
)

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 10, "Results per page (1-100)")
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().String("order", "asc", "Ordering: asc or desc")
}

func newBlockfrostCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blockfrost",
		Short: "Lookups against the Blockfrost API",
	}

	accountAddresses := &cobra.Command{
		Use:   "account-addresses <stake_address>",
		Short: "List the addresses of a stake account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := a.blockfrostClient().GetAccountAddresses(cmd.Context(), args[0], a.page(cmd))
			if err != nil {
				return err
			}
			return a.render(addrs, func() { renderAddresses(a.out, addrs) })
		},
	}
	addPageFlags(accountAddresses)

	accountAssets := &cobra.Command{
		Use:   "account-assets <stake_address>",
		Short: "List the assets held by a stake account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assets, err := a.blockfrostClient().GetAccountAssets(cmd.Context(), args[0], a.page(cmd))
			if err != nil {
				return err
			}
			return a.render(assets, func() { renderAmounts(a.out, "Assets", assets) })
		},
	}
	addPageFlags(accountAssets)

	assets := &cobra.Command{
		Use:   "assets",
		Short: "List native assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.blockfrostClient().ListAssets(cmd.Context(), a.page(cmd))
			if err != nil {
				return err
			}
			return a.render(list, func() { renderAssetSummaries(a.out, list) })
		},
	}
	addPageFlags(assets)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "account <stake_address>",
			Short: "Show a stake account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := a.blockfrostClient().GetAccount(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(account, func() { renderAccount(a.out, account) })
			},
		},
		accountAddresses,
		accountAssets,
		&cobra.Command{
			Use:   "address <address>",
			Short: "Show a payment address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				addr, err := a.blockfrostClient().GetAddress(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(addr, func() { renderAddress(a.out, addr) })
			},
		},
		assets,
		&cobra.Command{
			Use:   "asset <asset_id>",
			Short: "Show a native asset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				asset, err := a.blockfrostClient().GetAsset(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(asset, func() { renderAsset(a.out, asset) })
			},
		},
		&cobra.Command{
			Use:   "tx <hash>",
			Short: "Show a transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tx, err := a.blockfrostClient().GetTransaction(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(tx, func() { renderTransaction(a.out, tx) })
			},
		},
	)
	return cmd
}

func newKoiosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "koios",
		Short: "Lookups against the Koios API",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "account <stake_address>",
			Short: "Show a stake account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				account, err := a.koiosClient().GetAccount(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(account, func() { renderAccount(a.out, account) })
			},
		},
		&cobra.Command{
			Use:   "address <address>",
			Short: "Show a payment address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				addr, err := a.koiosClient().GetAddress(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(addr, func() { renderAddress(a.out, addr) })
			},
		},
		&cobra.Command{
			Use:   "asset <policy_id> [asset_name_hex]",
			Short: "Show a native asset",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := ""
				if len(args) == 2 {
					name = args[1]
				}
				asset, err := a.koiosClient().GetAssetInfo(cmd.Context(), args[0], name)
				if err != nil {
					return err
				}
				return a.render(asset, func() { renderAsset(a.out, asset) })
			},
		},
		&cobra.Command{
			Use:   "tx <hash>",
			Short: "Show a transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tx, err := a.koiosClient().GetTransaction(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.render(tx, func() { renderTransaction(a.out, tx) })
			},
		},
	)
	return cmd
}

func newSnapshotCmd(a *app) *cobra.Command {
	var q fetch.Queries
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run every configured lookup on both providers concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := a.queries(cmd, q)

			store, err := resultstore.New()
			if err != nil {
				return err
			}
			defer store.Close()

			opts := []fetch.Option{fetch.WithStore(store)}
			if a.cfg.NATS.Enabled {
				nc, err := infra.GetNATSConnection(a.cfg.NATS, a.cfg.Environment)
				if err != nil {
					return err
				}
				emitter := events.NewEmitter(nc, a.cfg.NATS.SubjectPrefix)
				defer emitter.Close()
				opts = append(opts, fetch.WithEmitter(emitter))
			}

			bf, ko, closeClients := a.providers()
			defer closeClients()

			runner := fetch.NewRunner(bf, ko, opts...)
			snap := runner.Snapshot(cmd.Context(), queries)
			if a.jsonOut {
				entries, err := store.List("")
				if err != nil {
					return err
				}
				return printJSON(a.out, entries)
			}
			renderSnapshot(a.out, snap)
			return nil
		},
	}
	cmd.Flags().StringVar(&q.StakeAddress, "stake", "", "Stake address (overrides config)")
	cmd.Flags().StringVar(&q.Address, "address", "", "Payment address (overrides config)")
	cmd.Flags().StringVar(&q.AssetID, "asset", "", "Asset id for Blockfrost (overrides config)")
	cmd.Flags().StringVar(&q.PolicyID, "policy", "", "Policy id for Koios (overrides config)")
	cmd.Flags().StringVar(&q.AssetName, "asset-name", "", "Hex asset name for Koios (overrides config)")
	cmd.Flags().StringVar(&q.TxHash, "tx", "", "Transaction hash (overrides config)")
	addPageFlags(cmd)
	return cmd
}

// queries merges flag overrides into the configured identifiers.
func (a *app) queries(cmd *cobra.Command, flags fetch.Queries) fetch.Queries {
	cq := a.cfg.Queries
	pick := func(flag, v, fallback string) string {
		if cmd.Flags().Changed(flag) {
			return v
		}
		return fallback
	}
	return fetch.Queries{
		StakeAddress: pick("stake", flags.StakeAddress, cq.StakeAddress),
		Address:      pick("address", flags.Address, cq.Address),
		AssetID:      pick("asset", flags.AssetID, cq.AssetID),
		PolicyID:     pick("policy", flags.PolicyID, cq.PolicyID),
		AssetName:    pick("asset-name", flags.AssetName, cq.AssetName),
		TxHash:       pick("tx", flags.TxHash, cq.TxHash),
		Page:         a.page(cmd),
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve lookups and stored results over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			store, err := resultstore.New()
			if err != nil {
				return err
			}
			defer store.Close()

			bf, ko, closeClients := a.providers()
			defer closeClients()

			router := api.NewRouter(bf, ko, store)
			srv := &http.Server{
				Addr:              addr,
				Handler:           router.Engine(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP gateway listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("Shutting down HTTP gateway")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}
