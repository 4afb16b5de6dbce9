package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/internal/rpc/blockfrost"
	"github.com/fystack/cardano-query/internal/rpc/koios"
	"github.com/fystack/cardano-query/pkg/common/config"
	"github.com/fystack/cardano-query/pkg/common/enum"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	debug      bool
	jsonOut    bool

	cfg *config.Config
	out io.Writer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "cardano-query",
		Short:        "Typed Cardano lookups against Blockfrost and Koios",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (defaults only when empty)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logs")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print records as JSON")

	root.AddCommand(
		newBlockfrostCmd(a),
		newKoiosCmd(a),
		newSnapshotCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.out = cmd.OutOrStdout()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		Writer:     cmd.ErrOrStderr(),
		TimeFormat: time.RFC3339,
	})
	logger.Debug("Config loaded",
		"environment", cfg.Environment,
		"blockfrost", cfg.Blockfrost.URL(),
		"koios", cfg.Koios.BaseURL,
	)
	return nil
}

func (a *app) blockfrostClient() *blockfrost.BlockfrostClient {
	return blockfrost.NewBlockfrostClient(a.cfg.Blockfrost.URL(), a.cfg.Blockfrost.ProjectID, a.cfg.Timeout)
}

func (a *app) koiosClient() *koios.KoiosClient {
	return koios.NewKoiosClient(a.cfg.Koios.BaseURL, a.cfg.Koios.APIToken, a.cfg.Timeout)
}

// providers builds both clients and returns a func that releases their idle connections.
func (a *app) providers() (*blockfrost.BlockfrostClient, *koios.KoiosClient, func()) {
	bf, ko := a.blockfrostClient(), a.koiosClient()
	for _, c := range []rpc.NetworkClient{bf, ko} {
		logger.Debug("Provider configured", "provider", c.GetProvider(), "url", c.GetURL())
	}
	return bf, ko, func() {
		bf.Close()
		ko.Close()
	}
}

func (a *app) page(cmd *cobra.Command) blockfrost.Page {
	p := blockfrost.Page{
		Count: a.cfg.Queries.Page.Count,
		Page:  a.cfg.Queries.Page.Page,
		Order: a.cfg.Queries.Page.Order,
	}
	if cmd.Flags().Changed("count") {
		p.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("page") {
		p.Page, _ = cmd.Flags().GetInt("page")
	}
	if cmd.Flags().Changed("order") {
		order, _ := cmd.Flags().GetString("order")
		p.Order = enum.Order(order)
	}
	return p
}
