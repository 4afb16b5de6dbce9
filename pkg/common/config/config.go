package config

import (
	"time"

	"github.com/fystack/cardano-query/pkg/common/constant"
	"github.com/fystack/cardano-query/pkg/common/enum"
)

type Config struct {
	Environment string           `yaml:"environment" validate:"required,oneof=production development"`
	LogLevel    string           `yaml:"log_level"   validate:"omitempty,oneof=debug info warn error"`
	Timeout     time.Duration    `yaml:"timeout"     validate:"min=0"`
	Blockfrost  BlockfrostConfig `yaml:"blockfrost"`
	Koios       KoiosConfig      `yaml:"koios"`
	Queries     QueriesConfig    `yaml:"queries"`
	NATS        NatsConfig       `yaml:"nats"`
	Server      ServerConfig     `yaml:"server"`
}

type BlockfrostConfig struct {
	Network      enum.Network `yaml:"network"        validate:"required,oneof=mainnet preprod preview ipfs milkomeda-mainnet milkomeda-testnet"`
	BaseURL      string       `yaml:"base_url"       validate:"omitempty,url"`
	ProjectID    string       `yaml:"project_id"`
	ProjectIDEnv string       `yaml:"project_id_env"`
}

// URL returns the base URL override, or the known URL of the configured network.
func (c BlockfrostConfig) URL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return constant.BlockfrostURLs[c.Network]
}

type KoiosConfig struct {
	BaseURL     string `yaml:"base_url"      validate:"required,url"`
	APIToken    string `yaml:"api_token"`
	APITokenEnv string `yaml:"api_token_env"`
}

// QueriesConfig holds the identifiers used by the snapshot command.
// Empty identifiers are reported per lookup, not at load time.
type QueriesConfig struct {
	StakeAddress string     `yaml:"stake_address"`
	Address      string     `yaml:"address"`
	AssetID      string     `yaml:"asset_id"`
	PolicyID     string     `yaml:"policy_id"`
	AssetName    string     `yaml:"asset_name"`
	TxHash       string     `yaml:"tx_hash"`
	Page         PageConfig `yaml:"page"`
}

type PageConfig struct {
	Count int        `yaml:"count" validate:"min=1,max=100"`
	Page  int        `yaml:"page"  validate:"min=1"`
	Order enum.Order `yaml:"order" validate:"oneof=asc desc"`
}

type NatsConfig struct {
	Enabled       bool          `yaml:"enabled"`
	URL           string        `yaml:"url"            validate:"required_if=Enabled true"`
	SubjectPrefix string        `yaml:"subject_prefix" validate:"required_if=Enabled true"`
	Username      string        `yaml:"username"`
	Password      string        `yaml:"password"`
	TLS           NatsTLSConfig `yaml:"tls"`
}

type NatsTLSConfig struct {
	ClientCert string `yaml:"client_cert"`
	ClientKey  string `yaml:"client_key"`
	CACert     string `yaml:"ca_cert"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// Defaults returns the configuration used for every field the file leaves empty.
func Defaults() Config {
	return Config{
		Environment: constant.EnvDevelopment,
		LogLevel:    "info",
		Blockfrost: BlockfrostConfig{
			Network:      enum.NetworkMainnet,
			ProjectIDEnv: "BLOCKFROST_PROJECT_ID",
		},
		Koios: KoiosConfig{
			BaseURL:     constant.KoiosMainnetURL,
			APITokenEnv: "KOIOS_API_TOKEN",
		},
		Queries: QueriesConfig{
			Page: PageConfig{
				Count: constant.DefaultPageCount,
				Page:  constant.DefaultPage,
				Order: constant.DefaultOrder,
			},
		},
		NATS: NatsConfig{
			SubjectPrefix: "cardano.records",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
