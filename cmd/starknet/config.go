package main

import (
	"strings"

	"github.com/NethermindEth/starknet-api/clients/feeder"
	"github.com/NethermindEth/starknet-api/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configF      = "config"
	networkF     = "network"
	feederURLF   = "feeder-url"
	gatewayURLF  = "gateway-url"
	logLevelF    = "log-level"
	colourF      = "colour"
	timeoutsF    = "timeouts"
	maxRetriesF  = "max-retries"
	apiKeyF      = "api-key"
	metricsAddrF = "metrics-addr"

	defaultConfig      = ""
	defaultFeederURL   = ""
	defaultGatewayURL  = ""
	defaultColour      = true
	defaultTimeouts    = feeder.DefaultTimeouts
	defaultMaxRetries  = 10
	defaultAPIKey      = ""
	defaultMetricsAddr = ""

	configFlagUsage = "The YAML configuration file."
	networkUsage    = "Options: mainnet, goerli, goerli2, integration, sepolia. " +
		"Picks the feeder and gateway URLs unless they are set explicitly."
	feederURLUsage  = "Feeder gateway base URL, e.g. https://alpha-mainnet.starknet.io/feeder_gateway/."
	gatewayURLUsage = "Gateway base URL, e.g. https://alpha-mainnet.starknet.io/gateway/."
	logLevelUsage   = "Options: trace, debug, info, warn, error."
	colourUsage     = "Use `--colour=false` command to disable colourized outputs (ANSI Escape Codes)."
	timeoutsUsage   = "Timeouts for requests to the feeder gateway. A single value (e.g. 5s) grows " +
		"on failures, a list (e.g. 5s,10s,30s) is walked up and down, and a trailing comma (e.g. 5s,) pins the value."
	maxRetriesUsage  = "Number of times a failed feeder request is retried."
	apiKeyUsage      = "API key sent to the feeder and gateway to bypass throttling."
	metricsAddrUsage = "Serves Prometheus metrics, the log level and the feeder timeouts on this address " +
		"(e.g. localhost:9090) while the command runs."

	envPrefix = "STARKNET"
)

// Config is assembled from flags, STARKNET_* environment variables and the
// optional YAML file, in that order of precedence.
type Config struct {
	Network     utils.Network  `mapstructure:"network"`
	FeederURL   string         `mapstructure:"feeder-url"`
	GatewayURL  string         `mapstructure:"gateway-url"`
	LogLevel    utils.LogLevel `mapstructure:"log-level"`
	Colour      bool           `mapstructure:"colour"`
	Timeouts    string         `mapstructure:"timeouts"`
	MaxRetries  int            `mapstructure:"max-retries"`
	APIKey      string         `mapstructure:"api-key"`
	MetricsAddr string         `mapstructure:"metrics-addr"`
}

func (c *Config) feederURL() string {
	if c.FeederURL != "" {
		return c.FeederURL
	}
	return c.Network.FeederURL()
}

func (c *Config) gatewayURL() string {
	if c.GatewayURL != "" {
		return c.GatewayURL
	}
	return c.Network.GatewayURL()
}

func addConfigFlags(cmd *cobra.Command) {
	defaultNetwork := utils.Mainnet
	defaultLogLevel := utils.NewLogLevel(utils.INFO)

	flags := cmd.PersistentFlags()
	flags.String(configF, defaultConfig, configFlagUsage)
	flags.Var(&defaultNetwork, networkF, networkUsage)
	flags.String(feederURLF, defaultFeederURL, feederURLUsage)
	flags.String(gatewayURLF, defaultGatewayURL, gatewayURLUsage)
	flags.Var(defaultLogLevel, logLevelF, logLevelUsage)
	flags.Bool(colourF, defaultColour, colourUsage)
	flags.String(timeoutsF, defaultTimeouts, timeoutsUsage)
	flags.Int(maxRetriesF, defaultMaxRetries, maxRetriesUsage)
	flags.String(apiKeyF, defaultAPIKey, apiKeyUsage)
	flags.String(metricsAddrF, defaultMetricsAddr, metricsAddrUsage)
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	cfgFile, err := cmd.Flags().GetString(configF)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err = v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	err = v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
