package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"

	"github.com/NethermindEth/starknet-api/clients/feeder"
	"github.com/NethermindEth/starknet-api/clients/gateway"
	"github.com/NethermindEth/starknet-api/metrics"
	"github.com/NethermindEth/starknet-api/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var Version string

// ClientsFn builds the clients the sub-commands talk to. listener is nil
// unless metrics are enabled.
type ClientsFn func(cfg *Config, log utils.SimpleLogger, listener feeder.EventListener) (feeder.Reader, gateway.Writer, error)

// NewClients is the ClientsFn used by the binary.
func NewClients(cfg *Config, log utils.SimpleLogger, listener feeder.EventListener) (feeder.Reader, gateway.Writer, error) {
	timeouts, fixed, err := feeder.ParseTimeouts(cfg.Timeouts)
	if err != nil {
		return nil, nil, err
	}

	userAgent := "starknet-api/" + Version
	client := feeder.NewClient(cfg.feederURL()).
		WithUserAgent(userAgent).
		WithAPIKey(cfg.APIKey).
		WithLogger(log).
		WithMaxRetries(cfg.MaxRetries).
		WithTimeouts(timeouts, fixed)
	if listener != nil {
		client.WithListener(listener)
	}

	gw := gateway.NewClient(cfg.gatewayURL(), log).
		WithUserAgent(userAgent).
		WithAPIKey(cfg.APIKey)
	return client, gw, nil
}

// app is the state shared by the sub-commands once flags are parsed.
type app struct {
	cfg     *Config
	log     utils.SimpleLogger
	feeder  feeder.Reader
	gateway gateway.Writer

	stopMetrics func() error
}

func NewCmd(newClients ClientsFn) *cobra.Command {
	a := new(app)

	cmd := &cobra.Command{
		Use:           "starknet",
		Short:         "Query the StarkNet feeder gateway and submit transactions to the gateway.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addConfigFlags(cmd)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.init(cmd, newClients)
	}
	cmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		if a.stopMetrics != nil {
			return a.stopMetrics()
		}
		return nil
	}

	cmd.AddCommand(
		catalogueCmd(),
		getContractAddressesCmd(a),
		addTransactionCmd(a),
		getTransactionCmd(a),
		getTransactionStatusCmd(a),
		getTransactionReceiptCmd(a),
		getStorageAtCmd(a),
		getCodeCmd(a),
		getBlockCmd(a),
		getBlocksCmd(a),
		callContractCmd(a),
		estimateFeeCmd(a),
		waitForTransactionCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command, newClients ClientsFn) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := utils.NewZapLogger(&cfg.LogLevel, cfg.Colour)
	if err != nil {
		return err
	}
	a.log = log

	var listener feeder.EventListener
	registry := metrics.NewRegistry()
	if cfg.MetricsAddr != "" {
		listener = metrics.NewFeederListener(registry)
	}

	a.feeder, a.gateway, err = newClients(cfg, log, listener)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		return a.serveMetrics(cmd.Context(), registry)
	}
	return nil
}

func (a *app) serveMetrics(ctx context.Context, registry *prometheus.Registry) error {
	listener, err := net.Listen("tcp", a.cfg.MetricsAddr)
	if err != nil {
		return err
	}
	client, _ := a.feeder.(*feeder.Client)
	server := metrics.NewServer(listener, registry, &a.cfg.LogLevel, client)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()
	a.log.Infow("Serving metrics", "addr", listener.Addr().String())

	a.stopMetrics = func() error {
		cancel()
		return <-done
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
