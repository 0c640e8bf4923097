package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/olekukonko/tablewriter"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

func catalogueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogue",
		Short: "Lists the supported operations with their query, request and response shapes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Path", "Method", "Query", "Request", "Response"})
			for _, d := range starknet.Catalogue() {
				table.Append([]string{d.Path(), d.Method, d.Query.String(), d.Request.String(), d.Response.String()})
			}
			table.Render()
			return nil
		},
	}
}

func getContractAddressesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get_contract_addresses",
		Short: "Prints the L1 addresses of the StarkNet core contract and the GPS statement verifier.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addresses, err := a.feeder.ContractAddresses(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), addresses)
		},
	}
}

func addTransactionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_transaction --file TRANSACTION_JSON",
		Short: "Submits a DEPLOY or INVOKE_FUNCTION transaction read from a JSON file (- for stdin).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := cmd.Flags().GetString(fileF)
			if err != nil {
				return err
			}

			var data []byte
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return err
			}

			var txn starknet.TaggedTransaction
			if err = json.Unmarshal(data, &txn); err != nil {
				return fmt.Errorf("read transaction from %s: %w", file, err)
			}
			if txn.Transaction == nil {
				return fmt.Errorf("read transaction from %s: empty transaction", file)
			}

			resp, err := a.gateway.AddTransaction(cmd.Context(), txn.Transaction)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().String(fileF, "", "Transaction JSON file.")
	_ = cmd.MarkFlagRequired(fileF)
	return cmd
}

func getTransactionCmd(a *app) *cobra.Command {
	hash := new(feltValue)
	cmd := &cobra.Command{
		Use:   "get_transaction --hash TRANSACTION_HASH",
		Short: "Prints a transaction together with its status and position in the block.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.feeder.Transaction(cmd.Context(), hash.value)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().Var(hash, hashF, "Transaction hash.")
	_ = cmd.MarkFlagRequired(hashF)
	return cmd
}

func getTransactionStatusCmd(a *app) *cobra.Command {
	hash := new(feltValue)
	cmd := &cobra.Command{
		Use:   "get_transaction_status --hash TRANSACTION_HASH",
		Short: "Prints the status of a transaction and, for rejected ones, the failure reason.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.feeder.TransactionStatus(cmd.Context(), hash.value)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
	cmd.Flags().Var(hash, hashF, "Transaction hash.")
	_ = cmd.MarkFlagRequired(hashF)
	return cmd
}

func getTransactionReceiptCmd(a *app) *cobra.Command {
	hash := new(feltValue)
	cmd := &cobra.Command{
		Use:   "get_transaction_receipt --hash TRANSACTION_HASH",
		Short: "Prints the receipt of a transaction: its L2 to L1 messages and events.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			receipt, err := a.feeder.TransactionReceipt(cmd.Context(), hash.value)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), receipt)
		},
	}
	cmd.Flags().Var(hash, hashF, "Transaction hash.")
	_ = cmd.MarkFlagRequired(hashF)
	return cmd
}

func getStorageAtCmd(a *app) *cobra.Command {
	var (
		address = new(feltValue)
		key     = new(feltValue)
		blockID = starknet.LatestBlock
	)
	cmd := &cobra.Command{
		Use:   "get_storage_at --contract_address CONTRACT_ADDRESS --key KEY",
		Short: "Prints the value stored under a key of a contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := a.feeder.StorageAt(cmd.Context(), address.value, key.value, blockID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), value)
		},
	}
	cmd.Flags().Var(address, contractAddressF, feltUsage)
	cmd.Flags().Var(key, keyF, feltUsage)
	cmd.Flags().Var(&blockID, blockF, blockUsage)
	_ = cmd.MarkFlagRequired(contractAddressF)
	_ = cmd.MarkFlagRequired(keyF)
	return cmd
}

func getCodeCmd(a *app) *cobra.Command {
	var (
		address = new(feltValue)
		blockID = starknet.LatestBlock
	)
	cmd := &cobra.Command{
		Use:   "get_code --contract_address CONTRACT_ADDRESS",
		Short: "Prints the bytecode and abi of a deployed contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := a.feeder.Code(cmd.Context(), address.value, blockID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), code)
		},
	}
	cmd.Flags().Var(address, contractAddressF, feltUsage)
	cmd.Flags().Var(&blockID, blockF, blockUsage)
	_ = cmd.MarkFlagRequired(contractAddressF)
	return cmd
}

func getBlockCmd(a *app) *cobra.Command {
	blockID := starknet.LatestBlock
	cmd := &cobra.Command{
		Use:   "get_block [--block BLOCK]",
		Short: "Prints a block with its transactions and receipts. Defaults to the latest block.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			block, err := a.feeder.Block(cmd.Context(), blockID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), block)
		},
	}
	cmd.Flags().Var(&blockID, blockF, blockUsage)
	return cmd
}

func getBlocksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_blocks --from FIRST --to LAST",
		Short: "Fetches a range of blocks concurrently and prints a summary table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := cmd.Flags().GetUint64(fromF)
			if err != nil {
				return err
			}
			to, err := cmd.Flags().GetUint64(toF)
			if err != nil {
				return err
			}
			concurrency, err := cmd.Flags().GetInt(concurrencyF)
			if err != nil {
				return err
			}
			if to < from {
				return fmt.Errorf("--%s %d is before --%s %d", toF, to, fromF, from)
			}
			if concurrency < 1 {
				return errors.New("concurrency must be positive")
			}

			blockPool := pool.NewWithResults[*starknet.Block]().
				WithContext(cmd.Context()).
				WithCancelOnError().
				WithMaxGoroutines(concurrency)
			// Stops at to explicitly so that to = MaxUint64 cannot wrap around.
			for number := from; ; number++ {
				blockPool.Go(func(ctx context.Context) (*starknet.Block, error) {
					a.log.Debugw("Fetching block", "number", number)
					return a.feeder.Block(ctx, starknet.BlockByNumber(number))
				})
				if number == to {
					break
				}
			}
			blocks, err := blockPool.Wait()
			if err != nil {
				return err
			}

			slices.SortFunc(blocks, func(x, y *starknet.Block) int {
				return cmp.Compare(x.BlockNumber, y.BlockNumber)
			})

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Number", "Hash", "Status", "Transactions", "Timestamp"})
			var total int
			for _, block := range blocks {
				total += len(block.Transactions)
				table.Append([]string{
					strconv.FormatUint(block.BlockNumber, 10),
					block.BlockHash.String(),
					block.Status.String(),
					strconv.Itoa(len(block.Transactions)),
					time.Unix(int64(block.Timestamp), 0).UTC().Format(time.RFC3339),
				})
			}
			table.SetFooter([]string{"", "", "Total", strconv.Itoa(total), ""})
			table.Render()
			return nil
		},
	}
	cmd.Flags().Uint64(fromF, 0, "First block number.")
	cmd.Flags().Uint64(toF, 0, "Last block number, inclusive.")
	cmd.Flags().Int(concurrencyF, defaultConcurrency, "Number of blocks fetched at once.")
	_ = cmd.MarkFlagRequired(toF)
	return cmd
}

// callFlags are shared by call_contract and estimate_fee.
type callFlags struct {
	address   feltValue
	selector  feltValue
	calldata  []string
	signature []string
}

func (f *callFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(&f.address, contractAddressF, feltUsage)
	cmd.Flags().Var(&f.selector, selectorF, feltUsage)
	cmd.Flags().StringSliceVar(&f.calldata, calldataF, nil, feltListUsage)
	cmd.Flags().StringSliceVar(&f.signature, signatureF, nil, feltListUsage)
	_ = cmd.MarkFlagRequired(contractAddressF)
	_ = cmd.MarkFlagRequired(selectorF)
}

func (f *callFlags) call() (*starknet.CallContractTransaction, error) {
	calldata, err := parseFelts(f.calldata)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", calldataF, err)
	}
	signature, err := parseFelts(f.signature)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", signatureF, err)
	}

	invoke, err := starknet.NewInvokeFunctionTransaction(f.address.value, f.selector.value,
		starknet.WithCalldata(calldata...),
		starknet.WithSignature(signature...),
	)
	if err != nil {
		return nil, err
	}
	return invoke.CallContract()
}

func callContractCmd(a *app) *cobra.Command {
	var (
		flags   callFlags
		blockID = starknet.LatestBlock
	)
	cmd := &cobra.Command{
		Use:   "call_contract --contract_address ADDRESS --entry_point_selector SELECTOR",
		Short: "Calls a contract function without creating a transaction and prints the result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			call, err := flags.call()
			if err != nil {
				return err
			}
			resp, err := a.feeder.CallContract(cmd.Context(), call, blockID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	flags.register(cmd)
	cmd.Flags().Var(&blockID, blockF, blockUsage)
	return cmd
}

func estimateFeeCmd(a *app) *cobra.Command {
	var flags callFlags
	cmd := &cobra.Command{
		Use:   "estimate_fee --contract_address ADDRESS --entry_point_selector SELECTOR",
		Short: "Prints the fee estimate for invoking a contract function.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			call, err := flags.call()
			if err != nil {
				return err
			}
			fee, err := a.feeder.EstimateFee(cmd.Context(), call)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fee)
		},
	}
	flags.register(cmd)
	return cmd
}

func waitForTransactionCmd(a *app) *cobra.Command {
	hash := new(feltValue)
	cmd := &cobra.Command{
		Use:   "wait_for_transaction --hash TRANSACTION_HASH",
		Short: "Polls the status of a transaction until it is accepted or rejected.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval, err := cmd.Flags().GetDuration(intervalF)
			if err != nil {
				return err
			}
			if interval <= 0 {
				return errors.New("interval must be positive")
			}

			status, err := a.feeder.WaitForTransaction(cmd.Context(), hash.value, interval)
			if status != nil {
				if printErr := printJSON(cmd.OutOrStdout(), status); printErr != nil {
					return printErr
				}
			}
			return err
		},
	}
	cmd.Flags().Var(hash, hashF, "Transaction hash.")
	cmd.Flags().Duration(intervalF, defaultWaitInterval, "Time between two status queries.")
	_ = cmd.MarkFlagRequired(hashF)
	return cmd
}
