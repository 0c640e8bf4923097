package feeder

import (
	"context"
	"time"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
)

//go:generate mockgen -destination=../../mocks/mock_feeder.go -package=mocks github.com/NethermindEth/starknet-api/clients/feeder Reader
type Reader interface {
	ContractAddresses(ctx context.Context) (*starknet.ContractAddresses, error)
	Transaction(ctx context.Context, transactionHash *felt.Felt) (*starknet.GetTransactionResponse, error)
	TransactionStatus(ctx context.Context, transactionHash *felt.Felt) (*starknet.TransactionStatusInfo, error)
	TransactionReceipt(ctx context.Context, transactionHash *felt.Felt) (*starknet.TransactionReceipt, error)
	StorageAt(ctx context.Context, contractAddress, key *felt.Felt, blockID starknet.BlockIdentifier) (starknet.StorageValue, error)
	Code(ctx context.Context, contractAddress *felt.Felt, blockID starknet.BlockIdentifier) (*starknet.CodeInfo, error)
	Block(ctx context.Context, blockID starknet.BlockIdentifier) (*starknet.Block, error)
	CallContract(ctx context.Context, call *starknet.CallContractTransaction,
		blockID starknet.BlockIdentifier) (*starknet.CallContractResponse, error)
	EstimateFee(ctx context.Context, call *starknet.CallContractTransaction) (starknet.EstimateFeeResponse, error)
	WaitForTransaction(ctx context.Context, transactionHash *felt.Felt, interval time.Duration) (*starknet.TransactionStatusInfo, error)
}

var _ Reader = (*Client)(nil)
