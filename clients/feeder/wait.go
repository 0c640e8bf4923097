package feeder

import (
	"context"
	"time"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/pkg/errors"
)

var ErrTransactionRejected = errors.New("transaction rejected")

// WaitForTransaction polls the status of a transaction every interval until
// it is accepted (PENDING or later) or rejected. A rejection is returned as
// ErrTransactionRejected along with the status carrying the failure reason.
func (c *Client) WaitForTransaction(
	ctx context.Context,
	transactionHash *felt.Felt,
	interval time.Duration,
) (*starknet.TransactionStatusInfo, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.TransactionStatus(ctx, transactionHash)
		if err != nil {
			return nil, err
		}

		switch {
		case status.TxStatus.IsFailure():
			reason := status.FailureReason
			return status, errors.Wrapf(ErrTransactionRejected, "%s: %s", reason.Code, reason.ErrorMessage)
		case status.TxStatus.IsAccepted():
			return status, nil
		}
		c.log.Debugw("Waiting for transaction", "hash", transactionHash, "status", status.TxStatus)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
