package starknet

import (
	"encoding/json"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/pkg/errors"
)

type AddTransactionResponse struct {
	Code            AddTransactionCode `json:"code" validate:"required"`
	TransactionHash *felt.Felt         `json:"transaction_hash" validate:"required"`
	// Address is only set for deployments.
	Address *felt.Felt `json:"address,omitempty"`
}

type GetTransactionResponse struct {
	Status           Status            `json:"status" validate:"required"`
	Transaction      TaggedTransaction `json:"transaction"`
	BlockHash        *felt.Felt        `json:"block_hash,omitempty"`
	BlockNumber      BlockNumber       `json:"block_number"`
	TransactionIndex uint64            `json:"transaction_index"`
	TransactionHash  *felt.Felt        `json:"transaction_hash,omitempty"`
}

// Validate requires the transaction body for every status except
// NOT_RECEIVED, for which the gateway has nothing to return.
func (r *GetTransactionResponse) Validate() error {
	if err := Validator().Struct(r); err != nil {
		return err
	}
	if r.Status == NotReceived {
		return nil
	}
	if r.Transaction.Transaction == nil {
		return errors.Errorf("transaction with status %s has no body", r.Status)
	}
	return r.Transaction.Validate()
}

// MarshalJSON leaves the transaction out for NOT_RECEIVED responses.
func (r GetTransactionResponse) MarshalJSON() ([]byte, error) {
	type alias GetTransactionResponse
	if r.Transaction.Transaction != nil {
		return json.Marshal(alias(r))
	}
	return json.Marshal(struct {
		alias
		Transaction *TaggedTransaction `json:"transaction,omitempty"`
	}{alias: alias(r)})
}

type TransactionFailureReason struct {
	TxID         uint64 `json:"tx_id"`
	Code         string `json:"code" validate:"required"`
	ErrorMessage string `json:"error_message"`
}

// TransactionStatusInfo is the response of get_transaction_status. The
// failure reason is present exactly when the status is a failure.
type TransactionStatusInfo struct {
	TxStatus      Status                    `json:"tx_status" validate:"required"`
	BlockHash     *felt.Felt                `json:"block_hash,omitempty"`
	FailureReason *TransactionFailureReason `json:"tx_failure_reason,omitempty"`
}

func (s *TransactionStatusInfo) Validate() error {
	if err := Validator().Struct(s); err != nil {
		return err
	}
	switch {
	case s.TxStatus.IsFailure() && s.FailureReason == nil:
		return errors.Errorf("status %s without failure reason", s.TxStatus)
	case !s.TxStatus.IsFailure() && s.FailureReason != nil:
		return errors.Errorf("status %s with failure reason %q", s.TxStatus, s.FailureReason.Code)
	}
	return nil
}

// TransactionReceipt is the response of get_transaction_receipt.
type TransactionReceipt struct {
	Status           Status           `json:"status" validate:"required"`
	TransactionHash  *felt.Felt       `json:"transaction_hash" validate:"required"`
	TransactionIndex uint64           `json:"transaction_index"`
	BlockHash        *felt.Felt       `json:"block_hash,omitempty"`
	BlockNumber      BlockNumber      `json:"block_number"`
	L2ToL1Messages   []*L2ToL1Message `json:"l2_to_l1_messages"`
	Events           []*Event         `json:"events"`
}

type CallContractResponse struct {
	Result []*felt.Felt `json:"result" validate:"required"`
}

// Opaque is a response body whose structure belongs to the gateway. It is
// kept as raw JSON.
type Opaque json.RawMessage

func (o Opaque) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	return o, nil
}

func (o *Opaque) UnmarshalJSON(data []byte) error {
	if o == nil {
		return errors.New("Opaque: UnmarshalJSON on nil pointer")
	}
	*o = append((*o)[0:0], data...)
	return nil
}

// StorageValue is the response of get_storage_at.
type StorageValue = Opaque

// EstimateFeeResponse is reserved: the fee estimation contract is not pinned
// down yet, so the body is kept raw.
type EstimateFeeResponse = Opaque
