package starknet

import (
	"encoding/json"
	"strconv"

	"github.com/NethermindEth/starknet-api/core/felt"
)

const pendingTag = "pending"

// BlockNumber represents the `block_number` field of receipts and
// transactions. In StarkNet the value can be an integer or the string
// "pending", which is stored as PendingBlockNumber.
type BlockNumber int64

const PendingBlockNumber BlockNumber = -1

func (x BlockNumber) IsPending() bool {
	return x == PendingBlockNumber
}

func (x BlockNumber) MarshalJSON() ([]byte, error) {
	if x.IsPending() {
		return []byte(`"` + pendingTag + `"`), nil
	}
	if x < 0 {
		return nil, malformedRequest("negative block number %d", int64(x))
	}
	return []byte(strconv.FormatInt(int64(x), 10)), nil
}

func (x *BlockNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return malformedResponse("empty block number")
	}
	if string(data) == "null" {
		return nil
	}
	// Try to unmarshal as "pending"
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return asMalformed(ErrMalformedResponse, err)
		}
		if s != pendingTag {
			return malformedResponse("unexpected string value %s as a BlockNumber", s)
		}
		*x = PendingBlockNumber
		return nil
	}

	// Try to unmarshal as number
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return asMalformed(ErrMalformedResponse, err)
	}
	if value < 0 {
		return malformedResponse("the block number must not be negative")
	}
	*x = BlockNumber(value)
	return nil
}

// Block object returned by the feeder in JSON format for "get_block" endpoint.
// Transactions and receipts are keyed by transaction hash.
type Block struct {
	BlockNumber         uint64                          `json:"block_number"`
	StateRoot           *felt.Felt                      `json:"state_root" validate:"required"`
	BlockHash           *felt.Felt                      `json:"block_hash" validate:"required"`
	Transactions        map[felt.Felt]TaggedTransaction `json:"transactions" validate:"required"`
	Timestamp           uint64                          `json:"timestamp"`
	TransactionReceipts map[felt.Felt]*Receipt          `json:"transaction_receipts" validate:"required,dive,required"`
	PreviousBlockHash   *felt.Felt                      `json:"previous_block_hash" validate:"required"`
	Status              Status                          `json:"status" validate:"required"`
}

type Receipt struct {
	BlockHash        *felt.Felt       `json:"block_hash"`
	TransactionHash  *felt.Felt       `json:"transaction_hash" validate:"required"`
	L2ToL1Messages   []*L2ToL1Message `json:"l2_to_l1_messages"`
	BlockNumber      BlockNumber      `json:"block_number"`
	Status           Status           `json:"status" validate:"required"`
	TransactionIndex uint64           `json:"transaction_index"`
}

// L2ToL1Message is an outbound message to an L1 contract.
type L2ToL1Message struct {
	ToAddress   string       `json:"to_address"`
	Payload     []*felt.Felt `json:"payload"`
	FromAddress *felt.Felt   `json:"from_address"`
}

// Event is emitted by a contract during execution.
type Event struct {
	FromAddress *felt.Felt   `json:"from_address"`
	Keys        []*felt.Felt `json:"keys"`
	Data        []*felt.Felt `json:"data"`
}
