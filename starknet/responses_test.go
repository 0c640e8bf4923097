package starknet_test

import (
	"encoding/json"
	"testing"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatusFailureReason(t *testing.T) {
	tests := map[string]struct {
		data string
		err  bool
	}{
		"rejected with reason": {
			data: `{"tx_status":"REJECTED","block_hash":"0x1",` +
				`"tx_failure_reason":{"tx_id":3,"code":"ENTRY_POINT_NOT_FOUND_IN_CONTRACT","error_message":"Entry point not found."}}`,
		},
		"rejected without reason": {
			data: `{"tx_status":"REJECTED","block_hash":"0x1"}`,
			err:  true,
		},
		"rejected with empty reason": {
			data: `{"tx_status":"REJECTED","tx_failure_reason":{"tx_id":3}}`,
			err:  true,
		},
		"accepted": {
			data: `{"tx_status":"ACCEPTED_ON_L2","block_hash":"0x1"}`,
		},
		"accepted with reason": {
			data: `{"tx_status":"ACCEPTED_ON_L2","block_hash":"0x1",` +
				`"tx_failure_reason":{"tx_id":3,"code":"X","error_message":"m"}}`,
			err: true,
		},
		"not received": {
			data: `{"tx_status":"NOT_RECEIVED"}`,
		},
		"unknown status": {
			data: `{"tx_status":"LOST"}`,
			err:  true,
		},
		"missing status": {
			data: `{"block_hash":"0x1"}`,
			err:  true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			info, err := starknet.GetTransactionStatusOp.DecodeResponse([]byte(test.data))
			if test.err {
				require.ErrorIs(t, err, starknet.ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, info.TxStatus.IsFailure(), info.FailureReason != nil)

			data, err := json.Marshal(info)
			require.NoError(t, err)
			assert.JSONEq(t, test.data, string(data))
		})
	}
}

func TestEmptyBlockRoundTrip(t *testing.T) {
	data := `{
		"block_number": 0,
		"state_root": "0x3f04ffa63e188d602796505a2ee4f6e1f294ee29a914b057af8e75b17259d9f",
		"block_hash": "0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943",
		"transactions": {},
		"timestamp": 1637069048,
		"transaction_receipts": {},
		"previous_block_hash": "0x0",
		"status": "ACCEPTED_ON_L1"
	}`

	block, err := starknet.GetBlockOp.DecodeResponse([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, block.Transactions)
	assert.Empty(t, block.TransactionReceipts)

	encoded, err := json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(encoded))

	again, err := starknet.GetBlockOp.DecodeResponse(encoded)
	require.NoError(t, err)
	assert.Equal(t, block, again)
}

func TestBlockWithTransactions(t *testing.T) {
	data := `{
		"block_number": 7,
		"state_root": "0x1",
		"block_hash": "0x2",
		"transactions": {
			"0xaa": {"type":"INVOKE_FUNCTION","contract_address":"0x5","entry_point_selector":"0x6","calldata":["0x7"]}
		},
		"timestamp": 1,
		"transaction_receipts": {
			"0xaa": {
				"block_hash": "0x2",
				"transaction_hash": "0xaa",
				"l2_to_l1_messages": [{"to_address":"0x0000000000000000000000000000000000000001","payload":["0x1"],"from_address":"0x5"}],
				"block_number": 7,
				"status": "ACCEPTED_ON_L2",
				"transaction_index": 0
			}
		},
		"previous_block_hash": "0x1",
		"status": "ACCEPTED_ON_L2"
	}`

	block, err := starknet.GetBlockOp.DecodeResponse([]byte(data))
	require.NoError(t, err)

	hash := *felt.NewUnsafeFromString("0xaa")
	require.Contains(t, block.Transactions, hash)
	assert.Equal(t, starknet.TxnInvoke, block.Transactions[hash].Type())
	require.Contains(t, block.TransactionReceipts, hash)
	assert.Len(t, block.TransactionReceipts[hash].L2ToL1Messages, 1)

	encoded, err := json.Marshal(block)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(encoded))

	t.Run("transaction mixing variants", func(t *testing.T) {
		mixed := `{"block_number":1,"state_root":"0x1","block_hash":"0x2","timestamp":1,"previous_block_hash":"0x1",
			"status":"PENDING","transaction_receipts":{},
			"transactions":{"0xaa":{"type":"INVOKE_FUNCTION","contract_address":"0x5","entry_point_selector":"0x6","constructor_calldata":[]}}}`
		_, err := starknet.GetBlockOp.DecodeResponse([]byte(mixed))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("receipt missing status", func(t *testing.T) {
		incomplete := `{"block_number":1,"state_root":"0x1","block_hash":"0x2","timestamp":1,"previous_block_hash":"0x1",
			"status":"PENDING","transactions":{},
			"transaction_receipts":{"0xaa":{"block_hash":"0x2","block_number":1,"transaction_index":0}}}`
		_, err := starknet.GetBlockOp.DecodeResponse([]byte(incomplete))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("null receipt", func(t *testing.T) {
		incomplete := `{"block_number":1,"state_root":"0x1","block_hash":"0x2","timestamp":1,"previous_block_hash":"0x1",
			"status":"PENDING","transactions":{},"transaction_receipts":{"0xaa":null}}`
		_, err := starknet.GetBlockOp.DecodeResponse([]byte(incomplete))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("missing receipts", func(t *testing.T) {
		_, err := starknet.GetBlockOp.DecodeResponse([]byte(
			`{"state_root":"0x1","block_hash":"0x2","previous_block_hash":"0x1","status":"PENDING","transactions":{}}`))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})
}

func TestGetTransactionResponse(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		data := `{
			"status": "ACCEPTED_ON_L2",
			"transaction": {"type":"INVOKE_FUNCTION","contract_address":"0x5","entry_point_selector":"0x6","signature":[]},
			"block_hash": "0x2",
			"block_number": 12,
			"transaction_index": 4,
			"transaction_hash": "0xaa"
		}`
		resp, err := starknet.GetTransactionOp.DecodeResponse([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, starknet.BlockNumber(12), resp.BlockNumber)

		encoded, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, data, string(encoded))
	})

	t.Run("pending block", func(t *testing.T) {
		resp, err := starknet.GetTransactionOp.DecodeResponse([]byte(`{"status":"PENDING","block_number":"pending",` +
			`"transaction_index":0,"transaction":{"type":"INVOKE_FUNCTION","contract_address":"0x5","entry_point_selector":"0x6"}}`))
		require.NoError(t, err)
		assert.True(t, resp.BlockNumber.IsPending())
	})

	t.Run("not received has no body", func(t *testing.T) {
		data := `{"status":"NOT_RECEIVED","block_number":0,"transaction_index":0}`
		resp, err := starknet.GetTransactionOp.DecodeResponse([]byte(data))
		require.NoError(t, err)
		assert.Nil(t, resp.Transaction.Transaction)

		encoded, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, data, string(encoded))
	})

	t.Run("received without body", func(t *testing.T) {
		_, err := starknet.GetTransactionOp.DecodeResponse([]byte(`{"status":"RECEIVED","block_number":0,"transaction_index":0}`))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})
}

func TestTransactionReceipt(t *testing.T) {
	data := `{
		"status": "ACCEPTED_ON_L1",
		"transaction_hash": "0xaa",
		"transaction_index": 2,
		"block_hash": "0x2",
		"block_number": 3,
		"l2_to_l1_messages": [],
		"events": [{"from_address":"0x5","keys":["0x1"],"data":["0x2","0x3"]}]
	}`
	receipt, err := starknet.GetTransactionReceiptOp.DecodeResponse([]byte(data))
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	assert.Len(t, receipt.Events[0].Data, 2)

	encoded, err := json.Marshal(receipt)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(encoded))
}

func TestBlockNumber(t *testing.T) {
	var n starknet.BlockNumber
	require.NoError(t, json.Unmarshal([]byte(`"pending"`), &n))
	assert.Equal(t, starknet.PendingBlockNumber, n)

	require.NoError(t, json.Unmarshal([]byte(`42`), &n))
	assert.Equal(t, starknet.BlockNumber(42), n)

	require.ErrorIs(t, json.Unmarshal([]byte(`"latest"`), &n), starknet.ErrMalformedResponse)
	require.ErrorIs(t, json.Unmarshal([]byte(`-4`), &n), starknet.ErrMalformedResponse)

	data, err := json.Marshal(starknet.PendingBlockNumber)
	require.NoError(t, err)
	assert.Equal(t, `"pending"`, string(data))

	_, err = json.Marshal(starknet.BlockNumber(-2))
	require.Error(t, err)
}
