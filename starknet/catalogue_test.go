package starknet_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	absent := reflect.TypeFor[starknet.Absent]()
	callContract := reflect.TypeFor[*starknet.CallContractTransaction]()
	txnHashQuery := reflect.TypeFor[starknet.TransactionHashQuery]()

	expected := []starknet.Descriptor{
		{"get_contract_addresses", starknet.FeederGateway, http.MethodGet, absent, absent, reflect.TypeFor[starknet.ContractAddresses]()},
		{"add_transaction", starknet.Gateway, http.MethodPost, absent, reflect.TypeFor[starknet.Transaction](), reflect.TypeFor[starknet.AddTransactionResponse]()},
		{"get_transaction", starknet.FeederGateway, http.MethodGet, txnHashQuery, absent, reflect.TypeFor[starknet.GetTransactionResponse]()},
		{"get_transaction_status", starknet.FeederGateway, http.MethodGet, txnHashQuery, absent, reflect.TypeFor[starknet.TransactionStatusInfo]()},
		{"get_transaction_receipt", starknet.FeederGateway, http.MethodGet, txnHashQuery, absent, reflect.TypeFor[starknet.TransactionReceipt]()},
		{"get_storage_at", starknet.FeederGateway, http.MethodGet, reflect.TypeFor[starknet.StorageAtQuery](), absent, reflect.TypeFor[starknet.StorageValue]()},
		{"get_code", starknet.FeederGateway, http.MethodGet, reflect.TypeFor[starknet.CodeQuery](), absent, reflect.TypeFor[starknet.CodeInfo]()},
		{"get_block", starknet.FeederGateway, http.MethodGet, reflect.TypeFor[starknet.BlockQuery](), absent, reflect.TypeFor[starknet.Block]()},
		{"call_contract", starknet.FeederGateway, http.MethodPost, reflect.TypeFor[starknet.CallContractQuery](), callContract, reflect.TypeFor[starknet.CallContractResponse]()},
		{"estimate_fee", starknet.FeederGateway, http.MethodPost, absent, callContract, reflect.TypeFor[starknet.EstimateFeeResponse]()},
	}
	assert.Equal(t, expected, starknet.Catalogue())

	d, ok := starknet.Lookup("get_block")
	require.True(t, ok)
	assert.Equal(t, "/feeder_gateway/get_block", d.Path())
	assert.Equal(t, "/gateway/add_transaction", starknet.AddTransactionOp.Path())

	_, ok = starknet.Lookup("get_state_update")
	assert.False(t, ok)
}

func TestGetStorageAtRequest(t *testing.T) {
	op := starknet.GetStorageAtOp

	query, err := op.EncodeQuery(starknet.StorageAtQuery{
		ContractAddress: felt.NewUnsafeFromString("0xabc"),
		Key:             felt.NewUnsafeFromString("5"),
		BlockIdentifier: starknet.LatestBlock,
	})
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"contractAddress": {"0xabc"},
		"key":             {"5"},
		"blockNumber":     {"latest"},
	}, query)

	body, err := op.EncodeBody(starknet.Absent{})
	require.NoError(t, err)
	assert.Nil(t, body)
	assert.False(t, op.HasBody())
}

func TestEncodeQuery(t *testing.T) {
	hash := felt.NewUnsafeFromString("0xbeef")

	t.Run("transaction hash", func(t *testing.T) {
		query, err := starknet.GetTransactionOp.EncodeQuery(starknet.TransactionHashQuery{TransactionHash: hash})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"transactionHash": {"0xbeef"}}, query)
	})

	t.Run("missing transaction hash", func(t *testing.T) {
		_, err := starknet.GetTransactionStatusOp.EncodeQuery(starknet.TransactionHashQuery{})
		require.ErrorIs(t, err, starknet.ErrMalformedRequest)
	})

	t.Run("code by hash", func(t *testing.T) {
		query, err := starknet.GetCodeOp.EncodeQuery(starknet.CodeQuery{
			ContractAddress: felt.NewUnsafeFromString("0x1"),
			BlockIdentifier: starknet.BlockByHash(hash),
		})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"contractAddress": {"0x1"}, "blockHash": {"0xbeef"}}, query)
	})

	t.Run("missing contract address", func(t *testing.T) {
		_, err := starknet.GetCodeOp.EncodeQuery(starknet.CodeQuery{})
		require.ErrorIs(t, err, starknet.ErrMalformedRequest)
	})

	t.Run("block by number", func(t *testing.T) {
		query, err := starknet.GetBlockOp.EncodeQuery(starknet.BlockQuery{BlockIdentifier: starknet.BlockByNumber(42)})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"blockNumber": {"42"}}, query)
	})

	t.Run("call contract on pending", func(t *testing.T) {
		query, err := starknet.CallContractOp.EncodeQuery(starknet.CallContractQuery{BlockIdentifier: starknet.PendingBlock})
		require.NoError(t, err)
		assert.Equal(t, url.Values{"blockNumber": {"pending"}}, query)
	})

	t.Run("absent", func(t *testing.T) {
		query, err := starknet.GetContractAddressesOp.EncodeQuery(starknet.Absent{})
		require.NoError(t, err)
		assert.Nil(t, query)
	})
}

func TestEncodeBody(t *testing.T) {
	invoke, err := starknet.NewInvokeFunctionTransaction(
		felt.NewUnsafeFromString("0x1"),
		felt.NewUnsafeFromString("0x2"),
		starknet.WithCalldata(),
	)
	require.NoError(t, err)

	t.Run("add transaction writes the discriminant", func(t *testing.T) {
		body, err := starknet.AddTransactionOp.EncodeBody(invoke)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"INVOKE_FUNCTION","contract_address":"0x1","entry_point_selector":"0x2","calldata":[]}`, string(body))
		assert.True(t, starknet.AddTransactionOp.HasBody())
	})

	t.Run("nil transaction", func(t *testing.T) {
		_, err := starknet.AddTransactionOp.EncodeBody(nil)
		require.ErrorIs(t, err, starknet.ErrMalformedRequest)
	})

	t.Run("invalid transaction", func(t *testing.T) {
		_, err := starknet.AddTransactionOp.EncodeBody(&starknet.InvokeFunctionTransaction{})
		require.ErrorIs(t, err, starknet.ErrMalformedRequest)
	})

	t.Run("estimate fee", func(t *testing.T) {
		call, err := invoke.CallContract()
		require.NoError(t, err)
		body, err := starknet.EstimateFeeOp.EncodeBody(call)
		require.NoError(t, err)
		assert.JSONEq(t, `{"contract_address":"0x1","entry_point_selector":"0x2","calldata":[]}`, string(body))
	})

	t.Run("call contract without selector", func(t *testing.T) {
		_, err := starknet.CallContractOp.EncodeBody(&starknet.CallContractTransaction{
			ContractAddress: felt.NewUnsafeFromString("0x1"),
		})
		require.ErrorIs(t, err, starknet.ErrMalformedRequest)
	})
}

func TestAbsent(t *testing.T) {
	_, err := json.Marshal(starknet.Absent{})
	require.Error(t, err)

	values, err := starknet.Absent{}.Values()
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestDecodeResponse(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := starknet.GetBlockOp.DecodeResponse([]byte("<html>"))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := starknet.CallContractOp.DecodeResponse([]byte(`{}`))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("call contract", func(t *testing.T) {
		resp, err := starknet.CallContractOp.DecodeResponse([]byte(`{"result":["0x1","0x2"]}`))
		require.NoError(t, err)
		assert.Equal(t, []*felt.Felt{felt.NewUnsafeFromString("0x1"), felt.NewUnsafeFromString("0x2")}, resp.Result)
	})

	t.Run("storage value is kept raw", func(t *testing.T) {
		resp, err := starknet.GetStorageAtOp.DecodeResponse([]byte(`"0x5"`))
		require.NoError(t, err)
		assert.Equal(t, starknet.StorageValue(`"0x5"`), *resp)
	})

	t.Run("estimate fee is kept raw", func(t *testing.T) {
		resp, err := starknet.EstimateFeeOp.DecodeResponse([]byte(`{"amount":1,"unit":"wei"}`))
		require.NoError(t, err)
		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":1,"unit":"wei"}`, string(data))
	})

	t.Run("add transaction", func(t *testing.T) {
		resp, err := starknet.AddTransactionOp.DecodeResponse([]byte(
			`{"code":"TRANSACTION_RECEIVED","transaction_hash":"0x1","address":"0x2"}`))
		require.NoError(t, err)
		assert.Equal(t, starknet.TransactionReceived, resp.Code)
		assert.Equal(t, felt.NewUnsafeFromString("0x2"), resp.Address)
	})

	t.Run("add transaction keeps unknown codes", func(t *testing.T) {
		resp, err := starknet.AddTransactionOp.DecodeResponse([]byte(`{"code":"TRANSACTION_QUEUED","transaction_hash":"0x1"}`))
		require.NoError(t, err)
		assert.Equal(t, starknet.AddTransactionCode("TRANSACTION_QUEUED"), resp.Code)
		assert.Nil(t, resp.Address)
	})

	t.Run("contract addresses", func(t *testing.T) {
		resp, err := starknet.GetContractAddressesOp.DecodeResponse([]byte(
			`{"Starknet":"0xde29d060d45901fb19ed6c6e959eb22d8626708e","GpsStatementVerifier":"0xab43ba48c9edf4c2c4bb01237348d1d7b28ef168"}`))
		require.NoError(t, err)

		core, err := resp.StarknetCore()
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xde29d060d45901fb19ed6c6e959eb22d8626708e"), core)

		_, err = starknet.GetContractAddressesOp.DecodeResponse([]byte(`{"Starknet":"0x1","GpsStatementVerifier":"0x2"}`))
		require.ErrorIs(t, err, starknet.ErrMalformedResponse)
	})

	t.Run("code", func(t *testing.T) {
		resp, err := starknet.GetCodeOp.DecodeResponse([]byte(`{"bytecode":["0x1","0x2"],"abi":[{"type":"function"}]}`))
		require.NoError(t, err)
		assert.Len(t, resp.Bytecode, 2)
		assert.JSONEq(t, `[{"type":"function"}]`, string(resp.Abi))
	})
}
