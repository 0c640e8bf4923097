package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/NethermindEth/starknet-api/utils"
)

var (
	MalformedRequest               ErrorCode = "StarkErrorCode.MALFORMED_REQUEST"
	OutOfRangeContractAddress      ErrorCode = "StarknetErrorCode.OUT_OF_RANGE_CONTRACT_ADDRESS"
	OutOfRangeContractStorageKey   ErrorCode = "StarknetErrorCode.OUT_OF_RANGE_CONTRACT_STORAGE_KEY"
	OutOfRangeEntryPointSelector   ErrorCode = "StarknetErrorCode.OUT_OF_RANGE_ENTRY_POINT_SELECTOR"
	EntryPointNotFoundInContract   ErrorCode = "StarknetErrorCode.ENTRY_POINT_NOT_FOUND_IN_CONTRACT"
	UninitializedContract          ErrorCode = "StarknetErrorCode.UNINITIALIZED_CONTRACT"
	ContractAddressUnavailable     ErrorCode = "StarknetErrorCode.CONTRACT_ADDRESS_UNAVAILABLE"
	InvalidProgram                 ErrorCode = "StarknetErrorCode.INVALID_PROGRAM"
	TransactionFailed              ErrorCode = "StarknetErrorCode.TRANSACTION_FAILED"
	InvalidTransactionNonce        ErrorCode = "StarknetErrorCode.INVALID_TRANSACTION_NONCE"
	ContractBytecodeSizeTooLarge   ErrorCode = "StarknetErrorCode.CONTRACT_BYTECODE_SIZE_TOO_LARGE"
	DuplicatedTransaction          ErrorCode = "StarknetErrorCode.DUPLICATED_TRANSACTION"
	ContractDefinitionSizeTooLarge ErrorCode = "StarknetErrorCode.CONTRACT_DEFINITION_OBJECT_SIZE_TOO_LARGE"
	TransactionLimitExceeded       ErrorCode = "StarknetErrorCode.TRANSACTION_LIMIT_EXCEEDED"
	UnsupportedSelectorForFee      ErrorCode = "StarknetErrorCode.UNSUPPORTED_SELECTOR_FOR_FEE"
)

// Writer submits transactions to the sequencer.
//
//go:generate mockgen -destination=../../mocks/mock_gateway.go -package=mocks github.com/NethermindEth/starknet-api/clients/gateway Writer
type Writer interface {
	AddTransaction(ctx context.Context, txn starknet.Transaction) (*starknet.AddTransactionResponse, error)
}

var _ Writer = (*Client)(nil)

type Client struct {
	url       string
	client    *http.Client
	timeout   time.Duration
	log       utils.SimpleLogger
	userAgent string
	apiKey    string
}

func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = key
	return c
}

func (c *Client) WithTimeout(t time.Duration) *Client {
	c.timeout = t
	return c
}

// NewTestClient returns a client backed by a test server that accepts
// well-formed transactions.
func NewTestClient(t testing.TB) *Client {
	srv := newTestServer(t)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, utils.NewNopZapLogger())
}

var (
	// TestTransactionHash is the hash the test server assigns to every accepted
	// transaction.
	TestTransactionHash = new(felt.Felt).SetBytes([]byte("random"))
	// TestContractAddress is the address the test server reports for every
	// DEPLOY transaction.
	TestContractAddress = new(felt.Felt).SetBytes([]byte("deployed"))
)

func newTestServer(t testing.TB) *httptest.Server {
	// The server mimics one good and a few bad requests.
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		write := func(status int, body string) {
			w.WriteHeader(status)
			if _, err := w.Write([]byte(body)); err != nil {
				t.Error(err)
			}
		}

		if r.URL.Path != "/add_transaction" || r.Method != http.MethodPost {
			write(http.StatusNotFound, "")
			return
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			write(http.StatusBadRequest, err.Error())
			return
		}
		if string(b) == "null" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var txn starknet.TaggedTransaction
		if err = json.Unmarshal(b, &txn); err != nil || txn.Transaction == nil {
			write(http.StatusBadRequest, fmt.Sprintf(`{"code": %q, "message": "invalid transaction"}`, MalformedRequest))
			return
		}

		resp := starknet.AddTransactionResponse{
			Code:            starknet.TransactionReceived,
			TransactionHash: TestTransactionHash,
		}
		switch txn := txn.Transaction.(type) {
		case *starknet.InvokeFunctionTransaction:
			if txn.ContractAddress.IsZero() {
				write(http.StatusInternalServerError, fmt.Sprintf(
					`{"code": %q, "message": "Requested contract address 0x0 is not deployed."}`, UninitializedContract))
				return
			}
		case *starknet.DeployTransaction:
			resp.Address = TestContractAddress
		}

		body, err := json.Marshal(resp)
		if err != nil {
			t.Error(err)
		}
		write(http.StatusOK, string(body))
	}))
}

func NewClient(gatewayURL string, log utils.SimpleLogger) *Client {
	gatewayURL = strings.TrimSuffix(gatewayURL, "/")
	return &Client{
		url:     gatewayURL,
		timeout: 10 * time.Second,
		client:  http.DefaultClient,
		log:     log,
	}
}

// AddTransaction submits txn. Transactions that fail validation are never
// sent. A rejection by the gateway is returned as *Error.
func (c *Client) AddTransaction(ctx context.Context, txn starknet.Transaction) (*starknet.AddTransactionResponse, error) {
	op := starknet.AddTransactionOp
	body, err := op.EncodeBody(txn)
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, c.url+"/"+op.Name, body)
	if err != nil {
		c.log.Debugw("Gateway rejected transaction", "type", txn.Type(), "err", err)
		return nil, err
	}
	return op.DecodeResponse(resp)
}

// post performs additional utility function over doPost method
func (c *Client) post(ctx context.Context, url string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doPost(ctx, url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var gatewayError Error
		body, readErr := io.ReadAll(resp.Body)
		if readErr == nil && len(body) > 0 {
			if err := json.Unmarshal(body, &gatewayError); err == nil {
				if len(gatewayError.Code) != 0 {
					return nil, &gatewayError
				}
			}
			return nil, errors.New(string(body))
		}
		return nil, errors.New(resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// doPost performs a "POST" http request with the given URL and JSON payload
// it returns response without additional error handling
func (c *Client) doPost(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Throttling-Bypass", c.apiKey)
	}
	return c.client.Do(req)
}

type ErrorCode string

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e Error) Error() string {
	return e.Message
}
