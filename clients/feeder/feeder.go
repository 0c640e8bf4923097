package feeder

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/NethermindEth/starknet-api/starknet"
	"github.com/NethermindEth/starknet-api/utils"
)

type Backoff func(wait time.Duration) time.Duration

type Client struct {
	url        string
	client     *http.Client
	backoff    Backoff
	maxRetries int
	maxWait    time.Duration
	minWait    time.Duration
	log        utils.SimpleLogger
	userAgent  string
	apiKey     string
	listener   EventListener
	timeouts   atomic.Pointer[Timeouts]
}

func (c *Client) WithListener(l EventListener) *Client {
	c.listener = l
	return c
}

func (c *Client) WithBackoff(b Backoff) *Client {
	c.backoff = b
	return c
}

func (c *Client) WithMaxRetries(num int) *Client {
	c.maxRetries = num
	return c
}

func (c *Client) WithMaxWait(d time.Duration) *Client {
	c.maxWait = d
	return c
}

func (c *Client) WithMinWait(d time.Duration) *Client {
	c.minWait = d
	return c
}

func (c *Client) WithLogger(log utils.SimpleLogger) *Client {
	c.log = log
	return c
}

func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

func (c *Client) WithTimeouts(timeouts []time.Duration, fixed bool) *Client {
	c.timeouts.Store(newTimeouts(timeouts, fixed))
	return c
}

func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = key
	return c
}

func ExponentialBackoff(wait time.Duration) time.Duration {
	return wait * 2
}

func NopBackoff(d time.Duration) time.Duration {
	return 0
}

// NewClient returns a client for the feeder gateway served at clientURL,
// e.g. "https://alpha-mainnet.starknet.io/feeder_gateway/".
func NewClient(clientURL string) *Client {
	if !strings.HasSuffix(clientURL, "/") {
		clientURL += "/"
	}
	client := &Client{
		url:        clientURL,
		client:     &http.Client{},
		backoff:    ExponentialBackoff,
		maxRetries: 10, // ~20s with default backoff and maxWait (block time on mainnet is 2s on average)
		maxWait:    2 * time.Second,
		minWait:    500 * time.Millisecond,
		log:        utils.NewNopZapLogger(),
		listener:   &SelectiveListener{},
	}
	client.timeouts.Store(defaultTimeouts())
	return client
}

//go:embed testdata
var testdata embed.FS

const (
	testUserAgent = "starknet-api/test"
	testAPIKey    = "test-api-key"
)

// NewTestClient returns a client backed by a test server that answers from
// the recorded responses of the given network.
func NewTestClient(t testing.TB, network *utils.Network) *Client {
	srv := newTestServer(t, network)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL).
		WithBackoff(NopBackoff).
		WithMaxRetries(0).
		WithUserAgent(testUserAgent).
		WithAPIKey(testAPIKey)
}

func newTestServer(t testing.TB, network *utils.Network) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != testUserAgent || r.Header.Get("X-Throttling-Bypass") != testAPIKey {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		endpoint := strings.TrimPrefix(r.URL.Path, "/")
		file := path.Join("testdata", network.String(), endpoint, fixtureName(r.URL.Query())+".json")
		data, err := fs.ReadFile(testdata, file)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				t.Error(err)
			}
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, err = w.Write(data); err != nil {
			t.Error(err)
		}
	}))
}

// fixtureName picks the recorded response by the parameter that identifies
// the requested object.
func fixtureName(query url.Values) string {
	switch {
	case query.Has("transactionHash"):
		return query.Get("transactionHash")
	case query.Has("key"):
		return query.Get("contractAddress") + "_" + query.Get("key")
	case query.Has("contractAddress"):
		return query.Get("contractAddress")
	case query.Has("blockHash"):
		return query.Get("blockHash")
	case query.Has("blockNumber"):
		return query.Get("blockNumber")
	default:
		return "index"
	}
}

// buildQueryString appends the endpoint and the query parameters to the client URL
func (c *Client) buildQueryString(endpoint string, params url.Values) string {
	base, err := url.Parse(c.url)
	if err != nil {
		panic("Malformed feeder base URL")
	}

	base.Path += endpoint
	base.RawQuery = params.Encode()
	return base.String()
}

// request performs an http request with the given method, URL and body and
// returns the response body. Failed requests are retried with backoff.
func (c *Client) request(ctx context.Context, method, queryURL string, body []byte) (io.ReadCloser, error) {
	var res *http.Response
	var err error
	wait := time.Duration(0)
	for range c.maxRetries + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
			var req *http.Request
			req, err = http.NewRequestWithContext(ctx, method, queryURL, requestBody(body))
			if err != nil {
				return nil, err
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if c.userAgent != "" {
				req.Header.Set("User-Agent", c.userAgent)
			}
			if c.apiKey != "" {
				req.Header.Set("X-Throttling-Bypass", c.apiKey)
			}

			timeouts := c.timeouts.Load()
			reqCtx, cancel := context.WithTimeout(ctx, timeouts.Current())
			reqTimer := time.Now()
			res, err = c.client.Do(req.WithContext(reqCtx))
			tooManyRequests, badRequest := false, false
			if err == nil {
				c.listener.OnResponse(req.URL.Path, res.StatusCode, time.Since(reqTimer))
				tooManyRequests = res.StatusCode == http.StatusTooManyRequests
				badRequest = res.StatusCode == http.StatusBadRequest
				if res.StatusCode == http.StatusOK {
					timeouts.Decrease()
					return &cancelOnClose{ReadCloser: res.Body, cancel: cancel}, nil
				}
				err = errors.New(res.Status)
				res.Body.Close()
			}
			cancel()

			if !tooManyRequests && !badRequest {
				timeouts.Increase()
			}

			if wait < c.minWait {
				wait = c.minWait
			} else {
				wait = min(c.backoff(wait), c.maxWait)
			}

			currentTimeout := timeouts.Current()
			if currentTimeout >= mediumGrowThreshold {
				c.log.Warnw("Failed query to feeder, retrying...",
					"req", req.URL.String(), "retryAfter", wait.String(), "err", err,
					"newHTTPTimeout", currentTimeout.String())
			} else {
				c.log.Debugw("Failed query to feeder, retrying...",
					"req", req.URL.String(), "retryAfter", wait.String(), "err", err,
					"newHTTPTimeout", currentTimeout.String())
			}
		}
	}
	return nil, err
}

func requestBody(body []byte) io.Reader {
	if body == nil {
		return http.NoBody
	}
	return bytes.NewReader(body)
}

// cancelOnClose releases the per-request timeout once the body is consumed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}

// send runs an operation of the catalogue: the query and body are validated
// and encoded, and the response is decoded into the declared shape.
func send[Q starknet.Query, Req, Resp any](
	ctx context.Context,
	c *Client,
	op starknet.Operation[Q, Req, Resp],
	query Q,
	body Req,
) (*Resp, error) {
	params, err := op.EncodeQuery(query)
	if err != nil {
		return nil, err
	}
	payload, err := op.EncodeBody(body)
	if err != nil {
		return nil, err
	}

	resBody, err := c.request(ctx, op.Method, c.buildQueryString(op.Name, params), payload)
	if err != nil {
		return nil, err
	}
	defer resBody.Close()

	data, err := io.ReadAll(resBody)
	if err != nil {
		return nil, err
	}
	return op.DecodeResponse(data)
}

func (c *Client) ContractAddresses(ctx context.Context) (*starknet.ContractAddresses, error) {
	return send(ctx, c, starknet.GetContractAddressesOp, starknet.Absent{}, starknet.Absent{})
}

func (c *Client) Transaction(ctx context.Context, transactionHash *felt.Felt) (*starknet.GetTransactionResponse, error) {
	query := starknet.TransactionHashQuery{TransactionHash: transactionHash}
	return send(ctx, c, starknet.GetTransactionOp, query, starknet.Absent{})
}

func (c *Client) TransactionStatus(ctx context.Context, transactionHash *felt.Felt) (*starknet.TransactionStatusInfo, error) {
	query := starknet.TransactionHashQuery{TransactionHash: transactionHash}
	return send(ctx, c, starknet.GetTransactionStatusOp, query, starknet.Absent{})
}

func (c *Client) TransactionReceipt(ctx context.Context, transactionHash *felt.Felt) (*starknet.TransactionReceipt, error) {
	query := starknet.TransactionHashQuery{TransactionHash: transactionHash}
	return send(ctx, c, starknet.GetTransactionReceiptOp, query, starknet.Absent{})
}

func (c *Client) StorageAt(
	ctx context.Context,
	contractAddress, key *felt.Felt,
	blockID starknet.BlockIdentifier,
) (starknet.StorageValue, error) {
	query := starknet.StorageAtQuery{ContractAddress: contractAddress, Key: key, BlockIdentifier: blockID}
	value, err := send(ctx, c, starknet.GetStorageAtOp, query, starknet.Absent{})
	if err != nil {
		return nil, err
	}
	return *value, nil
}

func (c *Client) Code(
	ctx context.Context,
	contractAddress *felt.Felt,
	blockID starknet.BlockIdentifier,
) (*starknet.CodeInfo, error) {
	query := starknet.CodeQuery{ContractAddress: contractAddress, BlockIdentifier: blockID}
	return send(ctx, c, starknet.GetCodeOp, query, starknet.Absent{})
}

func (c *Client) Block(ctx context.Context, blockID starknet.BlockIdentifier) (*starknet.Block, error) {
	return send(ctx, c, starknet.GetBlockOp, starknet.BlockQuery{BlockIdentifier: blockID}, starknet.Absent{})
}

func (c *Client) CallContract(
	ctx context.Context,
	call *starknet.CallContractTransaction,
	blockID starknet.BlockIdentifier,
) (*starknet.CallContractResponse, error) {
	return send(ctx, c, starknet.CallContractOp, starknet.CallContractQuery{BlockIdentifier: blockID}, call)
}

func (c *Client) EstimateFee(ctx context.Context, call *starknet.CallContractTransaction) (starknet.EstimateFeeResponse, error) {
	fee, err := send(ctx, c, starknet.EstimateFeeOp, starknet.Absent{}, call)
	if err != nil {
		return nil, err
	}
	return *fee, nil
}
