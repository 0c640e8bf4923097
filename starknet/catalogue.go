package starknet

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
)

// Service is the top level path segment an operation is served under.
type Service string

const (
	FeederGateway Service = "feeder_gateway"
	Gateway       Service = "gateway"
)

// Operation pins down the query shape Q, the request body shape Req and the
// response body shape Resp of one remote operation. Absent stands in for a
// missing query or body.
type Operation[Q Query, Req, Resp any] struct {
	Name    string
	Service Service
	Method  string
}

var (
	GetContractAddressesOp  = Operation[Absent, Absent, ContractAddresses]{"get_contract_addresses", FeederGateway, http.MethodGet}
	AddTransactionOp        = Operation[Absent, Transaction, AddTransactionResponse]{"add_transaction", Gateway, http.MethodPost}
	GetTransactionOp        = Operation[TransactionHashQuery, Absent, GetTransactionResponse]{"get_transaction", FeederGateway, http.MethodGet}
	GetTransactionStatusOp  = Operation[TransactionHashQuery, Absent, TransactionStatusInfo]{"get_transaction_status", FeederGateway, http.MethodGet}
	GetTransactionReceiptOp = Operation[TransactionHashQuery, Absent, TransactionReceipt]{"get_transaction_receipt", FeederGateway, http.MethodGet}
	GetStorageAtOp          = Operation[StorageAtQuery, Absent, StorageValue]{"get_storage_at", FeederGateway, http.MethodGet}
	GetCodeOp               = Operation[CodeQuery, Absent, CodeInfo]{"get_code", FeederGateway, http.MethodGet}
	GetBlockOp              = Operation[BlockQuery, Absent, Block]{"get_block", FeederGateway, http.MethodGet}
	CallContractOp          = Operation[CallContractQuery, *CallContractTransaction, CallContractResponse]{"call_contract", FeederGateway, http.MethodPost}
	EstimateFeeOp           = Operation[Absent, *CallContractTransaction, EstimateFeeResponse]{"estimate_fee", FeederGateway, http.MethodPost}
)

// Path returns the path of the operation relative to the gateway base URL.
func (o Operation[Q, Req, Resp]) Path() string {
	return "/" + string(o.Service) + "/" + o.Name
}

// EncodeQuery returns exactly the query parameters declared by Q.
func (o Operation[Q, Req, Resp]) EncodeQuery(query Q) (url.Values, error) {
	values, err := query.Values()
	if err != nil {
		return nil, asMalformed(ErrMalformedRequest, err)
	}
	return values, nil
}

// EncodeBody validates and serialises the request body. A nil slice is
// returned for operations without a body.
func (o Operation[Q, Req, Resp]) EncodeBody(body Req) ([]byte, error) {
	if _, ok := any(body).(Absent); ok {
		return nil, nil
	}
	if isNil(body) {
		return nil, malformedRequest("%s: missing request body", o.Name)
	}
	if err := ValidateRequest(body); err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, asMalformed(ErrMalformedRequest, err)
	}
	return data, nil
}

// DecodeResponse parses and validates a response body.
func (o Operation[Q, Req, Resp]) DecodeResponse(data []byte) (*Resp, error) {
	resp := new(Resp)
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, asMalformed(ErrMalformedResponse, err)
	}
	if err := ValidateResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// HasBody reports whether the operation sends a request body.
func (o Operation[Q, Req, Resp]) HasBody() bool {
	return reflect.TypeFor[Req]() != reflect.TypeFor[Absent]()
}

func (o Operation[Q, Req, Resp]) Descriptor() Descriptor {
	return Descriptor{
		Name:     o.Name,
		Service:  o.Service,
		Method:   o.Method,
		Query:    reflect.TypeFor[Q](),
		Request:  reflect.TypeFor[Req](),
		Response: reflect.TypeFor[Resp](),
	}
}

// Descriptor is the type-erased form of an Operation.
type Descriptor struct {
	Name     string
	Service  Service
	Method   string
	Query    reflect.Type
	Request  reflect.Type
	Response reflect.Type
}

func (d Descriptor) Path() string {
	return "/" + string(d.Service) + "/" + d.Name
}

// Catalogue lists every supported operation.
func Catalogue() []Descriptor {
	return []Descriptor{
		GetContractAddressesOp.Descriptor(),
		AddTransactionOp.Descriptor(),
		GetTransactionOp.Descriptor(),
		GetTransactionStatusOp.Descriptor(),
		GetTransactionReceiptOp.Descriptor(),
		GetStorageAtOp.Descriptor(),
		GetCodeOp.Descriptor(),
		GetBlockOp.Descriptor(),
		CallContractOp.Descriptor(),
		EstimateFeeOp.Descriptor(),
	}
}

// Lookup finds an operation by name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range Catalogue() {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
