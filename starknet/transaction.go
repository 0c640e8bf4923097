package starknet

import (
	"encoding/json"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Transaction is one of *DeployTransaction or *InvokeFunctionTransaction.
// The variant decides which fields exist, so a value can never mix fields of
// both.
type Transaction interface {
	Type() TransactionType
	Validate() error
	transaction()
}

var (
	_ Transaction = (*DeployTransaction)(nil)
	_ Transaction = (*InvokeFunctionTransaction)(nil)
)

// Fields that only one of the variants may carry. Any other field (such as
// transaction_hash or contract_address on deployments) is tolerated on input
// and ignored.
var (
	deployOnlyFields = []string{"contract_definition", "contract_address_salt", "constructor_calldata"}
	invokeOnlyFields = []string{"signature", "entry_point_type", "entry_point_selector", "calldata"}
)

type DeployTransaction struct {
	ContractDefinition  *CompressedCompiledContract `json:"contract_definition" validate:"required"`
	ContractAddressSalt *felt.Felt                  `json:"contract_address_salt" validate:"required"`
	ConstructorCalldata []*felt.Felt                `json:"constructor_calldata" validate:"required"`
	Nonce               *felt.Felt                  `json:"nonce,omitempty"`
}

// NewDeployTransaction builds a DEPLOY transaction. A nil constructor
// calldata is stored as an empty list.
func NewDeployTransaction(
	definition *CompressedCompiledContract,
	salt *felt.Felt,
	constructorCalldata []*felt.Felt,
	nonce *felt.Felt,
) (*DeployTransaction, error) {
	if constructorCalldata == nil {
		constructorCalldata = []*felt.Felt{}
	}
	txn := &DeployTransaction{
		ContractDefinition:  definition,
		ContractAddressSalt: salt,
		ConstructorCalldata: constructorCalldata,
		Nonce:               nonce,
	}
	if err := ValidateRequest(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (t *DeployTransaction) Type() TransactionType { return TxnDeploy }

func (t *DeployTransaction) transaction() {}

func (t *DeployTransaction) Validate() error {
	return Validator().Struct(t)
}

func (t *DeployTransaction) MarshalJSON() ([]byte, error) {
	type alias DeployTransaction
	return json.Marshal(struct {
		Type TransactionType `json:"type"`
		*alias
	}{TxnDeploy, (*alias)(t)})
}

type InvokeFunctionTransaction struct {
	ContractAddress    *felt.Felt      `json:"contract_address" validate:"required"`
	Signature          *[]*felt.Felt   `json:"signature,omitempty"`
	EntryPointType     *EntryPointType `json:"entry_point_type,omitempty"`
	EntryPointSelector *felt.Felt      `json:"entry_point_selector" validate:"required"`
	Calldata           *[]*felt.Felt   `json:"calldata,omitempty"`
	Nonce              *felt.Felt      `json:"nonce,omitempty"`
}

type InvokeOption func(*InvokeFunctionTransaction)

func WithSignature(signature ...*felt.Felt) InvokeOption {
	return func(t *InvokeFunctionTransaction) {
		t.Signature = feltList(signature)
	}
}

func WithCalldata(calldata ...*felt.Felt) InvokeOption {
	return func(t *InvokeFunctionTransaction) {
		t.Calldata = feltList(calldata)
	}
}

func WithEntryPointType(entryPointType EntryPointType) InvokeOption {
	return func(t *InvokeFunctionTransaction) {
		t.EntryPointType = &entryPointType
	}
}

func WithNonce(nonce *felt.Felt) InvokeOption {
	return func(t *InvokeFunctionTransaction) {
		t.Nonce = nonce
	}
}

// NewInvokeFunctionTransaction builds an INVOKE_FUNCTION transaction. Optional
// fields are left out unless the matching option is given.
func NewInvokeFunctionTransaction(
	contractAddress, entryPointSelector *felt.Felt,
	opts ...InvokeOption,
) (*InvokeFunctionTransaction, error) {
	txn := &InvokeFunctionTransaction{
		ContractAddress:    contractAddress,
		EntryPointSelector: entryPointSelector,
	}
	for _, opt := range opts {
		opt(txn)
	}
	if err := ValidateRequest(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (t *InvokeFunctionTransaction) Type() TransactionType { return TxnInvoke }

func (t *InvokeFunctionTransaction) transaction() {}

func (t *InvokeFunctionTransaction) Validate() error {
	return Validator().Struct(t)
}

func (t *InvokeFunctionTransaction) MarshalJSON() ([]byte, error) {
	type alias InvokeFunctionTransaction
	return json.Marshal(struct {
		Type TransactionType `json:"type"`
		*alias
	}{TxnInvoke, (*alias)(t)})
}

// CallContract drops the type, entry_point_type and nonce fields, giving the
// shape used by call_contract and estimate_fee.
func (t *InvokeFunctionTransaction) CallContract() (*CallContractTransaction, error) {
	call := new(CallContractTransaction)
	if err := copier.Copy(call, t); err != nil {
		return nil, err
	}
	return call, nil
}

// CallContractTransaction is a read-only invocation. It is never submitted
// with add_transaction.
type CallContractTransaction struct {
	ContractAddress    *felt.Felt    `json:"contract_address" validate:"required"`
	Signature          *[]*felt.Felt `json:"signature,omitempty"`
	EntryPointSelector *felt.Felt    `json:"entry_point_selector" validate:"required"`
	Calldata           *[]*felt.Felt `json:"calldata,omitempty"`
}

// TaggedTransaction carries a Transaction through JSON. Decoding picks the
// variant from the "type" field.
type TaggedTransaction struct {
	Transaction
}

func (t TaggedTransaction) Validate() error {
	if t.Transaction == nil {
		return errors.New("missing transaction")
	}
	return t.Transaction.Validate()
}

func (t TaggedTransaction) MarshalJSON() ([]byte, error) {
	if t.Transaction == nil {
		return nil, malformedRequest("empty transaction")
	}
	return json.Marshal(t.Transaction)
}

func (t *TaggedTransaction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return malformedResponse("transaction: %v", err)
	}

	rawType, ok := fields["type"]
	if !ok {
		return malformedResponse("transaction: missing type")
	}
	var txnType TransactionType
	if err := json.Unmarshal(rawType, &txnType); err != nil {
		return asMalformed(ErrMalformedResponse, err)
	}

	var (
		txn       Transaction
		forbidden []string
	)
	switch txnType {
	case TxnDeploy:
		txn, forbidden = new(DeployTransaction), invokeOnlyFields
	case TxnInvoke:
		txn, forbidden = new(InvokeFunctionTransaction), deployOnlyFields
	default:
		return malformedResponse("transaction: unknown type %s", txnType)
	}

	for _, name := range forbidden {
		if _, found := fields[name]; found {
			return malformedResponse("%s transaction carries field %q", txnType, name)
		}
	}

	// The variants have no custom unmarshaller, so this does not recurse.
	if err := json.Unmarshal(data, txn); err != nil {
		return asMalformed(ErrMalformedResponse, err)
	}
	if err := ValidateResponse(txn); err != nil {
		return err
	}
	t.Transaction = txn
	return nil
}

func feltList(values []*felt.Felt) *[]*felt.Felt {
	if values == nil {
		values = []*felt.Felt{}
	}
	return &values
}
