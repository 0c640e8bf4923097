package starknet

import (
	"net/url"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/pkg/errors"
)

// Absent marks an operation that takes no query parameters or no body. It is
// distinct from an empty object: it never reaches the wire.
type Absent struct{}

func (Absent) Values() (url.Values, error) {
	return nil, nil
}

func (Absent) MarshalJSON() ([]byte, error) {
	return nil, errors.New("absent body cannot be serialised")
}

// Query is the URL parameter shape of an operation. Values returns exactly
// the declared parameters.
type Query interface {
	Values() (url.Values, error)
}

var (
	_ Query = Absent{}
	_ Query = TransactionHashQuery{}
	_ Query = StorageAtQuery{}
	_ Query = CodeQuery{}
	_ Query = BlockQuery{}
	_ Query = CallContractQuery{}
)

type TransactionHashQuery struct {
	TransactionHash *felt.Felt `validate:"required"`
}

func (q TransactionHashQuery) Values() (url.Values, error) {
	if err := ValidateRequest(&q); err != nil {
		return nil, err
	}
	return url.Values{"transactionHash": {q.TransactionHash.String()}}, nil
}

type StorageAtQuery struct {
	ContractAddress *felt.Felt `validate:"required"`
	// Key is sent as a decimal number.
	Key             *felt.Felt `validate:"required"`
	BlockIdentifier BlockIdentifier
}

func (q StorageAtQuery) Values() (url.Values, error) {
	if err := ValidateRequest(&q); err != nil {
		return nil, err
	}
	values := url.Values{
		"contractAddress": {q.ContractAddress.String()},
		"key":             {q.Key.Text(10)},
	}
	setBlockIdentifier(values, q.BlockIdentifier)
	return values, nil
}

type CodeQuery struct {
	ContractAddress *felt.Felt `validate:"required"`
	BlockIdentifier BlockIdentifier
}

func (q CodeQuery) Values() (url.Values, error) {
	if err := ValidateRequest(&q); err != nil {
		return nil, err
	}
	values := url.Values{"contractAddress": {q.ContractAddress.String()}}
	setBlockIdentifier(values, q.BlockIdentifier)
	return values, nil
}

type BlockQuery struct {
	BlockIdentifier BlockIdentifier
}

func (q BlockQuery) Values() (url.Values, error) {
	values := url.Values{}
	setBlockIdentifier(values, q.BlockIdentifier)
	return values, nil
}

type CallContractQuery struct {
	BlockIdentifier BlockIdentifier
}

func (q CallContractQuery) Values() (url.Values, error) {
	values := url.Values{}
	setBlockIdentifier(values, q.BlockIdentifier)
	return values, nil
}

func setBlockIdentifier(values url.Values, id BlockIdentifier) {
	key, value := id.QueryParam()
	values.Set(key, value)
}
