package main

import (
	"time"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/spf13/pflag"
)

const (
	hashF               = "hash"
	contractAddressF    = "contract_address"
	keyF                = "key"
	blockF              = "block"
	selectorF           = "entry_point_selector"
	calldataF           = "calldata"
	signatureF          = "signature"
	fileF               = "file"
	fromF               = "from"
	toF                 = "to"
	concurrencyF        = "concurrency"
	intervalF           = "interval"
	blockUsage          = "Block number, 0x-prefixed block hash, latest or pending."
	feltUsage           = "Hex (0x-prefixed) or decimal field element."
	feltListUsage       = "Comma separated field elements."
	defaultConcurrency  = 4
	defaultWaitInterval = 5 * time.Second
)

// feltValue lets a felt be passed as a flag.
type feltValue struct {
	value *felt.Felt
}

var _ pflag.Value = (*feltValue)(nil)

func (v *feltValue) String() string {
	if v.value == nil {
		return ""
	}
	return v.value.String()
}

func (v *feltValue) Set(s string) error {
	f, err := new(felt.Felt).SetString(s)
	if err != nil {
		return err
	}
	v.value = f
	return nil
}

func (v *feltValue) Type() string {
	return "felt"
}

func parseFelts(values []string) ([]*felt.Felt, error) {
	felts := make([]*felt.Felt, 0, len(values))
	for _, s := range values {
		f, err := new(felt.Felt).SetString(s)
		if err != nil {
			return nil, err
		}
		felts = append(felts, f)
	}
	return felts, nil
}
