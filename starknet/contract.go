package starknet

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"io"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// CompressedCompiledContract is the contract_definition of a DEPLOY
// transaction. Program holds the compiled program, gzipped and base64
// encoded.
type CompressedCompiledContract struct {
	Program           string            `json:"program" validate:"required,base64"`
	EntryPointsByType EntryPointsByType `json:"entry_points_by_type"`
	Abi               json.RawMessage   `json:"abi,omitempty"`
}

type EntryPointsByType struct {
	Constructor []EntryPoint `json:"CONSTRUCTOR" validate:"dive"`
	External    []EntryPoint `json:"EXTERNAL" validate:"dive"`
	L1Handler   []EntryPoint `json:"L1_HANDLER" validate:"dive"`
}

type EntryPoint struct {
	Offset   *felt.Felt `json:"offset" validate:"required"`
	Selector *felt.Felt `json:"selector" validate:"required"`
}

// NewCompressedCompiledContract compresses a compiled program (the "program"
// object of a compiled contract) and pairs it with its entry points and abi.
func NewCompressedCompiledContract(
	program json.RawMessage,
	entryPoints EntryPointsByType,
	abi json.RawMessage,
) (*CompressedCompiledContract, error) {
	compressed, err := CompressProgram(program)
	if err != nil {
		return nil, err
	}
	return &CompressedCompiledContract{
		Program:           compressed,
		EntryPointsByType: entryPoints,
		Abi:               abi,
	}, nil
}

// CompressProgram gzips the program and encodes it as base64.
func CompressProgram(program []byte) (string, error) {
	var compressed bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressed)
	if _, err := gzipWriter.Write(program); err != nil {
		return "", err
	}
	if err := gzipWriter.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(compressed.Bytes()), nil
}

// DecompressProgram reverses CompressProgram.
func DecompressProgram(program string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(program)
	if err != nil {
		return nil, err
	}
	gzipReader, err := gzip.NewReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, err
	}
	decompressed, err := io.ReadAll(gzipReader)
	if err != nil {
		return nil, err
	}
	if err = gzipReader.Close(); err != nil {
		return nil, err
	}
	return decompressed, nil
}

// ContractAddresses is the response of get_contract_addresses: the L1
// addresses of the StarkNet core contract and of the GPS statement verifier.
type ContractAddresses struct {
	Starknet             string `json:"Starknet" validate:"required,eth_addr"`
	GpsStatementVerifier string `json:"GpsStatementVerifier" validate:"required,eth_addr"`
}

func (c *ContractAddresses) StarknetCore() (common.Address, error) {
	return parseL1Address(c.Starknet)
}

func (c *ContractAddresses) GpsVerifier() (common.Address, error) {
	return parseL1Address(c.GpsStatementVerifier)
}

func parseL1Address(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, errors.Errorf("invalid L1 address %q", address)
	}
	return common.HexToAddress(address), nil
}

// CodeInfo is the response of get_code. The abi is passed through untouched.
type CodeInfo struct {
	Bytecode []*felt.Felt    `json:"bytecode" validate:"required"`
	Abi      json.RawMessage `json:"abi"`
}
