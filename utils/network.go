package utils

import (
	"encoding"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/pflag"
)

var ErrUnknownNetwork = errors.New("unknown network (known: mainnet, goerli, goerli2, integration, sepolia)")

type Network int

// The following are necessary for Cobra and Viper, respectively, to unmarshal network
// CLI/config parameters properly.
var (
	_ pflag.Value              = (*Network)(nil)
	_ encoding.TextUnmarshaler = (*Network)(nil)
)

const (
	Mainnet Network = iota + 1
	Goerli
	Goerli2
	Integration
	Sepolia
)

func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Goerli:
		return "goerli"
	case Goerli2:
		return "goerli2"
	case Integration:
		return "integration"
	case Sepolia:
		return "sepolia"
	default:
		// Should not happen.
		panic(ErrUnknownNetwork)
	}
}

func (n Network) MarshalYAML() (any, error) {
	return n.String(), nil
}

func (n *Network) MarshalJSON() ([]byte, error) {
	return json.RawMessage(`"` + n.String() + `"`), nil
}

func (n *Network) Set(s string) error {
	switch s {
	case "MAINNET", "mainnet":
		*n = Mainnet
	case "GOERLI", "goerli":
		*n = Goerli
	case "GOERLI2", "goerli2":
		*n = Goerli2
	case "INTEGRATION", "integration":
		*n = Integration
	case "SEPOLIA", "sepolia":
		*n = Sepolia
	default:
		return ErrUnknownNetwork
	}
	return nil
}

func (n *Network) Type() string {
	return "Network"
}

func (n *Network) UnmarshalText(text []byte) error {
	return n.Set(string(text))
}

// baseURL returns the base URL without endpoint
func (n Network) baseURL() string {
	switch n {
	case Goerli:
		return "https://alpha4.starknet.io/"
	case Mainnet:
		return "https://alpha-mainnet.starknet.io/"
	case Goerli2:
		return "https://alpha4-2.starknet.io/"
	case Integration:
		return "https://external.integration.starknet.io/"
	case Sepolia:
		return "https://alpha-sepolia.starknet.io/"
	default:
		// Should not happen.
		panic(ErrUnknownNetwork)
	}
}

// FeederURL returns URL for read commands
func (n Network) FeederURL() string {
	return n.baseURL() + "feeder_gateway/"
}

// GatewayURL returns URL for write commands
func (n Network) GatewayURL() string {
	return n.baseURL() + "gateway/"
}

// CoreContractAddress is the L1 address of the StarkNet core contract, as
// get_contract_addresses reports it under "Starknet".
func (n Network) CoreContractAddress() (common.Address, error) {
	switch n {
	case Mainnet:
		return common.HexToAddress("0xc662c410C0ECf747543f5bA90660f6ABeBD9C8c4"), nil
	case Goerli:
		return common.HexToAddress("0xde29d060D45901Fb19ED6C6e959EB22d8626708e"), nil
	case Goerli2:
		return common.HexToAddress("0xa4eD3aD27c294565cB0DCc993BDdCC75432D498c"), nil
	case Sepolia:
		return common.HexToAddress("0xE2Bb56ee936fd6433DC0F6e7e3b8365C906AA057"), nil
	case Integration:
		return common.Address{}, errors.New("l1 contract is not available on the integration network")
	default:
		return common.Address{}, ErrUnknownNetwork
	}
}
