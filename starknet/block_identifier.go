package starknet

import (
	"strconv"
	"strings"

	"github.com/NethermindEth/starknet-api/core/felt"
)

const latestTag = "latest"

// BlockIdentifier selects a block by number, by hash or by one of the
// "latest" and "pending" tags. The zero value is "latest".
type BlockIdentifier struct {
	number *uint64
	hash   *felt.Felt
	tag    string
}

var (
	LatestBlock  = BlockIdentifier{tag: latestTag}
	PendingBlock = BlockIdentifier{tag: pendingTag}
)

func BlockByNumber(number uint64) BlockIdentifier {
	return BlockIdentifier{number: &number}
}

func BlockByHash(hash *felt.Felt) BlockIdentifier {
	return BlockIdentifier{hash: hash}
}

// ParseBlockIdentifier resolves a string: "latest", "pending", a 0x-prefixed
// block hash or a decimal block number.
func ParseBlockIdentifier(s string) (BlockIdentifier, error) {
	switch {
	case s == latestTag || s == "":
		return LatestBlock, nil
	case s == pendingTag:
		return PendingBlock, nil
	case strings.HasPrefix(s, "0x"):
		hash, err := new(felt.Felt).SetString(s)
		if err != nil {
			return BlockIdentifier{}, malformedRequest("block hash %q: %v", s, err)
		}
		return BlockByHash(hash), nil
	default:
		number, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return BlockIdentifier{}, malformedRequest("invalid block identifier %q", s)
		}
		return BlockByNumber(number), nil
	}
}

// Number returns the block number if the identifier selects one.
func (b BlockIdentifier) Number() (uint64, bool) {
	if b.number == nil {
		return 0, false
	}
	return *b.number, true
}

// Hash returns the block hash if the identifier selects one.
func (b BlockIdentifier) Hash() (*felt.Felt, bool) {
	return b.hash, b.hash != nil
}

func (b BlockIdentifier) IsPending() bool {
	return b.tag == pendingTag
}

// QueryParam returns the single query parameter the gateway expects for
// this identifier.
func (b BlockIdentifier) QueryParam() (key, value string) {
	switch {
	case b.hash != nil:
		return "blockHash", b.hash.String()
	case b.number != nil:
		return "blockNumber", strconv.FormatUint(*b.number, 10)
	case b.tag == pendingTag:
		return "blockNumber", pendingTag
	default:
		return "blockNumber", latestTag
	}
}

func (b BlockIdentifier) String() string {
	_, value := b.QueryParam()
	return value
}

// Set and Type let a BlockIdentifier be used as a command line flag.
func (b *BlockIdentifier) Set(s string) error {
	id, err := ParseBlockIdentifier(s)
	if err != nil {
		return err
	}
	*b = id
	return nil
}

func (b *BlockIdentifier) Type() string {
	return "BlockIdentifier"
}
