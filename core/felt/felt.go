package felt

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Felt is a StarkNet field element. Every numeric-string value exchanged
// with the feeder gateway (addresses, hashes, selectors, calldata words) is
// carried as a Felt.
type Felt struct {
	val fp.Element
}

const (
	Limbs = fp.Limbs // number of 64 bits words needed to represent a Element
	Bits  = fp.Bits  // number of bits needed to represent a Element
	Bytes = fp.Bytes // number of bytes needed to represent a Element
)

// Zero felt constant
var Zero = Felt{}

var (
	ErrOutOfRange = errors.New("value is out of the field range")
	ErrTooLarge   = errors.New("value too large (max = Element.Bits * 3)")
)

var bigIntPool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// NewUnsafeFromString parses a felt and panics on failure. Meant for tests
// and constants.
func NewUnsafeFromString(s string) *Felt {
	f, err := new(Felt).SetString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Impl returns the underlying field element type
func (z *Felt) Impl() *fp.Element {
	return &z.val
}

// UnmarshalJSON accepts numbers and strings as input.
// Strings may carry a base prefix (0x, 0b, 0o) or be decimal; if a string
// has no prefix and is not decimal it is parsed as hex.
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > fp.Bits*3 {
		return ErrTooLarge
	}

	// we accept numbers and strings, remove leading and trailing quotes if any
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	return z.setText(s)
}

// MarshalJSON writes the felt as a quoted hex string.
func (z *Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

// MarshalText allows felts to key JSON objects.
func (z Felt) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Felt) UnmarshalText(text []byte) error {
	return z.setText(string(text))
}

func (z *Felt) setText(s string) error {
	vv := bigIntPool.Get().(*big.Int)
	defer bigIntPool.Put(vv)

	if _, ok := vv.SetString(s, 0); !ok {
		if _, ok := vv.SetString(s, 16); !ok {
			return errors.New("can't parse into a big.Int: " + s)
		}
	}
	if vv.Sign() < 0 || vv.Cmp(fp.Modulus()) >= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}

	z.val.SetBigInt(vv)
	return nil
}

// SetBytes forwards the call to underlying field element implementation
func (z *Felt) SetBytes(e []byte) *Felt {
	z.val.SetBytes(e)
	return z
}

// SetString parses a prefixed (0x, 0b, 0o) or decimal number. Values outside
// of the field are rejected rather than reduced.
func (z *Felt) SetString(number string) (*Felt, error) {
	if err := z.setText(number); err != nil {
		return nil, err
	}
	return z, nil
}

// SetUint64 forwards the call to underlying field element implementation
func (z *Felt) SetUint64(v uint64) *Felt {
	z.val.SetUint64(v)
	return z
}

// SetRandom forwards the call to underlying field element implementation
func (z *Felt) SetRandom() (*Felt, error) {
	_, err := z.val.SetRandom()
	return z, err
}

// String returns the 0x-prefixed hex representation
func (z *Felt) String() string {
	return "0x" + z.val.Text(16)
}

// Text forwards the call to underlying field element implementation
func (z *Felt) Text(base int) string {
	return z.val.Text(base)
}

// Equal forwards the call to underlying field element implementation
func (z *Felt) Equal(x *Felt) bool {
	return z.val.Equal(&x.val)
}

// Bytes forwards the call to underlying field element implementation
func (z *Felt) Bytes() [32]byte {
	return z.val.Bytes()
}

// BigInt returns the value of the felt as a big integer
func (z *Felt) BigInt(res *big.Int) *big.Int {
	return z.val.BigInt(res)
}

// IsZero forwards the call to underlying field element implementation
func (z *Felt) IsZero() bool {
	return z.val.IsZero()
}

// IsUint64 reports whether the felt fits into an uint64
func (z *Felt) IsUint64() bool {
	return z.val.IsUint64()
}

// Uint64 returns the low 64 bits of the regular (non-Montgomery) value
func (z *Felt) Uint64() uint64 {
	return z.val.Uint64()
}

// Cmp forwards the call to underlying field element implementation
func (z *Felt) Cmp(x *Felt) int {
	return z.val.Cmp(&x.val)
}
