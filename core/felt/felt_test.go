package felt_test

import (
	"encoding/json"
	"testing"

	"github.com/NethermindEth/starknet-api/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	var with felt.Felt
	require.NoError(t, with.UnmarshalJSON([]byte("0x4437ab")))

	var without felt.Felt
	require.NoError(t, without.UnmarshalJSON([]byte("4437ab")))
	assert.True(t, without.Equal(&with))

	var quoted felt.Felt
	require.NoError(t, quoted.UnmarshalJSON([]byte(`"0x4437ab"`)))
	assert.True(t, quoted.Equal(&with))

	var decimal felt.Felt
	require.NoError(t, decimal.UnmarshalJSON([]byte(`"4470699"`)))
	assert.True(t, decimal.Equal(&with))

	var number felt.Felt
	require.NoError(t, number.UnmarshalJSON([]byte(`4470699`)))
	assert.True(t, number.Equal(&with))
}

func TestUnmarshalJsonErrors(t *testing.T) {
	var f felt.Felt
	assert.Error(t, f.UnmarshalJSON([]byte(`"not a number"`)))
	assert.ErrorIs(t, f.UnmarshalJSON([]byte(`"-1"`)), felt.ErrOutOfRange)
	// field modulus itself is out of range
	assert.ErrorIs(t, f.UnmarshalJSON(
		[]byte(`"0x800000000000011000000000000000000000000000000000000000000000001"`)),
		felt.ErrOutOfRange)
}

func TestMarshalJson(t *testing.T) {
	f := new(felt.Felt).SetUint64(0xabc)
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"0xabc"`, string(b))

	b, err = json.Marshal(&felt.Zero)
	require.NoError(t, err)
	assert.Equal(t, `"0x0"`, string(b))
}

func TestFeltMapKey(t *testing.T) {
	m := map[felt.Felt]int{
		*new(felt.Felt).SetUint64(1):  1,
		*new(felt.Felt).SetUint64(16): 16,
	}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"0x1": 1, "0x10": 16}`, string(b))

	var decoded map[felt.Felt]int
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, m, decoded)
}

func TestRoundTrip(t *testing.T) {
	val, err := new(felt.Felt).SetRandom()
	require.NoError(t, err)

	b, err := json.Marshal(val)
	require.NoError(t, err)

	var decoded felt.Felt
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, *val, decoded)
}

func TestNewUnsafeFromString(t *testing.T) {
	assert.Equal(t, "0x2a", felt.NewUnsafeFromString("42").String())
	assert.Panics(t, func() { felt.NewUnsafeFromString("0xzz") })
}

func TestUint64(t *testing.T) {
	f := felt.NewUnsafeFromString("0x5")
	assert.True(t, f.IsUint64())
	assert.Equal(t, uint64(5), f.Uint64())
	assert.Equal(t, "5", f.Text(10))
}
