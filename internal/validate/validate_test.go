package validate

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tz1 = "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"
	tz2 = "tz2BFTyPeYRzxd5aiBchbXN3WCZhx7BqbMBq"
	tz3 = "tz3WXYtyDUNL91qfiCJtVUX746QpNv5i5ve5"
	kt1 = "KT1PWx2mnDueood7fEmfbBDKx1D9BAnnXitn"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{"ed25519", tz1, Ed25519Account},
		{"secp256k1", tz2, Secp256k1Account},
		{"p256", tz3, P256Account},
		{"contract", kt1, Contract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Address(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, id.Raw)
			assert.Equal(t, tt.kind, id.Kind)
			assert.Equal(t, tt.kind == Contract, id.IsContract())
		})
	}
}

func TestAddress_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "tz1abc"},
		{"one char short", tz1[:35]},
		{"one char long", tz1 + "a"},
		{"unknown prefix", "tz4" + tz1[3:]},
		{"lowercase contract prefix", "kt1" + kt1[3:]},
		{"zero not in alphabet", tz1[:10] + "0" + tz1[11:]},
		{"capital O not in alphabet", tz1[:10] + "O" + tz1[11:]},
		{"capital I not in alphabet", tz1[:10] + "I" + tz1[11:]},
		{"lowercase l not in alphabet", tz1[:10] + "l" + tz1[11:]},
		{"leading space", " " + tz1},
		{"trailing newline", tz1 + "\n"},
		{"embedded in text", "send to " + tz1},
		{"injection suffix", tz1 + "; DROP TABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Address(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAddress)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestAddress_ErrorEchoIsBounded(t *testing.T) {
	_, err := Address("tz1abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tz1abc"`)
	for _, prefix := range []string{"tz1", "tz2", "tz3", "KT1"} {
		assert.Contains(t, err.Error(), prefix)
	}

	long := strings.Repeat("x", 500)
	_, err = Address(long)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"`+strings.Repeat("x", 20)+`"`)
	assert.NotContains(t, err.Error(), strings.Repeat("x", 21))

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "address", verr.Validator)
}

func TestAddress_TruncatesRunes(t *testing.T) {
	_, err := Address(strings.Repeat("é", 30))
	require.Error(t, err)
	assert.Contains(t, err.Error(), strings.Repeat("é", 20))
	assert.NotContains(t, err.Error(), strings.Repeat("é", 21))
}

func TestNetwork(t *testing.T) {
	tests := []struct {
		raw  string
		want Net
	}{
		{"mainnet", Mainnet},
		{"MAINNET", Mainnet},
		{"  Ghostnet\t", Ghostnet},
		{"mainnet ", Mainnet},
		{"ShadowNet", Shadownet},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := Network(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetwork_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "Mainet", "testnet", "main net", "mainnet/../admin", "http://evil"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Network(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNetwork)
		})
	}

	_, err := Network("  TestNet ")
	require.Error(t, err)
	assert.Equal(t, `invalid network: allowed: ghostnet, mainnet, shadownet, got: "testnet"`, err.Error())
}

func TestNetworks_Sorted(t *testing.T) {
	assert.Equal(t, []string{"ghostnet", "mainnet", "shadownet"}, NetworkNames())

	nets := Networks()
	nets[0] = "mutated"
	assert.Equal(t, Ghostnet, Networks()[0], "Networks must return a copy")
}

func TestBoundedInteger(t *testing.T) {
	got, err := BoundedInteger(50, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got)

	_, err = BoundedInteger(0, 1, 100)
	assert.ErrorIs(t, err, ErrTooSmall)

	_, err = BoundedInteger(101, 1, 100)
	assert.ErrorIs(t, err, ErrTooLarge)

	for _, edge := range []int64{1, 100} {
		got, err := BoundedInteger(edge, 1, 100)
		require.NoError(t, err)
		assert.Equal(t, edge, got)
	}
}

func TestBoundedInteger_IntegerKinds(t *testing.T) {
	values := []any{
		int(7), int8(7), int16(7), int32(7), int64(7),
		uint(7), uint8(7), uint16(7), uint32(7), uint64(7),
		json.Number("7"),
	}
	for _, v := range values {
		got, err := BoundedInteger(v, 0, 10)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, int64(7), got)
	}
}

func TestBoundedInteger_RejectsNonIntegers(t *testing.T) {
	values := []any{
		50.0, float32(50), 50.5, "50", "fifty", true, nil,
		json.Number("50.0"), json.Number("5e1"), []int{50},
	}
	for _, v := range values {
		_, err := BoundedInteger(v, 1, 100)
		require.Error(t, err, "%#v", v)
		assert.ErrorIs(t, err, ErrNotInteger)
	}

	_, err := BoundedInteger(50.0, 1, 100)
	assert.Equal(t, "value must be an integer, got type: float64", err.Error())
	_, err = BoundedInteger(nil, 1, 100)
	assert.Equal(t, "value must be an integer, got type: null", err.Error())
}

func TestBoundedInteger_OutOfInt64Range(t *testing.T) {
	_, err := BoundedInteger(uint64(math.MaxUint64), 0, math.MaxInt64)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = BoundedInteger(json.Number("99999999999999999999"), 0, 100)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = BoundedInteger(json.Number("-99999999999999999999"), 0, 100)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestLimit(t *testing.T) {
	_, err := Limit(500, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "limit too large: maximum 100, got: 500", err.Error())

	_, err = Limit(0, 100)
	assert.Equal(t, "limit must be positive, got: 0", err.Error())

	got, err := Limit(10, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)
}

func TestAmount_NeverEchoesValue(t *testing.T) {
	_, err := Amount(int64(1_000_000_000_001), DefaultMaxAmount)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, "amount too large: maximum 1000000000000 mutez (1000000 XTZ)", err.Error())
	assert.NotContains(t, err.Error(), "1000000000001")

	_, err = Amount(-42, DefaultMaxAmount)
	require.Error(t, err)
	assert.Equal(t, "amount cannot be negative", err.Error())

	got, err := Amount(0, DefaultMaxAmount)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestLevel(t *testing.T) {
	got, err := Level(int64(5_000_000))
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), got)

	_, err = Level(-1)
	assert.ErrorIs(t, err, ErrTooSmall)
	_, err = Level("head")
	assert.ErrorIs(t, err, ErrNotInteger)
}

func TestContractAddress(t *testing.T) {
	id, err := ContractAddress(kt1)
	require.NoError(t, err)
	assert.True(t, id.IsContract())

	_, err = ContractAddress(tz1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, "address must be a KT1 contract, got: tz1", err.Error())

	_, err = ContractAddress("")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestOperationHash(t *testing.T) {
	valid := "o" + strings.Repeat("o", 25) + strings.Repeat("9", 25)
	got, err := OperationHash(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, got)

	for _, raw := range []string{"", valid[:50], valid + "a", "p" + valid[1:], valid[:20] + "0" + valid[21:]} {
		_, err := OperationHash(raw)
		assert.ErrorIs(t, err, ErrInvalidOperationHash, raw)
	}
}

func TestText(t *testing.T) {
	got, err := Text("address", tz1)
	require.NoError(t, err)
	assert.Equal(t, tz1, got)

	tests := []struct {
		in   any
		want string
	}{
		{float64(42), "address must be a string, got type: float64"},
		{nil, "address must be a string, got type: null"},
		{[]any{"tz1"}, "address must be a string, got type: []interface {}"},
		{map[string]any{}, "address must be a string, got type: map[string]interface {}"},
	}
	for _, tt := range tests {
		_, err := Text("address", tt.in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotString)
		assert.Equal(t, tt.want, err.Error())
	}
}

func TestIsValidation(t *testing.T) {
	_, err := Network("nope")
	wrapped := errors.Join(errors.New("context"), err)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(errors.New("connection refused")))
	assert.False(t, IsValidation(nil))
}
