package instructions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T, xlen int) *Translator {
	translator, err := NewTranslator(xlen)
	require.NoError(t, err)
	return translator
}

func TestNewTranslator_RejectsUnsupportedWidths(t *testing.T) {
	for _, xlen := range []int{-1, 0, 33, 64} {
		_, err := NewTranslator(xlen)
		assert.ErrorIs(t, err, ErrRange, "xlen %v", xlen)
	}
}

func TestTranslator_RegisterIndexRoundTrips(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	for n := 0; n < DefaultXLEN; n++ {
		index, err := translator.RegisterIndex(fmt.Sprintf("x%d", n))
		require.NoError(t, err)
		assert.Equal(t, n, index)
	}
}

func TestTranslator_RegisterIndexRejectsBadTokens(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	for _, token := range []string{"x", "1", "r1", "x1a", "x-1", "x+1", "x32", "'b1", ""} {
		t.Run(token, func(t *testing.T) {
			_, err := translator.RegisterIndex(token)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestTranslator_RegisterIndexBoundedByXLEN(t *testing.T) {
	translator := newTranslator(t, 16)

	_, err := translator.RegisterIndex("x15")
	assert.NoError(t, err)

	_, err = translator.RegisterIndex("x16")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestTranslator_BinaryLiterals(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	for length := 1; length <= DefaultXLEN; length++ {
		digits := "1" + strings.Repeat("0", length-1)

		value, ok, err := translator.TranslateImmediate(BinaryLiteralPrefix + digits)
		require.NoError(t, err, "length %v", length)
		assert.True(t, ok)
		assert.Equal(t, int64(1)<<(length-1), value)

		allOnes, _, err := translator.TranslateImmediate(BinaryLiteralPrefix + strings.Repeat("1", length))
		require.NoError(t, err)
		assert.Equal(t, (int64(1)<<length)-1, allOnes)
	}
}

func TestTranslator_BinaryLiteralLengthBounds(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	_, ok, err := translator.TranslateImmediate(BinaryLiteralPrefix)
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrRange)

	_, _, err = translator.TranslateImmediate(BinaryLiteralPrefix + strings.Repeat("0", DefaultXLEN+1))
	assert.ErrorIs(t, err, ErrRange)

	small := newTranslator(t, 8)
	_, _, err = small.TranslateImmediate(BinaryLiteralPrefix + "111111111")
	assert.ErrorIs(t, err, ErrRange)

	value, _, err := small.TranslateImmediate(BinaryLiteralPrefix + "11111111")
	require.NoError(t, err)
	assert.Equal(t, int64(255), value)
}

func TestTranslator_BinaryLiteralInvalidDigits(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	_, ok, err := translator.TranslateImmediate("'b102")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestTranslator_DecimalBounds(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)
	min, max := translator.Limits()

	assert.Equal(t, int64(-2147483648), min)
	assert.Equal(t, int64(4294967295), max)

	tests := []struct {
		token string
		value int64
		err   error
	}{
		{token: "0", value: 0},
		{token: "10", value: 10},
		{token: "-1", value: -1},
		{token: "-2147483648", value: min},
		{token: "4294967295", value: max},
		{token: "007", value: 7},
		{token: "-2147483649", err: ErrRange},
		{token: "4294967296", err: ErrRange},
		{token: "999999999999", err: ErrRange},
		{token: "99999999999999999999999999", err: ErrRange},
		{token: "-99999999999999999999999999", err: ErrRange},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			value, ok, err := translator.TranslateImmediate(test.token)
			assert.True(t, ok)

			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.value, value)
			}
		})
	}
}

func TestTranslator_NonNumericTokensPassThrough(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	for _, token := range []string{"x1", "-", "+5", "0x10", "ten", ""} {
		_, ok, err := translator.TranslateImmediate(token)
		assert.NoError(t, err, token)
		assert.False(t, ok, token)
	}
}

func TestTranslator_TranslateByKind(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)

	register, err := translator.Translate(OperandKind_Register, "x7")
	require.NoError(t, err)
	assert.Equal(t, OperandKind_Register, register.Kind())
	assert.Equal(t, 7, register.Register())

	immediate, err := translator.Translate(OperandKind_Immediate, "-12")
	require.NoError(t, err)
	assert.Equal(t, OperandKind_Immediate, immediate.Kind())
	assert.Equal(t, int64(-12), immediate.Immediate())

	_, err = translator.Translate(OperandKind_Immediate, "x3")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = translator.Translate(OperandKind_Register, "5")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestTranslator_TranslateOperandsChecksArity(t *testing.T) {
	translator := newTranslator(t, DefaultXLEN)
	add, err := Mnemonics.Lookup("add")
	require.NoError(t, err)

	_, err = translator.TranslateOperands(add, []string{"x1", "x2"})
	assert.ErrorIs(t, err, ErrArity)

	_, err = translator.TranslateOperands(add, []string{"x1", "x2", "x3", "x4"})
	assert.ErrorIs(t, err, ErrArity)

	operands, err := translator.TranslateOperands(add, []string{"x1", "x2", "x3"})
	require.NoError(t, err)
	assert.Equal(t, []OperandValue{RegisterOperandValue(1), RegisterOperandValue(2), RegisterOperandValue(3)}, operands)
}
