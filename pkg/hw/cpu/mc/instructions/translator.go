package instructions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Prefix of binary immediate literals ('b1010)
const BinaryLiteralPrefix = "'b"

// Default register width of the target
const DefaultXLEN = 32

// Converts operand tokens into register indices and immediate values. The bounds
// of both depend on the configured register width (xlen)
type Translator struct {
	xlen      int
	registers *registers.RegisterFile
}

// Returns a translator for the given register width. Widths above 32 bits
// are not supported since machine words are 32 bits wide
func NewTranslator(xlen int) (*Translator, error) {
	if xlen < 1 || xlen > 32 {
		return nil, utils.MakeError(ErrRange, "unsupported register width %v, expected a value between 1 and 32", xlen)
	}

	file := registers.IntegerRegisters
	if xlen != file.TotalRegisters() {
		file = registers.NewRegisterFile(xlen)
	}

	return &Translator{
		xlen:      xlen,
		registers: file,
	}, nil
}

// Returns the configured register width
func (t *Translator) XLEN() int {
	return t.xlen
}

// Returns the minimum and maximum accepted decimal literal
func (t *Translator) Limits() (int64, int64) {
	return -(int64(1) << (t.xlen - 1)), (int64(1) << t.xlen) - 1
}

// Parses an immediate literal. Binary literals ('b + up to xlen binary digits) are
// interpreted unsigned, decimal literals may have a sign.
//
// Returns ok == false if the token is not a numeric literal, so the caller can
// route it elsewhere (e.g. to the register parser)
func (t *Translator) TranslateImmediate(token string) (value int64, ok bool, err error) {
	if digits, isBinary := strings.CutPrefix(token, BinaryLiteralPrefix); isBinary {
		if len(digits) == 0 {
			return 0, true, utils.MakeError(ErrRange, "empty binary value")
		}

		if len(digits) > t.xlen {
			return 0, true, utils.MakeError(ErrRange, "literal '%v' is out of bounds for XLEN=%v", digits, t.xlen)
		}

		result, err := strconv.ParseUint(digits, 2, 64)
		if err != nil {
			return 0, true, utils.MakeError(ErrFormat, "invalid binary literal '%v'", token)
		}

		return int64(result), true, nil
	}

	if !isDecimalLiteral(token) {
		return 0, false, nil
	}

	min, max := t.Limits()
	result, err := strconv.ParseInt(token, 10, 64)

	if errors.Is(err, strconv.ErrRange) || (err == nil && (result < min || result > max)) {
		return 0, true, utils.MakeError(ErrRange, "literal '%v' is out of bounds for XLEN=%v", token, t.xlen)
	} else if err != nil {
		return 0, true, utils.MakeError(ErrFormat, "invalid decimal literal '%v'", token)
	}

	return result, true, nil
}

func isDecimalLiteral(token string) bool {
	digits := strings.TrimPrefix(token, "-")

	if len(digits) == 0 {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Parses a register token ('x' + decimal index lower than xlen)
func (t *Translator) RegisterIndex(token string) (int, error) {
	index, err := t.registers.Parse(token)
	if err != nil {
		return 0, utils.MakeError(ErrFormat, "%w", err)
	}

	return index, nil
}

// Translates a token into the operand kind expected by an instruction layout
func (t *Translator) Translate(kind OperandKind, token string) (OperandValue, error) {
	switch kind {
	case OperandKind_Register:
		index, err := t.RegisterIndex(token)
		if err != nil {
			return OperandValue{}, err
		}

		return RegisterOperandValue(index), nil
	case OperandKind_Immediate:
		value, ok, err := t.TranslateImmediate(token)
		if err != nil {
			return OperandValue{}, err
		} else if !ok {
			return OperandValue{}, utils.MakeError(ErrFormat, "expected immediate instead of '%v'", token)
		}

		return ImmediateValue(value), nil
	}

	panic("unreachable")
}

// Translates the operand tokens of an instruction
func (t *Translator) TranslateOperands(d *Descriptor, tokens []string) ([]OperandValue, error) {
	format, err := d.Format()
	if err != nil {
		return nil, err
	}

	kinds := format.OperandKinds()

	if len(tokens) != len(kinds) || len(tokens) != d.Operands {
		return nil, utils.MakeError(ErrArity, "'%v' expects %v operands (%v), got %v", d.Mnemonic, d.Operands, d, len(tokens))
	}

	values := make([]OperandValue, len(tokens))

	for i, token := range tokens {
		value, err := t.Translate(kinds[i], token)
		if err != nil {
			return nil, fmt.Errorf("error parsing operand [%v] of '%v': %w", i, d.Mnemonic, err)
		}

		values[i] = value
	}

	return values, nil
}
