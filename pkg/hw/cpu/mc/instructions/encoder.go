package instructions

import (
	"fmt"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Packs translated operands into machine words
type Encoder struct {
	// If true, immediates that do not fit the field of the instruction layout are
	// rejected instead of being truncated
	Strict bool
}

// Returns the machine word of an instruction given its descriptor and operand values
func (e Encoder) Encode(d *Descriptor, operands []OperandValue) (uint32, error) {
	raw, err := e.EncodeFields(d, operands)
	if err != nil {
		return 0, err
	}

	return raw.Encode(), nil
}

// Same as Encode(), but returns the instruction fields before composing the machine word
func (e Encoder) EncodeFields(d *Descriptor, operands []OperandValue) (RawInstruction, error) {
	format, err := d.Format()
	if err != nil {
		return RawInstruction{}, err
	}

	if err := format.validate(d); err != nil {
		return RawInstruction{}, err
	}

	kinds := format.OperandKinds()

	if len(operands) != d.Operands || len(operands) != len(kinds) {
		return RawInstruction{}, utils.MakeError(ErrArity, "'%v' expects %v operands, got %v", d.Mnemonic, d.Operands, len(operands))
	}

	for i, operand := range operands {
		if operand.Kind() != kinds[i] {
			return RawInstruction{}, utils.MakeError(ErrFormat, "operand [%v] of '%v' must be a %v, got %v '%v'", i, d.Mnemonic, kinds[i], operand.Kind(), operand)
		}
	}

	if e.Strict {
		if immediate, hasImmediate := format.Immediate(d); hasImmediate {
			if err := immediate.Check(operands[len(operands)-1].Immediate()); err != nil {
				return RawInstruction{}, fmt.Errorf("'%v' %v-type immediate: %w", d.Mnemonic, format.Name(), err)
			}
		}
	}

	return RawInstruction{
		Descriptor: d,
		Fields:     format.fields(d, operands),
	}, nil
}

// Encodes an instruction truncating out of range immediates
func Encode(d *Descriptor, operands []OperandValue) (uint32, error) {
	return Encoder{}.Encode(d, operands)
}
