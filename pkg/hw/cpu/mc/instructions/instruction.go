package instructions

import (
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Stores a fully decoded instruction
type Instruction struct {
	Descriptor *Descriptor
	Operands   []OperandValue
}

// Returns the instruction with its operands laid out into machine word fields
func (i *Instruction) Raw() (RawInstruction, error) {
	return Encoder{}.EncodeFields(i.Descriptor, i.Operands)
}

// Returns the machine word of the instruction
func (i *Instruction) Encode() (uint32, error) {
	return Encoder{}.Encode(i.Descriptor, i.Operands)
}

// Returns the assembly representation of the instruction
func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(i.Descriptor.Mnemonic)

	if len(i.Operands) > 0 {
		builder.WriteString(" ")
		builder.WriteString(utils.FormatSlice(i.Operands, ", "))
	}

	return builder.String()
}

// Returns the instruction with the given operands, checking the operand count and kinds
func NewInstruction(descriptor *Descriptor, operands []OperandValue) (*Instruction, error) {
	if _, err := (Encoder{}).EncodeFields(descriptor, operands); err != nil {
		return nil, err
	}

	return &Instruction{
		Descriptor: descriptor,
		Operands:   operands,
	}, nil
}
