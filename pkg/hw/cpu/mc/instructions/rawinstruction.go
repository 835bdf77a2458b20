package instructions

import (
	"fmt"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Stores an instruction with its operands already laid out into the physical
// fields of the machine word, but not composed yet
//
// Raw instructions are generated as a middle step in both directions: when encoding,
// after operands have been translated and distributed into fields, and when decoding,
// after the opcode has been identified but before operand values are recovered
type RawInstruction struct {
	Descriptor *Descriptor
	Fields     Fields
}

// Returns the machine word of the instruction
func (instr RawInstruction) Encode() uint32 {
	return instr.Fields.Compose(instr.Descriptor.Class)
}

// Returns the instruction with all its operands decoded
func (instr RawInstruction) Decode() (*Instruction, error) {
	format, err := instr.Descriptor.Format()
	if err != nil {
		return nil, err
	}

	return &Instruction{
		Descriptor: instr.Descriptor,
		Operands:   format.operands(instr.Descriptor, instr.Fields),
	}, nil
}

type namedField struct {
	name  string
	value uint32
	field utils.BitField
}

// Generates an ASCII frame representation of the instruction, showing the
// contents of every physical field of the machine word
func (instr RawInstruction) PrettyPrint(leftpad int) (string, error) {
	fields := []namedField{
		{"funct7", instr.Fields.Funct7, Field_Funct7},
		{"rs2", instr.Fields.Rs2, Field_Rs2},
		{"rs1", instr.Fields.Rs1, Field_Rs1},
		{"funct3", instr.Fields.Funct3, Field_Funct3},
		{"rd", instr.Fields.Rd, Field_Rd},
		{"opcode", uint32(instr.Descriptor.Class), Field_Opcode},
	}

	return utils.AsciiFrame(utils.Map(fields, func(f namedField) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v %v", f.name, utils.FormatUintBinary(uint64(f.value), f.field.Width)),
			Begin: f.field.Position,
			Width: f.field.Width,
		}
	}), InstructionBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad)
}

func (instr RawInstruction) String() string {
	return fmt.Sprintf("%v {funct7: %v, rs2: %v, rs1: %v, funct3: %v, rd: %v, opcode: %v}",
		instr.Descriptor.Mnemonic,
		utils.FormatUintBinary(uint64(instr.Fields.Funct7), Field_Funct7.Width),
		utils.FormatUintBinary(uint64(instr.Fields.Rs2), Field_Rs2.Width),
		utils.FormatUintBinary(uint64(instr.Fields.Rs1), Field_Rs1.Width),
		utils.FormatUintBinary(uint64(instr.Fields.Funct3), Field_Funct3.Width),
		utils.FormatUintBinary(uint64(instr.Fields.Rd), Field_Rd.Width),
		utils.FormatUintBinary(uint64(instr.Descriptor.Class), OpcodeBits))
}
