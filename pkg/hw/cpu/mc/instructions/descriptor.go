package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Contains the layout information of an instruction mnemonic. Descriptors are
// immutable once registered in a mnemonic table
type Descriptor struct {
	// Instruction name, lowercase
	Mnemonic string
	// Major opcode, selects the instruction word layout
	Class OpcodeClass
	// Fixed funct3 code. nil if the layout derives the field from an operand
	Funct3 *uint32
	// Fixed funct7 code. nil if the layout derives the field from an operand
	Funct7 *uint32
	// Number of operands in assembly syntax
	Operands int
	// Whether the immediate operand is a two's complement number
	SignedImmediate bool
	// Instruction description (for documentation and debugging)
	Description string
}

// Returns the instruction word layout of the instruction
func (d *Descriptor) Format() (Format, error) {
	return d.Class.Format()
}

// Returns the names of the operands in assembly order
func (d *Descriptor) OperandNames() []string {
	format, err := d.Format()
	if err != nil {
		return nil
	}

	switch format.(type) {
	case RFormat:
		return []string{"rd", "rs1", "rs2"}
	case IFormat:
		switch {
		case d.Funct7 != nil:
			return []string{"rd", "rs1", "shamt"}
		case d.Class == OpcodeClass_LOAD:
			return []string{"rd", "rs1", "offset"}
		}
		return []string{"rd", "rs1", "imm"}
	case SFormat, BFormat:
		return []string{"rs1", "rs2", "offset"}
	case UFormat:
		return []string{"rd", "imm"}
	case JFormat:
		return []string{"rd", "offset"}
	}

	return nil
}

// Returns the assembly syntax of the instruction
func (d *Descriptor) String() string {
	return strings.TrimSpace(d.Mnemonic + " " + strings.Join(d.OperandNames(), ", "))
}

// Checks the descriptor is consistent with its instruction layout
func (d *Descriptor) Validate() error {
	format, err := d.Format()
	if err != nil {
		return utils.MakeError(ErrInternalLayout, "'%v': %w", d.Mnemonic, err)
	}

	if d.Operands != len(format.OperandKinds()) {
		return utils.MakeError(ErrInternalLayout, "'%v' declares %v operands but the %v layout takes %v", d.Mnemonic, d.Operands, format.Name(), len(format.OperandKinds()))
	}

	if d.Funct3 != nil && *d.Funct3 > utils.AllOnes[uint32](Field_Funct3.Width) {
		return utils.MakeError(ErrInternalLayout, "'%v' funct3 code %b does not fit in %v bits", d.Mnemonic, *d.Funct3, Field_Funct3.Width)
	}

	if d.Funct7 != nil && *d.Funct7 > utils.AllOnes[uint32](Field_Funct7.Width) {
		return utils.MakeError(ErrInternalLayout, "'%v' funct7 code %b does not fit in %v bits", d.Mnemonic, *d.Funct7, Field_Funct7.Width)
	}

	return format.validate(d)
}

// Returns full documentation for the instruction
func (d *Descriptor) Documentation(leftpad int) (string, error) {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	format, err := d.Format()
	if err != nil {
		return "", err
	}

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v\n\n", d))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("Memory layout (%v-type):\n\n", format.Name()))

	fields := utils.Map(format.Layout(), func(field LayoutField) utils.AsciiFrameField {
		name := field.Name

		switch {
		case field.Name == "opcode":
			name = utils.FormatUintBinary(uint64(d.Class), OpcodeBits)
		case field.Field == Field_Funct3 && d.Funct3 != nil:
			name = utils.FormatUintBinary(uint64(*d.Funct3), Field_Funct3.Width)
		case field.Field == Field_Funct7 && d.Funct7 != nil:
			name = utils.FormatUintBinary(uint64(*d.Funct7), Field_Funct7.Width)
		}

		return utils.AsciiFrameField{
			Name:  name,
			Begin: field.Field.Position,
			Width: field.Field.Width,
		}
	})

	asciiFrame, err := utils.AsciiFrame(fields, InstructionBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad+2)
	if err != nil {
		return "", fmt.Errorf("error generating documentation for instruction %s: %w", d.Mnemonic, err)
	}

	builder.WriteString(asciiFrame)

	return builder.String(), nil
}

func code(value uint32) *uint32 {
	return &value
}

func registerInstruction(mnemonic string, funct3, funct7 uint32, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           OpcodeClass_OP,
		Funct3:          code(funct3),
		Funct7:          code(funct7),
		Operands:        3,
		SignedImmediate: true,
		Description:     description,
	}
}

func immediateInstruction(mnemonic string, class OpcodeClass, funct3 uint32, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           class,
		Funct3:          code(funct3),
		Operands:        3,
		SignedImmediate: true,
		Description:     description,
	}
}

func shiftInstruction(mnemonic string, funct3, funct7 uint32, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           OpcodeClass_OP_IMM,
		Funct3:          code(funct3),
		Funct7:          code(funct7),
		Operands:        3,
		SignedImmediate: false,
		Description:     description,
	}
}

func storeInstruction(mnemonic string, funct3 uint32, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           OpcodeClass_STORE,
		Funct3:          code(funct3),
		Operands:        3,
		SignedImmediate: true,
		Description:     description,
	}
}

func branchInstruction(mnemonic string, funct3 uint32, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           OpcodeClass_BRANCH,
		Funct3:          code(funct3),
		Operands:        3,
		SignedImmediate: true,
		Description:     fmt.Sprintf("Adds the offset to pc if %v", description),
	}
}

func upperImmediateInstruction(mnemonic string, class OpcodeClass, description string) *Descriptor {
	return &Descriptor{
		Mnemonic:        mnemonic,
		Class:           class,
		Operands:        2,
		SignedImmediate: false,
		Description:     description,
	}
}

// Mnemonic table of the RV32I base integer instructions supported by the assembler
var Mnemonics *MnemonicTable = NewMnemonicTable([]*Descriptor{
	registerInstruction("add", 0b000, 0b0000000, "rd = rs1 + rs2"),
	registerInstruction("sub", 0b000, 0b0100000, "rd = rs1 - rs2"),
	registerInstruction("sll", 0b001, 0b0000000, "rd = rs1 << rs2[4:0]"),
	registerInstruction("slt", 0b010, 0b0000000, "rd = 1 if rs1 < rs2 (signed), 0 otherwise"),
	registerInstruction("sltu", 0b011, 0b0000000, "rd = 1 if rs1 < rs2 (unsigned), 0 otherwise"),
	registerInstruction("xor", 0b100, 0b0000000, "rd = rs1 ^ rs2"),
	registerInstruction("srl", 0b101, 0b0000000, "rd = rs1 >> rs2[4:0] (logical)"),
	registerInstruction("sra", 0b101, 0b0100000, "rd = rs1 >> rs2[4:0] (arithmetic)"),
	registerInstruction("or", 0b110, 0b0000000, "rd = rs1 | rs2"),
	registerInstruction("and", 0b111, 0b0000000, "rd = rs1 & rs2"),

	immediateInstruction("addi", OpcodeClass_OP_IMM, 0b000, "rd = rs1 + imm"),
	immediateInstruction("slti", OpcodeClass_OP_IMM, 0b010, "rd = 1 if rs1 < imm (signed), 0 otherwise"),
	immediateInstruction("sltiu", OpcodeClass_OP_IMM, 0b011, "rd = 1 if rs1 < imm (unsigned), 0 otherwise"),
	immediateInstruction("xori", OpcodeClass_OP_IMM, 0b100, "rd = rs1 ^ imm"),
	immediateInstruction("ori", OpcodeClass_OP_IMM, 0b110, "rd = rs1 | imm"),
	immediateInstruction("andi", OpcodeClass_OP_IMM, 0b111, "rd = rs1 & imm"),
	shiftInstruction("slli", 0b001, 0b0000000, "rd = rs1 << shamt"),
	shiftInstruction("srli", 0b101, 0b0000000, "rd = rs1 >> shamt (logical)"),
	shiftInstruction("srai", 0b101, 0b0100000, "rd = rs1 >> shamt (arithmetic)"),

	immediateInstruction("lb", OpcodeClass_LOAD, 0b000, "rd = sign extended byte at rs1 + offset"),
	immediateInstruction("lh", OpcodeClass_LOAD, 0b001, "rd = sign extended half word at rs1 + offset"),
	immediateInstruction("lw", OpcodeClass_LOAD, 0b010, "rd = word at rs1 + offset"),
	immediateInstruction("lbu", OpcodeClass_LOAD, 0b100, "rd = zero extended byte at rs1 + offset"),
	immediateInstruction("lhu", OpcodeClass_LOAD, 0b101, "rd = zero extended half word at rs1 + offset"),

	storeInstruction("sb", 0b000, "Stores the low byte of rs2 at rs1 + offset"),
	storeInstruction("sh", 0b001, "Stores the low half word of rs2 at rs1 + offset"),
	storeInstruction("sw", 0b010, "Stores rs2 at rs1 + offset"),

	branchInstruction("beq", 0b000, "rs1 == rs2"),
	branchInstruction("bne", 0b001, "rs1 != rs2"),
	branchInstruction("blt", 0b100, "rs1 < rs2 (signed)"),
	branchInstruction("bge", 0b101, "rs1 >= rs2 (signed)"),
	branchInstruction("bltu", 0b110, "rs1 < rs2 (unsigned)"),
	branchInstruction("bgeu", 0b111, "rs1 >= rs2 (unsigned)"),

	upperImmediateInstruction("lui", OpcodeClass_LUI, "rd = imm << 12"),
	upperImmediateInstruction("auipc", OpcodeClass_AUIPC, "rd = pc + (imm << 12)"),

	{
		Mnemonic:        "jal",
		Class:           OpcodeClass_JAL,
		Operands:        2,
		SignedImmediate: true,
		Description:     "rd = pc + 4, then jumps to pc + offset",
	},
	immediateInstruction("jalr", OpcodeClass_JALR, 0b000, "rd = pc + 4, then jumps to (rs1 + imm) with bit 0 cleared"),
})
