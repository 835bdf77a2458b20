package instructions

import (
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Represents the major opcode of an instruction (bits 6:0 of the machine word)
type OpcodeClass uint32

const (
	// Loads from memory
	OpcodeClass_LOAD OpcodeClass = 0b0000011
	// Register-immediate integer operations
	OpcodeClass_OP_IMM OpcodeClass = 0b0010011
	// Add upper immediate to pc
	OpcodeClass_AUIPC OpcodeClass = 0b0010111
	// Stores to memory
	OpcodeClass_STORE OpcodeClass = 0b0100011
	// Register-register integer operations
	OpcodeClass_OP OpcodeClass = 0b0110011
	// Load upper immediate
	OpcodeClass_LUI OpcodeClass = 0b0110111
	// Conditional branches
	OpcodeClass_BRANCH OpcodeClass = 0b1100011
	// Jump and link register
	OpcodeClass_JALR OpcodeClass = 0b1100111
	// Jump and link
	OpcodeClass_JAL OpcodeClass = 0b1101111
)

// Number of bits of the opcode field
const OpcodeBits = 7

// All the opcode classes known by the encoder
var OpcodeClasses = []OpcodeClass{
	OpcodeClass_LOAD,
	OpcodeClass_OP_IMM,
	OpcodeClass_AUIPC,
	OpcodeClass_STORE,
	OpcodeClass_OP,
	OpcodeClass_LUI,
	OpcodeClass_BRANCH,
	OpcodeClass_JALR,
	OpcodeClass_JAL,
}

func (c OpcodeClass) String() string {
	switch c {
	case OpcodeClass_LOAD:
		return "LOAD"
	case OpcodeClass_OP_IMM:
		return "OP-IMM"
	case OpcodeClass_AUIPC:
		return "AUIPC"
	case OpcodeClass_STORE:
		return "STORE"
	case OpcodeClass_OP:
		return "OP"
	case OpcodeClass_LUI:
		return "LUI"
	case OpcodeClass_BRANCH:
		return "BRANCH"
	case OpcodeClass_JALR:
		return "JALR"
	case OpcodeClass_JAL:
		return "JAL"
	}

	return "UNKNOWN(" + utils.FormatUintBinary(uint64(c), OpcodeBits) + ")"
}

// Returns the instruction word layout used by all the instructions of the opcode class
func (c OpcodeClass) Format() (Format, error) {
	switch c {
	case OpcodeClass_OP:
		return RFormat{}, nil
	case OpcodeClass_OP_IMM, OpcodeClass_LOAD, OpcodeClass_JALR:
		return IFormat{}, nil
	case OpcodeClass_STORE:
		return SFormat{}, nil
	case OpcodeClass_BRANCH:
		return BFormat{}, nil
	case OpcodeClass_LUI, OpcodeClass_AUIPC:
		return UFormat{}, nil
	case OpcodeClass_JAL:
		return JFormat{}, nil
	}

	return nil, utils.MakeError(ErrInternalLayout, "no instruction layout for opcode class %v", c)
}
