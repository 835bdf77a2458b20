package mc

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
)

var ErrInvalidWord = errors.New("invalid machine word")

// Parses a machine word written as up to 8 hex digits, with an optional 0x prefix
func ParseWord(token string) (uint32, error) {
	digits := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(token)), "0x")

	if len(digits) == 0 || len(digits) > instructions.InstructionBits/4 {
		return 0, utils.MakeError(ErrInvalidWord, "'%v' must have between 1 and %v hex digits", token, instructions.InstructionBits/4)
	}

	word, err := strconv.ParseUint(digits, 16, instructions.InstructionBits)
	if err != nil {
		return 0, utils.MakeError(ErrInvalidWord, "'%v' is not an hex number", token)
	}

	return uint32(word), nil
}

// Result of disassembling one machine word
type Disassembly struct {
	Word        uint32
	Instruction *instructions.Instruction
	// Not nil if the word does not match any known instruction
	Err error
}

// Returns the mnemonic of the word, or "unknown"
func (d Disassembly) Mnemonic() string {
	if d.Instruction == nil {
		return "unknown"
	}

	return d.Instruction.Descriptor.Mnemonic
}

func (d Disassembly) String() string {
	if d.Instruction == nil {
		return d.Mnemonic()
	}

	return d.Instruction.String()
}

// Decodes a machine word. Words that do not match any instruction are reported
// in the result instead of failing, so a stream of words can be disassembled
// without stopping at data words
func Disassemble(word uint32) Disassembly {
	instruction, err := instructions.Decode(word)

	return Disassembly{
		Word:        word,
		Instruction: instruction,
		Err:         err,
	}
}
