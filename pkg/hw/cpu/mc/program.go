package mc

import (
	"encoding/binary"
	"fmt"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
)

// Program represents a sequence of instructions
type Program struct {
	Instructions []*instructions.Instruction
}

// NewProgram creates a new empty program
func NewProgram() *Program {
	return &Program{
		Instructions: make([]*instructions.Instruction, 0),
	}
}

// Add appends an instruction to the program
func (p *Program) Add(instr *instructions.Instruction) *Program {
	p.Instructions = append(p.Instructions, instr)
	return p
}

// Len returns the number of instructions in the program
func (p *Program) Len() int {
	return len(p.Instructions)
}

// Words returns the machine words of the program
func (p *Program) Words(encoder instructions.Encoder) ([]uint32, error) {
	words := make([]uint32, len(p.Instructions))
	for i, instr := range p.Instructions {
		word, err := encoder.Encode(instr.Descriptor, instr.Operands)
		if err != nil {
			return nil, fmt.Errorf("instruction %v (%v): %w", i, instr, err)
		}
		words[i] = word
	}
	return words, nil
}

// Encode encodes the program as a flat little-endian binary image
func (p *Program) Encode(encoder instructions.Encoder) ([]byte, error) {
	words, err := p.Words(encoder)
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, len(words)*instructions.InstructionBits/8)
	for _, word := range words {
		result = binary.LittleEndian.AppendUint32(result, word)
	}
	return result, nil
}
