package mc

import (
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Machine readable description of an instruction
type InstructionSummary struct {
	Mnemonic    string `yaml:"mnemonic"`
	Syntax      string `yaml:"syntax"`
	Layout      string `yaml:"layout"`
	Opcode      string `yaml:"opcode"`
	Funct3      string `yaml:"funct3,omitempty"`
	Funct7      string `yaml:"funct7,omitempty"`
	Description string `yaml:"description"`
}

// Machine readable description of a pseudo-instruction
type PseudoSummary struct {
	Mnemonic  string   `yaml:"mnemonic"`
	Canonical string   `yaml:"canonical"`
	Operands  []string `yaml:"operands"`
}

// Machine readable description of the machine code
type Summary struct {
	InstructionBits    int                  `yaml:"instruction_bits"`
	OpcodeBits         int                  `yaml:"opcode_bits"`
	Registers          int                  `yaml:"registers"`
	Instructions       []InstructionSummary `yaml:"instructions"`
	PseudoInstructions []PseudoSummary      `yaml:"pseudo_instructions"`
}

func optionalCode(code *uint32, bits int) string {
	if code == nil {
		return ""
	}

	return utils.FormatUintBinary(uint64(*code), bits)
}

// Returns the machine code description in a form suitable for serialization
func (d *MachineCodeDescriptor) Summary() (Summary, error) {
	summary := Summary{
		InstructionBits: instructions.InstructionBits,
		OpcodeBits:      instructions.OpcodeBits,
		Registers:       d.Registers.TotalRegisters(),
	}

	for _, descriptor := range d.Mnemonics.All() {
		format, err := descriptor.Format()
		if err != nil {
			return Summary{}, err
		}

		summary.Instructions = append(summary.Instructions, InstructionSummary{
			Mnemonic:    descriptor.Mnemonic,
			Syntax:      descriptor.String(),
			Layout:      format.Name(),
			Opcode:      utils.FormatUintBinary(uint64(descriptor.Class), instructions.OpcodeBits),
			Funct3:      optionalCode(descriptor.Funct3, instructions.Field_Funct3.Width),
			Funct7:      optionalCode(descriptor.Funct7, instructions.Field_Funct7.Width),
			Description: descriptor.Description,
		})
	}

	summary.PseudoInstructions = utils.Map(d.Pseudos.All(), func(p *instructions.Pseudo) PseudoSummary {
		return PseudoSummary{
			Mnemonic:  p.Mnemonic,
			Canonical: p.Canonical,
			Operands:  p.Operands,
		}
	})

	return summary, nil
}
