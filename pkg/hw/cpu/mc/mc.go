package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/rvasm/pkg/utils"
)

// Contains implementation information about the machine code
type MachineCodeDescriptor struct {
	// Information about machine instructions
	Mnemonics *instructions.MnemonicTable
	// Information about pseudo-instructions
	Pseudos *instructions.PseudoTable
	// Information about the integer register file
	Registers *registers.RegisterFile
	// Instruction word layouts
	Layouts []instructions.Format
}

// Returns the opcode classes using the given layout
func (d *MachineCodeDescriptor) LayoutClasses(layout instructions.Format) []instructions.OpcodeClass {
	return utils.Filter(instructions.OpcodeClasses, func(class instructions.OpcodeClass) bool {
		format, err := class.Format()
		return err == nil && format.Name() == layout.Name()
	})
}

// Dumps the names of the integer registers
func (d *MachineCodeDescriptor) RegistersDocumentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	for _, register := range d.Registers.AllRegisters() {
		builder.WriteString(fmt.Sprintf("%v%-4v %-5v %v\n", leftpad_str, register.Name(), register.ABIName, register.Description))
	}

	return builder.String()
}

// Dumps the instruction word layouts
func (d *MachineCodeDescriptor) LayoutsDocumentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	for _, layout := range d.Layouts {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("%v-type (%v):\n\n", layout.Name(), utils.FormatSlice(d.LayoutClasses(layout), ", ")))

		frame, err := utils.AsciiFrame(utils.Map(layout.Layout(), func(field instructions.LayoutField) utils.AsciiFrameField {
			return utils.AsciiFrameField{
				Name:  field.Name,
				Begin: field.Field.Position,
				Width: field.Field.Width,
			}
		}), instructions.InstructionBits, "bits", utils.AsciiFrameUnitLayout_RightToLeft, leftpad+2)
		if err != nil {
			return "", fmt.Errorf("error generating documentation for %v layout: %w", layout.Name(), err)
		}

		builder.WriteString(frame)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Dumps the documentation of every instruction and pseudo-instruction
func (d *MachineCodeDescriptor) MnemonicsDocumentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	for _, instruction := range d.Mnemonics.All() {
		doc, err := instruction.Documentation(leftpad)
		if err != nil {
			return "", err
		}

		builder.WriteString(doc)
		builder.WriteString("\n")
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Pseudo-instructions:\n\n")

	for _, pseudo := range d.Pseudos.All() {
		builder.WriteString(fmt.Sprintf("%v - %v\n", leftpad_str, pseudo))
	}

	return builder.String(), nil
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total implemented instructions: %v\n", d.Mnemonics.TotalInstructions()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total pseudo-instructions: %v\n", len(d.Pseudos.All())))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total integer registers: %v\n", d.Registers.TotalRegisters()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("instruction encoding length (bits): %v\n", instructions.InstructionBits))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("opcode encoding length (bits): %v\n\n", instructions.OpcodeBits))

	builder.WriteString(leftpad_str)
	builder.WriteString("Registers:\n\n")
	builder.WriteString(d.RegistersDocumentation(leftpad + 2))
	builder.WriteString("\n")

	builder.WriteString(leftpad_str)
	builder.WriteString("Layouts:\n\n")

	layouts, err := d.LayoutsDocumentation(leftpad + 2)
	if err != nil {
		return "", err
	}

	builder.WriteString(layouts)
	builder.WriteString(leftpad_str)
	builder.WriteString("Instructions:\n\n")

	mnemonics, err := d.MnemonicsDocumentation(leftpad + 2)
	if err != nil {
		return "", err
	}

	builder.WriteString(mnemonics)

	return builder.String(), nil
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() (string, error) {
	return d.Documentation(0)
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		Mnemonics: instructions.Mnemonics,
		Pseudos:   instructions.Pseudos,
		Registers: registers.IntegerRegisters,
		Layouts: []instructions.Format{
			instructions.RFormat{},
			instructions.IFormat{},
			instructions.SFormat{},
			instructions.BFormat{},
			instructions.UFormat{},
			instructions.JFormat{},
		},
	}
}

// Contains implementation information about the machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
