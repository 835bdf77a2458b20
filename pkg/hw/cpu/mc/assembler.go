package mc

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
)

var ErrEmptyStatement = errors.New("empty statement")

// Settings of the single instruction assembler
type AssemblerSettings struct {
	// Register width, bounds register indices and decimal literals
	XLEN int
	// Reject immediates that do not fit the instruction layout instead of truncating them
	Strict bool
}

// Returns the settings of an RV32I assembler that truncates out of range immediates
func DefaultAssemblerSettings() AssemblerSettings {
	return AssemblerSettings{
		XLEN:   instructions.DefaultXLEN,
		Strict: false,
	}
}

// Assembles single statements of the form 'mnemonic [operands, ...]' into machine words
type Assembler struct {
	settings   AssemblerSettings
	translator *instructions.Translator
	encoder    instructions.Encoder
	mnemonics  *instructions.MnemonicTable
	pseudos    *instructions.PseudoTable
}

// Returns an assembler for the builtin RV32I mnemonic and pseudo-instruction tables
func NewAssembler(settings AssemblerSettings) (*Assembler, error) {
	translator, err := instructions.NewTranslator(settings.XLEN)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		settings:   settings,
		translator: translator,
		encoder:    instructions.Encoder{Strict: settings.Strict},
		mnemonics:  instructions.Mnemonics,
		pseudos:    instructions.Pseudos,
	}, nil
}

// Returns the settings the assembler was created with
func (a *Assembler) Settings() AssemblerSettings {
	return a.settings
}

// Splits a statement into lowercase tokens. Operands can be separated by
// whitespace, commas, or both, but every comma must be surrounded by operands
func Tokenize(statement string) ([]string, error) {
	statement = strings.TrimSpace(strings.ToLower(statement))
	if statement == "" {
		return nil, nil
	}

	end := strings.IndexFunc(statement, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if end < 0 {
		return []string{statement}, nil
	}
	if end == 0 {
		return nil, utils.MakeError(instructions.ErrFormat, "'%v' has no mnemonic", statement)
	}

	tokens := []string{statement[:end]}
	rest := strings.TrimSpace(statement[end:])
	if rest == "" {
		return tokens, nil
	}

	for i, slot := range strings.Split(rest, ",") {
		operands := strings.Fields(slot)
		if len(operands) == 0 {
			return nil, utils.MakeError(instructions.ErrFormat, "'%v' has an empty operand at position %v", statement, i+1)
		}

		tokens = append(tokens, operands...)
	}

	return tokens, nil
}

// Parses an instruction of the form 'mnemonic [operands, ...]'
//
// Pseudo-instructions are expanded before looking up the mnemonic, so the
// returned instruction is always a real one. Immediates are not checked against
// the instruction layout yet, see Assemble()
func (a *Assembler) ParseInstruction(statement string) (*instructions.Instruction, error) {
	tokens, err := Tokenize(statement)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, utils.MakeError(ErrEmptyStatement, "'%v' has no mnemonic", strings.TrimSpace(statement))
	}

	mnemonic, operands, err := a.pseudos.Expand(tokens[0], tokens[1:])
	if err != nil {
		return nil, err
	}

	descriptor, err := a.mnemonics.Lookup(mnemonic)
	if err != nil {
		return nil, err
	}

	values, err := a.translator.TranslateOperands(descriptor, operands)
	if err != nil {
		return nil, err
	}

	return instructions.NewInstruction(descriptor, values)
}

// Lays out the operands of a parsed instruction into machine word fields
func (a *Assembler) Encode(instruction *instructions.Instruction) (instructions.RawInstruction, error) {
	return a.encoder.EncodeFields(instruction.Descriptor, instruction.Operands)
}

// Returns the encoder used by the assembler
func (a *Assembler) Encoder() instructions.Encoder {
	return a.encoder
}

// Parses a statement and lays out its operands into machine word fields
func (a *Assembler) AssembleFields(statement string) (instructions.RawInstruction, error) {
	instruction, err := a.ParseInstruction(statement)
	if err != nil {
		return instructions.RawInstruction{}, err
	}

	return a.Encode(instruction)
}

// Returns the machine word of a statement
func (a *Assembler) Assemble(statement string) (uint32, error) {
	raw, err := a.AssembleFields(statement)
	if err != nil {
		return 0, err
	}

	return raw.Encode(), nil
}

// Returns all the mnemonics accepted by the assembler, including pseudo-instructions, sorted
func (a *Assembler) Mnemonics() []string {
	names := append(a.mnemonics.Names(), utils.Map(a.pseudos.All(), func(p *instructions.Pseudo) string {
		return p.Mnemonic
	})...)

	slices.Sort(names)
	return names
}
