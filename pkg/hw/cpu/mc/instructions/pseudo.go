package instructions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Convenience mnemonic rewritten into a canonical instruction before encoding
type Pseudo struct {
	Mnemonic  string
	Canonical string
	Operands  []string
}

func (p *Pseudo) String() string {
	return fmt.Sprintf("%v -> %v %v", p.Mnemonic, p.Canonical, strings.Join(p.Operands, ", "))
}

// Set of zero-operand pseudo-instructions
type PseudoTable struct {
	pseudos map[string]*Pseudo
}

// Rewrites a pseudo-instruction into its canonical form. Other mnemonics are
// returned unchanged
func (t *PseudoTable) Expand(mnemonic string, operands []string) (string, []string, error) {
	pseudo, isPseudo := t.pseudos[strings.ToLower(mnemonic)]
	if !isPseudo {
		return mnemonic, operands, nil
	}

	if len(operands) != 0 {
		return "", nil, utils.MakeError(ErrArity, "'%v' takes no arguments, got %v", pseudo.Mnemonic, len(operands))
	}

	return pseudo.Canonical, slices.Clone(pseudo.Operands), nil
}

// Returns true if the mnemonic is a pseudo-instruction
func (t *PseudoTable) Has(mnemonic string) bool {
	_, isPseudo := t.pseudos[strings.ToLower(mnemonic)]
	return isPseudo
}

// Returns all the pseudo-instructions, sorted by mnemonic
func (t *PseudoTable) All() []*Pseudo {
	return utils.Map(utils.SortedKeys(t.pseudos), func(mnemonic string) *Pseudo {
		return t.pseudos[mnemonic]
	})
}

// Initializes a pseudo-instruction table. Panics if an expansion targets an
// instruction missing from the mnemonic table or has the wrong number of operands
func NewPseudoTable(table *MnemonicTable, pseudos []*Pseudo) *PseudoTable {
	t := &PseudoTable{
		pseudos: utils.GenMap(pseudos, func(p *Pseudo) string { return p.Mnemonic }),
	}

	if len(t.pseudos) != len(pseudos) {
		panic("pseudo-instruction registered twice")
	}

	for _, pseudo := range pseudos {
		descriptor, err := table.Lookup(pseudo.Canonical)
		if err != nil {
			panic(fmt.Errorf("pseudo-instruction '%v' expands to an unknown instruction: %w", pseudo.Mnemonic, err))
		}

		if table.Has(pseudo.Mnemonic) {
			panic(fmt.Errorf("pseudo-instruction '%v' shadows a real instruction", pseudo.Mnemonic))
		}

		if len(pseudo.Operands) != descriptor.Operands {
			panic(fmt.Errorf("pseudo-instruction '%v' expands to %v operands, '%v' takes %v", pseudo.Mnemonic, len(pseudo.Operands), descriptor.Mnemonic, descriptor.Operands))
		}
	}

	return t
}

// Pseudo-instructions supported by the assembler
var Pseudos *PseudoTable = NewPseudoTable(Mnemonics, []*Pseudo{
	{Mnemonic: "nop", Canonical: "addi", Operands: []string{"x0", "x0", "0"}},
	{Mnemonic: "ret", Canonical: "jalr", Operands: []string{"x0", "x1", "0"}},
})
