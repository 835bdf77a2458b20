package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/rvasm/pkg/utils"
)

// Constains information about all implemented instructions, indexed by mnemonic
type MnemonicTable struct {
	descriptors map[string]*Descriptor
	byClass     map[OpcodeClass][]*Descriptor
}

// Returns the descriptor of the given mnemonic
func (t *MnemonicTable) Lookup(mnemonic string) (*Descriptor, error) {
	if descriptor, hasDescriptor := t.descriptors[strings.ToLower(mnemonic)]; hasDescriptor {
		return descriptor, nil
	}

	return nil, utils.MakeError(ErrUnknownMnemonic, "'%v'", mnemonic)
}

// Returns true if the mnemonic is in the table
func (t *MnemonicTable) Has(mnemonic string) bool {
	_, hasDescriptor := t.descriptors[strings.ToLower(mnemonic)]
	return hasDescriptor
}

// Returns the names of all the implemented instructions, sorted
func (t *MnemonicTable) Names() []string {
	return utils.SortedKeys(t.descriptors)
}

// Returns all the implemented instructions, sorted by mnemonic
func (t *MnemonicTable) All() []*Descriptor {
	return utils.Map(t.Names(), func(mnemonic string) *Descriptor {
		return t.descriptors[mnemonic]
	})
}

// Returns the number of implemented instructions
func (t *MnemonicTable) TotalInstructions() int {
	return len(t.descriptors)
}

// Returns the descriptor matching the opcode and function codes found in a machine word
func (t *MnemonicTable) Match(class OpcodeClass, funct3, funct7 uint32) (*Descriptor, error) {
	for _, descriptor := range t.byClass[class] {
		if descriptor.Funct3 != nil && *descriptor.Funct3 != funct3 {
			continue
		}

		if descriptor.Funct7 != nil && *descriptor.Funct7 != funct7 {
			continue
		}

		return descriptor, nil
	}

	return nil, utils.MakeError(ErrUnknownEncoding, "opcode %v, funct3 %v, funct7 %v",
		utils.FormatUintBinary(uint64(class), OpcodeBits),
		utils.FormatUintBinary(uint64(funct3), Field_Funct3.Width),
		utils.FormatUintBinary(uint64(funct7), Field_Funct7.Width))
}

// Initializes a mnemonic table with the given instructions. Panics if the
// instructions are not consistent with their layouts or if a mnemonic is repeated,
// since that is a bug in the table and not an user error
func NewMnemonicTable(descriptors []*Descriptor) *MnemonicTable {
	t := &MnemonicTable{
		descriptors: make(map[string]*Descriptor, len(descriptors)),
		byClass:     make(map[OpcodeClass][]*Descriptor),
	}

	for _, descriptor := range descriptors {
		if err := descriptor.Validate(); err != nil {
			panic(err)
		}

		if _, repeated := t.descriptors[descriptor.Mnemonic]; repeated {
			panic(fmt.Errorf("mnemonic '%v' registered twice in mnemonic table", descriptor.Mnemonic))
		}

		if descriptor.Mnemonic != strings.ToLower(descriptor.Mnemonic) {
			panic(fmt.Errorf("mnemonic '%v' must be lowercase", descriptor.Mnemonic))
		}

		for _, other := range t.byClass[descriptor.Class] {
			if ambiguous(descriptor, other) {
				panic(fmt.Errorf("instructions '%v' and '%v' have the same encoding", descriptor.Mnemonic, other.Mnemonic))
			}
		}

		t.descriptors[descriptor.Mnemonic] = descriptor
		t.byClass[descriptor.Class] = append(t.byClass[descriptor.Class], descriptor)
	}

	return t
}

// Returns true if a word could match both descriptors
func ambiguous(a, b *Descriptor) bool {
	overlaps := func(x, y *uint32) bool {
		return x == nil || y == nil || *x == *y
	}

	return a.Class == b.Class && overlaps(a.Funct3, b.Funct3) && overlaps(a.Funct7, b.Funct7)
}
