package instructions

// Decodes a machine word using the canonical field extraction of its layout
func Decode(word uint32) (*Instruction, error) {
	return Mnemonics.Decode(word)
}

// Decodes a machine word into an instruction of the table
func (t *MnemonicTable) Decode(word uint32) (*Instruction, error) {
	raw, err := t.DecodeFields(word)
	if err != nil {
		return nil, err
	}

	return raw.Decode()
}

// Identifies the instruction of a machine word, leaving its operands undecoded
func (t *MnemonicTable) DecodeFields(word uint32) (RawInstruction, error) {
	fields, class := SplitFields(word)

	descriptor, err := t.Match(class, fields.Funct3, fields.Funct7)
	if err != nil {
		return RawInstruction{}, err
	}

	return RawInstruction{
		Descriptor: descriptor,
		Fields:     fields,
	}, nil
}
