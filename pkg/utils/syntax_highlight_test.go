package utils

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestHighlightAsm_PreservesTextWithoutColors(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = previous }()

	for _, code := range []string{
		"add x1, x2, x3",
		"addi x5,x0,10 ; load ten",
		"  nop",
		"lui\tx1, 'b1010",
		"",
	} {
		assert.Equal(t, code, HighlightAsm(code, ";"))
	}
}

func TestHighlightAsm_ColorsTokens(t *testing.T) {
	previous := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = previous }()

	highlighted := HighlightAsm("addi x5, x0, 10 ; ten", ";")

	assert.Contains(t, highlighted, asmMnemonicColor.Sprint("addi"))
	assert.Contains(t, highlighted, asmRegisterColor.Sprint("x5"))
	assert.Contains(t, highlighted, asmNumberColor.Sprint("10"))
	assert.Contains(t, highlighted, asmCommentColor.Sprint("; ten"))
}
