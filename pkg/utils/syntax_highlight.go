// Package utils provides utility functions for the rvasm project.
package utils

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Assembly syntax highlighting colors
var (
	asmMnemonicColor = color.New(color.FgYellow, color.Bold)
	asmRegisterColor = color.New(color.FgGreen)
	asmNumberColor   = color.New(color.FgCyan)
	asmCommentColor  = color.New(color.FgHiBlack)
	asmPunctColor    = color.New(color.FgWhite)
)

var (
	asmRegisterPattern = regexp.MustCompile(`^x[0-9]+$`)
	asmNumberPattern   = regexp.MustCompile(`^(?:'b[01]*|-?[0-9]+)$`)
)

// HighlightAsm colors an assembly statement of the form 'mnemonic op, op ; comment'.
// Whitespace and separators are preserved so the highlighted text lines up with the input.
func HighlightAsm(code string, commentDelimiter string) string {
	if code == "" {
		return ""
	}

	statement, comment, hasComment := strings.Cut(code, commentDelimiter)

	var builder strings.Builder
	mnemonicSeen := false
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}

		word := statement[start:end]
		switch {
		case !mnemonicSeen:
			builder.WriteString(asmMnemonicColor.Sprint(word))
			mnemonicSeen = true
		case asmRegisterPattern.MatchString(strings.ToLower(word)):
			builder.WriteString(asmRegisterColor.Sprint(word))
		case asmNumberPattern.MatchString(strings.ToLower(word)):
			builder.WriteString(asmNumberColor.Sprint(word))
		default:
			builder.WriteString(word)
		}

		start = -1
	}

	for i, r := range statement {
		switch r {
		case ' ', '\t':
			flush(i)
			builder.WriteRune(r)
		case ',':
			flush(i)
			builder.WriteString(asmPunctColor.Sprint(","))
		default:
			if start < 0 {
				start = i
			}
		}
	}

	flush(len(statement))

	if hasComment {
		builder.WriteString(asmCommentColor.Sprint(commentDelimiter + comment))
	}

	return builder.String()
}
