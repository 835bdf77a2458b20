package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	disasmNames bool
	disasmInput string
)

var colorMnemonic = color.New(color.FgYellow, color.Bold)

var disasmCmd = &cobra.Command{
	Use:   "disasm [word...]",
	Short: "Disassemble machine words",
	Long: `Decodes hex machine words back into instructions. Words are taken from the
arguments or, if none is given, read from the input file (or stdin), one or more
per line. Anything after ';' or '//' in an input line is ignored, so the output
of 'asm build' can be disassembled directly.

Words that do not match any instruction are reported as 'unknown'.

Examples:
  rvasm asm disasm 003100b3 0x00a00293
  rvasm asm build program.s | rvasm asm disasm --names`,
	Run: runDisasm,
}

func init() {
	AsmCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().BoolVar(&disasmNames, "names", false, "Only print the mnemonic of each word")
	disasmCmd.Flags().StringVarP(&disasmInput, "input", "i", "", "Input file. If not specified and no words are given, words are read from stdin")
}

// Returns the words found in a line of text, ignoring trailing comments
func scanWords(text string) []string {
	text, _, _ = strings.Cut(text, "//")
	text, _, _ = strings.Cut(text, assembler.CommentDelimiter)
	return strings.Fields(text)
}

// Disassembles every word token, writing one line per word. Returns the number
// of words that could not be decoded
func disassembleTokens(w io.Writer, tokens []string, names bool) (int, error) {
	unknown := 0

	for _, token := range tokens {
		word, err := mc.ParseWord(token)
		if err != nil {
			return unknown, err
		}

		disassembly := mc.Disassemble(word)

		text := disassembly.String()
		if names {
			text = disassembly.Mnemonic()
		}

		if disassembly.Err != nil {
			unknown++
			text = colorError.Sprint(text)
		} else {
			text = colorMnemonic.Sprint(text)
		}

		if names {
			fmt.Fprintln(w, text)
		} else {
			fmt.Fprintf(w, "%08x    %v\n", word, text)
		}
	}

	return unknown, nil
}

func readWordTokens(r io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens = append(tokens, scanWords(scanner.Text())...)
	}

	return tokens, scanner.Err()
}

func runDisasm(cmd *cobra.Command, args []string) {
	session := newSession(os.Stdout)
	defer session.Close()

	tokens := args

	if len(tokens) == 0 {
		var inputArgs []string
		if disasmInput != "" {
			inputArgs = []string{disasmInput}
		}

		input, err := openInput(inputArgs)
		if err != nil {
			fail(ExitConfigError, "%v", err)
		}
		defer input.Close()

		tokens, err = readWordTokens(input)
		if err != nil {
			fail(ExitConfigError, "Error reading input: %v", err)
		}
	}

	unknown, err := disassembleTokens(os.Stdout, tokens, disasmNames)
	if err != nil {
		session.Close()
		fail(ExitAssemblyError, "%v", err)
	}

	if unknown > 0 {
		session.logger.Warn("words not matching any instruction", "count", unknown)
	}
}
