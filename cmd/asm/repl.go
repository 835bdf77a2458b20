package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const replHelp = `Starts an interactive prompt that encodes each statement as soon as it is
entered. Mnemonics can be completed with TAB and the prompt history is kept
between sessions.

Prompt commands:
  help          Show this help
  fields        Toggle drawing the fields of each machine word
  quit, exit    Leave the prompt`

var replFields bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Encode instructions interactively",
	Long:  replHelp,
	Args:  cobra.NoArgs,
	Run:   runRepl,
}

func init() {
	AsmCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replFields, "fields", false, "Draw the fields of each machine word")
}

// getHistoryFilePath returns the path to the prompt history file
func getHistoryFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rvasm_history"
	}
	return filepath.Join(homeDir, ".rvasm_history")
}

// Returns the mnemonics and prompt commands starting with the given input
func completeMnemonic(single *mc.Assembler, input string) []string {
	if strings.ContainsAny(input, " \t") {
		return nil
	}

	candidates := append(single.Mnemonics(), "exit", "fields", "help", "quit")

	var completions []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, strings.ToLower(input)) {
			completions = append(completions, candidate)
		}
	}
	return completions
}

type replState struct {
	session *session
	single  *mc.Assembler
	fields  bool
}

// Handles one line of input. Returns false if the prompt must be closed
func (s *replState) execute(w io.Writer, input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return true
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(w, replHelp)
		return true
	case "fields":
		s.fields = !s.fields
		colorSuccess.Fprintf(w, "fields: %v\n", s.fields)
		return true
	}

	if assembler.NormalizeStatement(input) == "" {
		return true
	}

	text, err := describeEncoding(s.session, s.single, input, s.fields, false)
	if err != nil {
		fmt.Fprintln(w, s.session.renderer.RenderError(err))
		return true
	}

	fmt.Fprint(w, text)
	return true
}

// Reads statements from a non interactive input, without prompt or history
func runReplPiped(state *replState, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !state.execute(os.Stdout, scanner.Text()) {
			return
		}
	}
}

func runRepl(cmd *cobra.Command, args []string) {
	session := newSession(os.Stdout)
	defer session.Close()

	single, err := mc.NewAssembler(session.config.AssemblerSettings())
	if err != nil {
		fail(ExitConfigError, "%v", err)
	}

	state := &replState{
		session: session,
		single:  single,
		fields:  replFields,
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		runReplPiped(state, os.Stdin)
		return
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(false)
	line.SetCompleter(func(input string) []string {
		return completeMnemonic(single, input)
	})

	historyFile := getHistoryFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	colorSuccess.Printf("RV32I, xlen=%v, strict=%v. Type 'help' for available commands.\n", session.config.XLEN, session.config.Strict)

	for {
		input, err := line.Prompt("(rvasm) ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				break
			}
			colorError.Printf("Error reading input: %v\n", err)
			break
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if !state.execute(os.Stdout, input) {
			break
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
