package asm

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	encodeFields bool
	encodeDump   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <statement>",
	Short: "Encode a single instruction",
	Long: `Encodes a single statement and prints its machine word. With --fields the
contents of every field of the machine word are drawn too.

Examples:
  rvasm asm encode add x1, x2, x3
  rvasm asm encode --fields "beq x1, x2, 8"
  rvasm asm encode --dump nop
  rvasm asm encode -- jal x0, -4    # '--' stops flag parsing before negative immediates`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEncode,
}

func init() {
	AsmCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeFields, "fields", false, "Draw the fields of the machine word")
	encodeCmd.Flags().BoolVar(&encodeDump, "dump", false, "Dump the internal representation of the encoded instruction")
}

// Returns the text shown for an encoded statement
func describeEncoding(session *session, single *mc.Assembler, statement string, fields, dump bool) (string, error) {
	statement = assembler.NormalizeStatement(statement)

	instruction, err := single.ParseInstruction(statement)
	if err != nil {
		return "", err
	}

	raw, err := single.Encode(instruction)
	if err != nil {
		return "", err
	}

	var builder strings.Builder

	builder.WriteString(session.renderer.Render(assembler.Result{
		Line:        assembler.Line{Number: 1, Statement: statement},
		Instruction: instruction,
		Raw:         raw,
		Word:        raw.Encode(),
	}))
	builder.WriteString("\n")

	if fields {
		diagram, err := raw.PrettyPrint(2)
		if err != nil {
			return "", err
		}

		builder.WriteString("\n")
		builder.WriteString(diagram)
	}

	if dump {
		builder.WriteString("\n")
		builder.WriteString(dumpEncoding(instruction, raw))
	}

	return builder.String(), nil
}

func dumpEncoding(instruction *instructions.Instruction, raw instructions.RawInstruction) string {
	config := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		SortKeys:                true,
	}

	return fmt.Sprintf("word: %v\nfields: %v\ninstruction: %v",
		utils.FormatUintHexPrefixed(uint64(raw.Encode()), 8),
		config.Sdump(raw.Fields),
		config.Sdump(instruction))
}

func runEncode(cmd *cobra.Command, args []string) {
	session := newSession(os.Stdout)
	defer session.Close()

	single, err := mc.NewAssembler(session.config.AssemblerSettings())
	if err != nil {
		fail(ExitConfigError, "%v", err)
	}

	text, err := describeEncoding(session, single, strings.Join(args, " "), encodeFields, encodeDump)
	if err != nil {
		session.logger.Debug("encoding failed", "kind", instructions.KindOf(err).String(), "error", err)
		session.Close()
		fail(ExitAssemblyError, "%v", err)
	}

	fmt.Print(text)
}
