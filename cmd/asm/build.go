package asm

import (
	"context"
	"fmt"
	"os"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/spf13/cobra"
)

var (
	buildOutputPath string
	buildImagePath  string
)

var buildCmd = &cobra.Command{
	Use:   "build [source-file]",
	Short: "Assemble a source file",
	Long: `Assembles a source file line by line, writing one machine word per instruction
followed by the normalized statement:

  003100b3      // add x1, x2, x3

The source is read from stdin if no file (or '-') is given.

By default assembly stops at the first line with errors (halt_on_error). With
--halt-on-error=false every line is processed and all errors are reported.

Examples:
  rvasm asm build program.s
  rvasm asm build --format binary -o program.txt program.s
  rvasm asm build --image program.bin program.s
  cat program.s | rvasm asm build --strict`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBuild,
}

func init() {
	AsmCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutputPath, "output", "o", "", "Output file. If not specified, machine words are written to stdout")
	buildCmd.Flags().StringVar(&buildImagePath, "image", "", "Also write the assembled words as a little-endian binary image to this file")
}

func runBuild(cmd *cobra.Command, args []string) {
	output, err := createOutput(buildOutputPath)
	if err != nil {
		fail(ExitConfigError, "%v", err)
	}
	defer output.Close()

	session := newSession(output)
	defer session.Close()

	input, err := openInput(args)
	if err != nil {
		fail(ExitConfigError, "%v", err)
	}
	defer input.Close()

	driver, err := assembler.NewDriver(session.config, session.logger)
	if err != nil {
		fail(ExitConfigError, "%v", err)
	}

	results, assemblyErr := driver.Assemble(context.Background(), input)

	lineErrors := assembler.LineErrors(assemblyErr)
	if assemblyErr != nil && len(lineErrors) == 0 {
		fail(ExitConfigError, "Error reading source: %v", assemblyErr)
	}

	if err := session.renderer.Write(output, results); err != nil {
		fail(ExitConfigError, "Error writing output: %v", err)
	}

	if buildImagePath != "" && assemblyErr == nil {
		if err := writeImage(session, driver, results); err != nil {
			fail(ExitConfigError, "%v", err)
		}
	}

	for _, lineError := range lineErrors {
		fmt.Fprintln(os.Stderr, session.renderer.RenderError(lineError))
	}

	if len(lineErrors) > 0 {
		colorWarning.Fprintf(os.Stderr, "%v line(s) with errors\n", len(lineErrors))
		output.Close()
		session.Close()
		os.Exit(ExitAssemblyError)
	}
}

func writeImage(session *session, driver *assembler.Driver, results []assembler.Result) error {
	program := assembler.NewProgram(results)

	image, err := program.Encode(driver.Assembler().Encoder())
	if err != nil {
		return err
	}

	if err := os.WriteFile(buildImagePath, image, 0o644); err != nil {
		return fmt.Errorf("error writing image file: %w", err)
	}

	session.logger.Info("image written", "path", buildImagePath, "instructions", program.Len(), "bytes", len(image))
	return nil
}
