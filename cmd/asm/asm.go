package asm

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/rvasm/pkg/assembler"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Some source lines could not be assembled
	ExitAssemblyError = 1
	// Input, output or configuration failure
	ExitConfigError = 2
)

var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
)

// AsmCmd represents the asm command
var AsmCmd = &cobra.Command{
	Use:   "asm",
	Short: "Assemble and disassemble RV32I instructions",
}

// Everything a command needs to assemble: the validated configuration, the
// logger built from it and the output renderer
type session struct {
	config   assembler.Config
	logger   *slog.Logger
	renderer *assembler.Renderer
	closer   io.Closer
}

func (s *session) Close() {
	s.closer.Close()
}

func fail(code int, format string, args ...any) {
	colorError.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// Loads the configuration and sets up logging and colors. Exits the process
// on configuration errors
func newSession(out *os.File) *session {
	config, err := assembler.LoadConfig(viper.GetViper())
	if err != nil {
		fail(ExitConfigError, "Error loading configuration: %v", err)
	}

	colored := config.Color.Enabled(out)
	color.NoColor = !colored

	logger, closer, err := assembler.NewLogger(config.Log, os.Stderr)
	if err != nil {
		fail(ExitConfigError, "Error initializing logging: %v", err)
	}

	return &session{
		config:   config,
		logger:   logger,
		renderer: assembler.NewRenderer(config.Format, colored),
		closer:   closer,
	}
}

// Opens the input file, or stdin if no path is given or the path is '-'
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}

	return file, nil
}

// Creates the output file, or returns stdout if no path is given
func createOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}

	return file, nil
}
