package assembler

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc"
	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/sourcegraph/conc/iter"
)

// Result of assembling one source line
type Result struct {
	Line        Line
	Instruction *instructions.Instruction
	Raw         instructions.RawInstruction
	Word        uint32
	// Not nil if the line could not be assembled. Always a *LineError
	Err error
}

// Assembles sources line by line. Lines are independent, so all the lines of a
// source are encoded concurrently and reported in source order
type Driver struct {
	config    Config
	assembler *mc.Assembler
	logger    *slog.Logger
}

// Returns a driver for the given configuration. A nil logger discards all records
func NewDriver(config Config, logger *slog.Logger) (*Driver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	assembler, err := mc.NewAssembler(config.AssemblerSettings())
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Driver{
		config:    config,
		assembler: assembler,
		logger:    logger,
	}, nil
}

// Returns the single instruction assembler used by the driver
func (d *Driver) Assembler() *mc.Assembler {
	return d.assembler
}

func (d *Driver) assembleLine(line *Line) Result {
	result := Result{Line: *line}

	instruction, err := d.assembler.ParseInstruction(line.Statement)
	if err == nil {
		result.Instruction = instruction
		result.Raw, err = d.assembler.Encode(instruction)
	}

	if err != nil {
		result.Err = &LineError{
			Line:   line.Number,
			Source: line.Statement,
			Err:    err,
		}
		return result
	}

	result.Word = result.Raw.Encode()
	return result
}

// Assembles a set of source lines
//
// If the driver halts on errors, the results of the lines before the first
// failing one are returned along with its error. Otherwise the results of all the
// lines are returned, and the error joins the errors of all the failing lines
func (d *Driver) AssembleLines(ctx context.Context, lines []Line) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := iter.Map(lines, d.assembleLine)

	var errs []error

	for i, result := range results {
		if result.Err == nil {
			d.logger.DebugContext(ctx, "encoded line",
				slog.Int("line", result.Line.Number),
				slog.String("statement", result.Line.Statement),
				slog.String("word", utils.FormatUintHexPrefixed(uint64(result.Word), 8)))
			continue
		}

		if d.config.HaltOnError {
			d.logger.ErrorContext(ctx, "assembly halted",
				slog.Int("line", result.Line.Number),
				slog.String("kind", instructions.KindOf(result.Err).String()),
				slog.Any("error", result.Err))
			return results[:i], result.Err
		}

		d.logger.WarnContext(ctx, "skipping line",
			slog.Int("line", result.Line.Number),
			slog.String("kind", instructions.KindOf(result.Err).String()),
			slog.Any("error", result.Err))
		errs = append(errs, result.Err)
	}

	d.logger.InfoContext(ctx, "assembly finished",
		slog.Int("lines", len(lines)),
		slog.Int("errors", len(errs)))

	return results, errors.Join(errs...)
}

// Reads and assembles a whole source
func (d *Driver) Assemble(ctx context.Context, source io.Reader) ([]Result, error) {
	lines, err := ReadLines(source)
	if err != nil {
		return nil, err
	}

	return d.AssembleLines(ctx, lines)
}

// Returns the program made by the successfully assembled lines
func NewProgram(results []Result) *mc.Program {
	program := mc.NewProgram()

	for _, result := range results {
		if result.Err == nil {
			program.Add(result.Instruction)
		}
	}

	return program
}

// Returns all the line errors found in an error returned by the driver
func LineErrors(err error) []*LineError {
	if err == nil {
		return nil
	}

	if joined, isJoined := err.(interface{ Unwrap() []error }); isJoined {
		var lineErrors []*LineError
		for _, inner := range joined.Unwrap() {
			lineErrors = append(lineErrors, LineErrors(inner)...)
		}
		return lineErrors
	}

	var lineError *LineError
	if errors.As(err, &lineError) {
		return []*LineError{lineError}
	}

	return nil
}
