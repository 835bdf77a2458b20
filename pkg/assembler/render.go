package assembler

import (
	"io"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Separates the machine word from the source annotation
const AnnotationSeparator = "      // "

var (
	colorWord       = color.New(color.FgMagenta)
	colorAnnotation = color.New(color.FgHiBlack)
	colorError      = color.New(color.FgRed, color.Bold)
)

// Returns true if output written to the given file should be colored
func (m ColorMode) Enabled(file *os.File) bool {
	switch m {
	case ColorMode_Always:
		return true
	case ColorMode_Never:
		return false
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// Formats machine words and source annotations
type Renderer struct {
	format OutputFormat
	color  bool
}

func NewRenderer(format OutputFormat, colored bool) *Renderer {
	return &Renderer{
		format: format,
		color:  colored,
	}
}

// Returns the word as 8 lowercase hex digits or 32 binary digits
func (r *Renderer) FormatWord(word uint32) string {
	if r.format == OutputFormat_Binary {
		return utils.FormatUintBinary(uint64(word), instructions.InstructionBits)
	}

	return utils.FormatUintHex(uint64(word), instructions.InstructionBits/4)
}

// Returns the output line of an assembled source line
func (r *Renderer) Render(result Result) string {
	if !r.color {
		return r.FormatWord(result.Word) + AnnotationSeparator + result.Line.Statement
	}

	return colorWord.Sprint(r.FormatWord(result.Word)) +
		colorAnnotation.Sprint(AnnotationSeparator) +
		utils.HighlightAsm(result.Line.Statement, CommentDelimiter)
}

// Returns the text of an error, colored if enabled
func (r *Renderer) RenderError(err error) string {
	if !r.color {
		return err.Error()
	}

	return colorError.Sprint(err.Error())
}

// Writes the output line of every successfully assembled line
func (r *Renderer) Write(w io.Writer, results []Result) error {
	var builder strings.Builder

	for _, result := range results {
		if result.Err != nil {
			continue
		}

		builder.WriteString(r.Render(result))
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
