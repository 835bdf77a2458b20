package assembler

import (
	"bufio"
	"io"
	"strings"
)

// Starts a comment that runs until the end of the line
const CommentDelimiter = ";"

// A non-blank source line
type Line struct {
	// 1-based line number in the source, blank lines included
	Number int
	// Lowercase statement, without comments and surrounding whitespace
	Statement string
}

// Strips the comment of a line and normalizes its case. Returns an empty
// string for blank and comment-only lines
func NormalizeStatement(text string) string {
	statement, _, _ := strings.Cut(text, CommentDelimiter)
	return strings.ToLower(strings.TrimSpace(statement))
}

// Reads all the statements of a source. Blank lines are skipped but still
// counted, so line numbers match the source
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []Line
	number := 0

	for scanner.Scan() {
		number++

		if statement := NormalizeStatement(scanner.Text()); statement != "" {
			lines = append(lines, Line{
				Number:    number,
				Statement: statement,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
