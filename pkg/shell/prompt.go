package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"registrar-hq/registrar/pkg/cli"
)

// lineReader reads whole operator input lines.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next input line with surrounding whitespace trimmed.
// It returns io.EOF when the input stream ends.
func (lr *lineReader) ReadLine() (string, error) {
	if !lr.scanner.Scan() {
		if err := lr.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(lr.scanner.Text()), nil
}

// promptLine prints the prompt and reads one trimmed line.
func (sh *Shell) promptLine(prompt string) (string, error) {
	fmt.Fprint(sh.out, prompt)
	return sh.in.ReadLine()
}

// promptInt prints the prompt and parses the reply as an integer. A
// non-integer reply yields a *cli.InputError so callers can re-prompt.
func (sh *Shell) promptInt(prompt string) (int, error) {
	line, err := sh.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, cli.NewInputError(line, "expected a whole number")
	}
	return n, nil
}

// backToMenu asks whether the operator wants to abandon the current
// sub-flow and return to the main menu.
func (sh *Shell) backToMenu() (bool, error) {
	line, err := sh.promptLine("\nEnter 'B' to go back to the main menu or any other key to try again: ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "b"), nil
}

// capitalize uppercases the first rune and lowercases the rest, matching
// how names are stored.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
