package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// GetSimpleText prints prompt to w and reads one line from reader. The
// trailing newline is trimmed; a partial line before EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// passwordReader returns a function that reads a password without echo when
// in is a terminal, and falls back to reading a plain line otherwise.
func passwordReader(in io.Reader, reader *bufio.Reader) func() ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return func() ([]byte, error) {
			return term.ReadPassword(int(f.Fd()))
		}
	}
	return func() ([]byte, error) {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}
}

// GetPassword prints a prompt to w and reads a password through read. A
// newline is printed afterwards because the terminal swallowed the user's.
func GetPassword(w io.Writer, read func() ([]byte, error)) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}
	pw, err := read()
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
