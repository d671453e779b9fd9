package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errPasswordMismatch = errors.New("passwords do not match")

// readSecret prompts for a secret on stderr. On a terminal input is not
// echoed; otherwise one line is read from a.in so that secrets can be piped.
func (a *App) readSecret(label string) (string, error) {
	fmt.Fprint(a.errOut, label+": ")

	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.errOut)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		return string(secret), nil
	}

	if a.lines == nil {
		a.lines = bufio.NewReader(a.in)
	}
	line, err := a.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readNewSecret asks for a secret twice and checks both entries match.
func (a *App) readNewSecret(label string) (string, error) {
	first, err := a.prompt(label)
	if err != nil {
		return "", err
	}
	second, err := a.prompt("Repeat " + strings.ToLower(label))
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}
