package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

// Prompter asks the operator for values on an interactive terminal.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// Ask prints the label and returns the entered line. An empty answer keeps
// the current value.
func (p *Prompter) Ask(label string, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(p.writer, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(p.writer, "%s: ", label)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errors.WithStack(port.ErrCanceled)
		}
		return "", errors.WithStack(err)
	}

	line = strings.TrimRight(line, "\r\n")

	switch strings.TrimSpace(line) {
	case "":
		return current, nil
	case "-":
		return "", nil
	default:
		return strings.TrimSpace(line), nil
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label+" (y/N)", "")
	if err != nil {
		return false, errors.WithStack(err)
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.writer, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.writer, format, a...)
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

func NewStdPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stderr)
}
