package collect

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter supplies operator answers to the collector. Production code reads
// from stdin; tests script answers.
type Prompter interface {
	// Ask prints label and returns the operator's line, trimmed.
	Ask(label string) (string, error)
	// Confirm prints label and interprets the answer as yes/no.
	// Anything other than "y" or "yes" (case-insensitive) is a decline.
	Confirm(label string) (bool, error)
}

// LinePrompter implements Prompter over a line-oriented reader and writer.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter returns a Prompter reading answers from in and writing
// prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label+" ")
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label + " (y/n):")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
