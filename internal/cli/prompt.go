package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator input line by line. The same Prompter answers
// permission questions so they share the conversation's input channel.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints prompt and returns the next line without its trailing
// newline. ok is false once input is exhausted.
func (p *Prompter) ReadLine(prompt string) (line string, ok bool) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// Confirm asks question and approves only on "y" or "yes".
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	line, ok := p.ReadLine(question)
	if !ok {
		return false, io.ErrUnexpectedEOF
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// isExit reports whether line, trimmed and in any letter case, is one of
// keywords.
func isExit(line string, keywords ...string) bool {
	line = strings.TrimSpace(line)
	for _, k := range keywords {
		if strings.EqualFold(line, k) {
			return true
		}
	}
	return false
}
