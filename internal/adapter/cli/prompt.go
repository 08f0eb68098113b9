package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine(prompt string) string {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// exhausted reports whether the input stream has ended. Menu loops use it to
// stop re-prompting once there is nothing left to read.
func (p *prompter) exhausted() bool {
	return p.eof
}

// readSecret reads without echo when stdin is a terminal, falling back to a
// plain line read when input is piped (tests, scripts).
func (p *prompter) readSecret(prompt string) string {
	fmt.Fprint(p.out, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// readValidated re-prompts until the input passes check or the user gives up
// with an empty line after a failure.
func (p *prompter) readValidated(prompt string, check func(string) error) (string, bool) {
	for {
		value := p.readLine(prompt)
		err := check(value)
		if err == nil {
			return value, true
		}
		if p.exhausted() {
			return "", false
		}
		fmt.Fprintln(p.out, err.Error())
		if retry := p.readLine("Try again? (y/n): "); !strings.EqualFold(retry, "y") {
			return "", false
		}
	}
}

func (p *prompter) readYesNo(prompt string) bool {
	answer := p.readLine(prompt + " (y/n): ")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
