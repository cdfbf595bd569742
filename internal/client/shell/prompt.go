package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// prompter reads answers line by line from the shell input.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints label and returns the trimmed answer. It returns false when
// the input is exhausted.
func (p *prompter) ask(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// askDefault is ask with a prefilled value kept on an empty answer.
func (p *prompter) askDefault(label, def string) (string, bool) {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	v, ok := p.ask(label + ": ")
	if ok && v == "" {
		v = def
	}
	return v, ok
}
