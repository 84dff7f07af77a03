package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"blackjack/internal/game"
)

// Table prints a round to w, one line per event.
type Table struct {
	w io.Writer
}

func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

func (t *Table) Show(p *game.Participant) {
	fmt.Fprintln(t.w, p.String())
}

func (t *Table) Bust(p *game.Participant) {
	fmt.Fprintf(t.w, "%s busted!\n", p.Name)
}

func (t *Table) Outcome(p *game.Participant, o game.Outcome) {
	switch o {
	case game.OutcomeWin:
		fmt.Fprintf(t.w, "%s wins!\n", p.Name)
	case game.OutcomeLose:
		fmt.Fprintf(t.w, "%s loses!\n", p.Name)
	case game.OutcomePush:
		fmt.Fprintf(t.w, "%s pushes!\n", p.Name)
	}
}

// Prompter asks Y/N questions on w and reads answers from r. Anything but
// y or Y is a no, and so is end of input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

func (p *Prompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s (Y/N): ", question)
	if !p.in.Scan() {
		return false
	}

	answer := strings.TrimSpace(p.in.Text())
	return answer == "y" || answer == "Y"
}

func (p *Prompter) Decider() game.Decider {
	return func(pt *game.Participant) bool {
		return p.Confirm(pt.Name + ", do you want a hit?")
	}
}
