// Package narrator talks to the player: it prints messages, asks questions and keeps
// telling the story until an ending has been reached.
package narrator

import (
	"fmt"
	"io"

	"github.com/zyedidia/generic"

	"wumpus/pkg/engine/input"
	"wumpus/pkg/game/renderer"
)

// maxRuleWidth is the widest separator line ever printed
const maxRuleWidth = 41

// Narrator reads answers from one stream and writes the story to another
type Narrator struct {
	in     *input.LineReader
	out    io.Writer
	width  int
	ending string
}

// New creates a narrator. width is the terminal width used for separator lines.
func New(in io.Reader, out io.Writer, width int) *Narrator {
	return &Narrator{
		in:    input.NewLineReader(in),
		out:   out,
		width: generic.Max(generic.Min(width, maxRuleWidth), 1),
	}
}

// Say prints a message followed by a newline. Markup understood by
// renderer.Markup is expanded.
func (n *Narrator) Say(msg string) {
	fmt.Fprintln(n.out, renderer.Markup(msg))
}

// Rule prints a separator line
func (n *Narrator) Rule() {
	fmt.Fprintln(n.out, renderer.Rule(n.width))
}

// Ask prints question and returns the player's answer
func (n *Narrator) Ask(question string) (string, error) {
	fmt.Fprint(n.out, renderer.Markup(question)+" ")
	return n.in.ReadLine()
}

// TellStory calls turn until the story is finished, then describes the ending.
// An error from turn stops the story immediately.
func (n *Narrator) TellStory(turn func() error) error {
	for !n.Finished() {
		if err := turn(); err != nil {
			return err
		}
	}

	n.Rule()
	n.DescribeEnding()
	return nil
}

// FinishStory records the ending message; the story stops after the current turn
func (n *Narrator) FinishStory(msg string) {
	n.ending = msg
}

// Finished returns true once an ending has been recorded
func (n *Narrator) Finished() bool {
	return n.ending != ""
}

// DescribeEnding prints the ending message
func (n *Narrator) DescribeEnding() {
	n.Say(n.ending)
}
