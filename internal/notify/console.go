package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Console prints a one-line summary of each capture.
type Console struct {
	out io.Writer
}

// NewConsole creates a console sender writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Send(_ context.Context, event *Event) error {
	if !event.Success {
		_, err := fmt.Fprintf(c.out, "%s %s\n", errorStyle.Render("capture failed:"), event.Error)
		return err
	}

	_, err := fmt.Fprintf(c.out, "%s %s  %s (%d chars, %d total)\n",
		timeStyle.Render(event.Entry.Timestamp.Format("15:04:05")),
		categoryStyle.Render(fmt.Sprintf("[%s]", event.Entry.Category)),
		event.Entry.Preview(60),
		event.Entry.Chars,
		event.Total,
	)

	return err
}
