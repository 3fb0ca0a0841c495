package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sevigo/review-radar/internal/core"
)

// Console writes notifications as colored terminal lines. It never prompts,
// so every notification resolves to ActionNone.
type Console struct {
	out       io.Writer
	withSound bool

	newStyle  *color.Color
	warnStyle *color.Color
	errStyle  *color.Color
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer, withSound bool) *Console {
	return &Console{
		out:       out,
		withSound: withSound,
		newStyle:  color.New(color.FgGreen, color.Bold),
		warnStyle: color.New(color.FgYellow),
		errStyle:  color.New(color.FgRed),
	}
}

func (c *Console) NewReviews(requests []core.ReviewRequest) core.NotifyAction {
	if len(requests) == 0 {
		return core.ActionNone
	}
	if c.withSound {
		c.PlaySound()
	}

	if len(requests) == 1 {
		c.newStyle.Fprintf(c.out, "New review request: %s\n", requests[0].Title)
		fmt.Fprintf(c.out, "  %s  %s\n", requests[0].Repository, requests[0].URL)
	} else {
		c.newStyle.Fprintf(c.out, "%d new review requests\n", len(requests))
		for _, r := range requests {
			fmt.Fprintf(c.out, "  %s #%d  %s\n", r.Repository, r.Number, r.Title)
		}
	}
	return core.ActionNone
}

func (c *Console) NotConfigured() {
	c.errStyle.Fprintln(c.out, "GitHub token not configured. Set RADAR_GITHUB_TOKEN (or GITHUB_TOKEN) with repo scope.")
}

func (c *Console) APIError(err error) {
	c.errStyle.Fprintf(c.out, "Failed to fetch review requests: %v\n", err)
	c.warnStyle.Fprintln(c.out, "Check your GitHub token and network connection. Showing last known results.")
}

// PlaySound rings the terminal bell. Anything fancier belongs to the host
// platform, not this tool.
func (c *Console) PlaySound() {
	fmt.Fprint(c.out, "\a")
}
