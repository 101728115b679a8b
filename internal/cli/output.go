package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"timers/internal/client"
)

const (
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	styleBold  = "\x1b[1m"
	styleReset = "\x1b[0m"
)

func (a *App) printColored(style, format string, args ...any) {
	fmt.Fprintf(a.out, "%s%s%s\n", style, fmt.Sprintf(format, args...), styleReset)
}

func (a *App) fail(format string, args ...any)    { a.printColored(colorRed, format, args...) }
func (a *App) success(format string, args ...any) { a.printColored(colorGreen, format, args...) }
func (a *App) notice(format string, args ...any)  { a.printColored(styleBold, format, args...) }

// FormatDuration renders milliseconds as MM:SS, or H:MM:SS once an hour has
// passed. Every part is zero-padded to two digits.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	s := total % 60
	total /= 60
	m := total % 60
	h := total / 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

type timeColumn func(client.Timer) int64

func progressColumn(t client.Timer) int64 { return t.Progress }

func durationColumn(t client.Timer) int64 {
	if t.Duration == nil {
		return t.Progress
	}
	return *t.Duration
}

func (a *App) printTable(timers []client.Timer, column timeColumn) {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTimer\tTime")
	for _, t := range timers {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Description, FormatDuration(column(t)))
	}
	_ = tw.Flush()
	fmt.Fprintln(a.out, b.String())
}
