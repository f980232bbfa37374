package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Styled Output
// =============================================================================

// ui writes styled status lines to one writer. Colors are only emitted when
// that writer is a terminal, so redirected output stays plain.
type ui struct {
	w io.Writer

	iconSuccess lipgloss.Style
	iconWarning lipgloss.Style
	iconInfo    lipgloss.Style
	warning     lipgloss.Style
	dim         lipgloss.Style
	key         lipgloss.Style
	value       lipgloss.Style
	fresh       lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:           w,
		iconSuccess: r.NewStyle().Foreground(colorGreen),
		iconWarning: r.NewStyle().Foreground(colorYellow),
		iconInfo:    r.NewStyle().Foreground(colorGray),
		warning:     r.NewStyle().Foreground(colorYellow),
		dim:         r.NewStyle().Foreground(colorDim),
		key:         r.NewStyle().Foreground(colorGray).Width(12),
		value:       r.NewStyle().Foreground(colorWhite),
		fresh:       r.NewStyle().Foreground(colorCyan),
	}
}

// printSuccess prints a success message.
func (u *ui) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, u.iconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func (u *ui) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, u.iconWarning.Render(iconWarning)+" "+u.warning.Render(msg))
}

// printInfo prints an info/status message.
func (u *ui) printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, u.iconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func (u *ui) printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, "  "+u.dim.Render(msg))
}

// printKeyValue prints a labeled value.
func (u *ui) printKeyValue(key, value string) {
	fmt.Fprintln(u.w, u.key.Render(key)+" "+u.value.Render(value))
}

// printState prints a labeled fresh/stale marker.
func (u *ui) printState(key string, fresh bool) {
	state := u.warning.Render("stale")
	if fresh {
		state = u.fresh.Render("fresh")
	}
	fmt.Fprintln(u.w, u.key.Render(key)+" "+state)
}
