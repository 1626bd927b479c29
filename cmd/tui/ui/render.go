package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/spliminal/internal/tui/model"
	"github.com/VoxDroid/spliminal/internal/tui/sanitize"
)

const cursor = "█"

// palette holds the colors for one theme.
type palette struct {
	frame, dim, accent, title string
}

func (m *TuiModel) palette() palette {
	if m.opts.HighContrast {
		return palette{frame: "#ffff00", dim: "#444444", accent: "#ffffff", title: "#ffff00"}
	}
	return palette{frame: "#0ea5a4", dim: "#334155", accent: m.opts.Accent, title: "#ffffff"}
}

// geometry is the split of the window into panes, borders included.
type geometry struct {
	innerW, innerH int
	inputW         int
	outputW        int
	mainH          int
	errH           int
}

// layout splits the area inside the outer frame: the main region takes 5/6
// of the height and is halved between input and output; the error pane gets
// the rest at full width.
func (m *TuiModel) layout() geometry {
	g := geometry{innerW: max(m.width-2, 0), innerH: max(m.height-2, 0)}
	g.mainH = g.innerH * 5 / 6
	g.errH = g.innerH - g.mainH
	g.inputW = g.innerW / 2
	g.outputW = g.innerW - g.inputW
	return g
}

// layoutPanes sizes each viewport to the inside of its pane border.
func (m *TuiModel) layoutPanes() {
	g := m.layout()
	ensureViewportSize(m.pane(model.FocusInput), g.inputW-2, g.mainH-2)
	ensureViewportSize(m.pane(model.FocusOutput), g.outputW-2, g.mainH-2)
	ensureViewportSize(m.pane(model.FocusError), g.innerW-2, g.errH-2)
	m.help.Width = max(g.innerW-4, 0)
}

// paneContent renders the history of f as numbered, sanitized lines cut to
// width. The focused input pane shows a cursor after the edit buffer.
func (m *TuiModel) paneContent(f model.Focus, width int) string {
	if width <= 0 {
		return ""
	}
	var lines []string
	for line := range m.session.History(f).Lines() {
		lines = append(lines, runewidth.Truncate(sanitize.Line(line), width, "…"))
	}
	if f == model.FocusInput && m.session.Focus() == model.FocusInput {
		if len(lines) == 0 {
			lines = append(lines, "")
		}
		lines[len(lines)-1] = runewidth.Truncate(lines[len(lines)-1], width-1, "…") + cursor
	}
	return strings.Join(lines, "\n")
}

func (m *TuiModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	g := m.layout()
	focus := m.session.Focus()

	input := m.renderPane(model.FocusInput, "input", lipgloss.Left, g.inputW, g.mainH, focus)
	output := m.renderPane(model.FocusOutput, m.outputTitle(), lipgloss.Right, g.outputW, g.mainH, focus)
	errPane := m.renderPane(model.FocusError, "error", lipgloss.Center, g.innerW, g.errH, focus)

	body := joinVertical(lipgloss.JoinHorizontal(lipgloss.Top, input, output), errPane)
	return m.renderFrame(body, g)
}

// outputTitle carries the running indicator while jobs are pending.
func (m *TuiModel) outputTitle() string {
	n := len(m.session.Pending())
	if n == 0 {
		return "output"
	}
	return fmt.Sprintf("output %s %d running", strings.TrimSpace(m.spin.View()), n)
}

func (m *TuiModel) renderPane(f model.Focus, title string, align lipgloss.Position, w, h int, focus model.Focus) string {
	if w < 2 || h < 2 {
		return blank(w, h)
	}
	p := m.palette()
	border, color := lipgloss.RoundedBorder(), p.dim
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim))
	if f == focus {
		border, color = lipgloss.ThickBorder(), p.accent
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent))
	}
	edge := lipgloss.NewStyle().Foreground(lipgloss.Color(color))

	top := borderLine(border.TopLeft, border.Top, border.TopRight, titleStyle.Render(label(title, w)), align, w, edge)
	rest := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(lipgloss.Color(color)).
		Width(w - 2).
		Height(h - 2).
		Render(m.pane(f).View())
	return top + "\n" + rest
}

// renderFrame wraps body in the outer frame: the application title centered
// in the top edge and key hints in the bottom edge.
func (m *TuiModel) renderFrame(body string, g geometry) string {
	p := m.palette()
	border := lipgloss.ThickBorder()
	edge := lipgloss.NewStyle().Foreground(lipgloss.Color(p.frame))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.title))

	top := borderLine(border.TopLeft, border.Top, border.TopRight, titleStyle.Render(label(m.opts.Title, m.width)), lipgloss.Center, m.width, edge)

	hints := m.help.ShortHelpView(m.keys.shortHelp(m.session.Focus(), len(m.session.Pending()) > 0))
	if hints != "" {
		hints = " " + hints + " "
	}
	bottom := borderLine(border.BottomLeft, border.Bottom, border.BottomRight, hints, lipgloss.Left, m.width, edge)

	parts := []string{top}
	if g.innerH > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Border(border, false, true, false, true).
			BorderForeground(lipgloss.Color(p.frame)).
			Render(body))
	}
	if m.height > 1 {
		parts = append(parts, bottom)
	}
	return strings.Join(parts, "\n")
}

// label pads a title with spaces and truncates it to fit a border of
// width w.
func label(title string, w int) string {
	room := w - 6
	if title == "" || room < 1 {
		return ""
	}
	return " " + runewidth.Truncate(title, room, "…") + " "
}

// borderLine draws one horizontal edge of width w with text embedded at
// align. Text that does not fit is left out.
func borderLine(left, fill, right, text string, align lipgloss.Position, w int, edge lipgloss.Style) string {
	if w < 2 {
		return edge.Render(strings.Repeat(fill, max(w, 0)))
	}
	inner := w - 2
	tw := lipgloss.Width(text)
	if tw > inner-2 {
		text, tw = "", 0
	}
	free := inner - tw
	var before int
	switch align {
	case lipgloss.Left:
		before = min(1, free)
	case lipgloss.Right:
		before = max(free-1, 0)
	default:
		before = free / 2
	}
	return edge.Render(left+strings.Repeat(fill, before)) + text + edge.Render(strings.Repeat(fill, free-before)+right)
}

// blank fills a w by h area with spaces.
func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// joinVertical stacks blocks, skipping empty ones.
func joinVertical(blocks ...string) string {
	var nonEmpty []string
	for _, b := range blocks {
		if b != "" {
			nonEmpty = append(nonEmpty, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, nonEmpty...)
}
