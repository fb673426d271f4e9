package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/dirpick/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	panelWidthPercent  = 60
	panelHeightPercent = 50
	minPanelWidth      = 32
	minPanelHeight     = 8
	fallbackWidth      = 80
	fallbackHeight     = 24

	highlightSymbol = ">> "
	normalTitle     = "NORMAL (q to quit, / to search)"
	editingTitle    = "SEARCH (esc to exit)"
)

// View implements tea.Model. A stopped picker renders nothing.
func (m *Model) View() string {
	if !m.selection.Running() {
		return ""
	}
	width, height := m.screenSize()
	panelW, panelH := panelSize(width, height)
	panel := m.renderPanel(panelW, panelH)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m *Model) screenSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	return width, height
}

func panelSize(width, height int) (int, int) {
	return scaled(width, panelWidthPercent, minPanelWidth), scaled(height, panelHeightPercent, minPanelHeight)
}

// scaled takes percent of total, raised to floor but never beyond total.
func scaled(total, percent, floor int) int {
	size := total * percent / 100
	if size < floor {
		size = floor
	}
	if size > total {
		size = total
	}
	if size < 3 {
		size = 3
	}
	return size
}

func (m *Model) footerVisible(panelHeight int) bool {
	return m.showFooter && panelHeight-2 >= 3
}

// maxVisibleItems is the number of item rows inside the panel.
func (m *Model) maxVisibleItems() int {
	_, panelH := panelSize(m.screenSize())
	rows := panelH - 2 - 1 // borders and filter prompt
	if m.footerVisible(panelH) {
		rows--
	}
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Model) modeStyles() (border, title *lipgloss.Style) {
	if m.selection.Mode == state.ModeEditing {
		return styles.EditingBorder, styles.EditingTitle
	}
	return styles.NormalBorder, styles.NormalTitle
}

func (m *Model) panelTitle() string {
	if m.selection.Mode == state.ModeEditing {
		return editingTitle
	}
	return normalTitle
}

func (m *Model) countLabel() string {
	sel := m.selection
	return fmt.Sprintf(" %d/%d ", sel.Cursor+1, len(sel.Items))
}

// renderPanel builds the bordered picker box with exactly height rows and
// width columns. The mode title is embedded in the top border.
func (m *Model) renderPanel(width, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	borderStyle, titleStyle := m.modeStyles()

	// ╭─ title ────────── count ─╮
	titleSeg := " " + m.panelTitle() + " "
	countSeg := m.countLabel()
	dashes := width - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(countSeg)
	if dashes < 0 {
		countSeg = ""
		dashes = width - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncateText(titleSeg, width-4)
		dashes = width - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	top := paint(borderStyle, tlc+hz) +
		paint(titleStyle, titleSeg) +
		paint(borderStyle, strings.Repeat(hz, dashes)) +
		paint(borderStyle, countSeg) +
		paint(borderStyle, hz+trc)
	bottom := paint(borderStyle, blc+strings.Repeat(hz, innerW)+brc)

	body := m.panelBody(innerW, innerH, height)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range body {
		rows = append(rows, paint(borderStyle, vt)+fitRow(line, innerW)+paint(borderStyle, vt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// panelBody returns exactly innerH unpadded rows.
func (m *Model) panelBody(innerW, innerH, panelH int) []string {
	sel := m.selection
	footer := ""
	if m.footerVisible(panelH) {
		m.help.Width = innerW
		footer = m.help.ShortHelpView(m.keys.helpFor(sel.Mode))
	}
	itemRows := innerH - 1
	if footer != "" {
		itemRows--
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, m.filterPrompt())
	if len(sel.Items) == 0 {
		msg := "(no folders)"
		if sel.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", sel.Filter)
		}
		lines = append(lines, paint(styles.Info, truncateText(msg, innerW)))
	} else {
		visible, start := sel.Visible(itemRows)
		for i, name := range visible {
			lines = append(lines, itemLine(name, start+i == sel.Cursor, innerW))
		}
	}
	contentRows := innerH
	if footer != "" {
		contentRows--
	}
	if len(lines) > contentRows {
		lines = lines[:contentRows]
	}
	for len(lines) < contentRows {
		lines = append(lines, "")
	}
	if footer != "" {
		lines = append(lines, footer)
	}
	return lines
}

func itemLine(name string, selected bool, width int) string {
	prefix := strings.Repeat(" ", len(highlightSymbol))
	style := styles.Item
	if selected {
		prefix = highlightSymbol
		style = styles.SelectedItem
	}
	text := truncateText(prefix+name, width)
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return paint(style, text)
}

// fitRow truncates or pads an already styled row to width cells.
func fitRow(content string, width int) string {
	w := lipgloss.Width(content)
	if w > width && width > 1 {
		content = truncate.StringWithTail(content, uint(width-1), "…")
		w = lipgloss.Width(content)
	}
	if w < width {
		content += strings.Repeat(" ", width-w)
	}
	return content
}

func paint(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
