package ui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/history-timeline/internal/assets"
	"github.com/atomicstack/history-timeline/internal/format/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	railDot       = "○"
	railDotActive = "●"
	railLine      = "│"
	footerHint    = "←/→ age  ↑/↓ event  pgup/pgdn scroll  / find  q quit"
)

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderTabs(), "")
	lines = append(lines, m.renderBody()...)
	lines = append(lines, m.renderBottom())
	// Terminals shorter than the chrome keep the top rows.
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for i, line := range lines {
		lines[i] = clipLine(line, m.width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabs() string {
	if !m.viewport.TabsVisible() {
		return ""
	}
	current := m.timeline.Category()
	ranges := m.tabRanges()
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		style := styles.Tab
		if r.category == current {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(tabText(r.category)))
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderBody() []string {
	body := m.bodyHeight()
	lines := make([]string, body)
	if m.timeline.Len() == 0 {
		lines[body/2] = m.padRail("") + styles.RailLine.Render(railLine) + " " + styles.Info.Render("(no events)")
		return lines
	}
	rail := m.railLabels()
	active := m.timeline.ActiveIndex()
	textWidth := m.textWidth()
	for row := range lines {
		var b strings.Builder
		b.WriteString(m.padRail(rail[row]))
		b.WriteString(styles.RailLine.Render(railLine))
		b.WriteString(" ")
		section := m.viewport.SectionAtRow(row)
		text, band := "", strings.Repeat(" ", m.swatchWidth())
		if section >= 0 {
			top, _ := m.viewport.SectionTop(section)
			text = m.sectionLine(section, m.viewport.Offset()+row-top, section == active)
			band = m.swatchBand(section)
		}
		b.WriteString(padRight(text, textWidth))
		b.WriteString(" ")
		b.WriteString(band)
		lines[row] = b.String()
	}
	return lines
}

// sectionLine renders line n of a section, with the content centred
// vertically inside the section's rows.
func (m *Model) sectionLine(section, n int, active bool) string {
	if section < 0 || section >= len(m.sections) {
		return ""
	}
	layout := m.sections[section]
	height, _ := m.viewport.SectionHeight(section)
	n -= (height - layout.contentRows()) / 2
	if n < 0 {
		return ""
	}
	if n < len(layout.title) {
		if active {
			return styles.ActiveTitle.Render(layout.title[n])
		}
		return styles.Title.Render(layout.title[n])
	}
	n -= len(layout.title)
	if n == 0 {
		return ""
	}
	n--
	if n < len(layout.description) {
		if active {
			return styles.Description.Render(layout.description[n])
		}
		return styles.Faint.Render(layout.description[n])
	}
	n -= len(layout.description)
	if n == 0 && layout.hasImage {
		return styles.Caption.Render(m.caption(section))
	}
	return ""
}

func (m *Model) caption(section int) string {
	asset, ok := m.swatches[section]
	if !ok {
		return ""
	}
	if asset.Remote {
		return "image: " + asset.URI
	}
	return fmt.Sprintf("image: %s (%dx%d)", filepath.Base(asset.Path), asset.Width, asset.Height)
}

// swatchBand paints the section's palette as background cells.
func (m *Model) swatchBand(section int) string {
	width := m.swatchWidth()
	asset, ok := m.swatches[section]
	if !ok || len(asset.Palette) == 0 {
		return strings.Repeat(" ", width)
	}
	cell := width / len(asset.Palette)
	if cell < 1 {
		cell = 1
	}
	var b strings.Builder
	for _, c := range asset.Palette {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(assets.Hex(c))).Render(strings.Repeat(" ", cell)))
	}
	return b.String()
}

// railLabels renders the dots (and, in the wide layout, the years) of the
// events near the cursor, keyed by body row.
func (m *Model) railLabels() map[int]string {
	placed := m.railRows()
	out := make(map[int]string, len(placed))
	if len(placed) == 0 {
		return out
	}
	active := m.timeline.ActiveIndex()
	rows := make([]int, 0, len(placed))
	for row := range placed {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	cells := make([][]string, len(rows))
	for i, row := range rows {
		index := placed[row]
		dot := styles.RailDot.Render(railDot)
		if index == active {
			dot = styles.RailActive.Render(railDotActive)
		}
		if m.viewport.Compact() {
			cells[i] = []string{dot}
			continue
		}
		event, _ := m.timeline.Event(index)
		cells[i] = []string{event.YearLabel(), dot}
	}
	formatted := table.FormatGap(cells, []table.Alignment{table.AlignRight, table.AlignLeft}, 1)
	for i, row := range rows {
		out[row] = formatted[i]
	}
	return out
}

func (m *Model) padRail(label string) string {
	width := m.railWidth() - 1
	label = clipLine(label, width)
	if pad := width - lipgloss.Width(label); pad > 0 {
		label = strings.Repeat(" ", pad) + label
	}
	return label + " "
}

func (m *Model) renderBottom() string {
	if m.searching {
		return m.search.View()
	}
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	if m.infoMsg != "" {
		return styles.Info.Render(m.infoMsg)
	}
	if m.showFooter {
		return styles.Footer.Render(footerHint)
	}
	position := 0
	if m.timeline.Len() > 0 {
		position = m.timeline.ActiveIndex() + 1
	}
	return styles.Status.Render(fmt.Sprintf("%s  %d/%d", m.timeline.Category().Label(), position, m.timeline.Len()))
}

func padRight(text string, width int) string {
	text = clipLine(text, width)
	if pad := width - lipgloss.Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

func clipLine(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.String(text, uint(width))
}
