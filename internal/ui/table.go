package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staffgrid/internal/grid"
)

// doubleClickWindow is how close together two presses on the same cell
// must land to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

// TableModel renders the grid and translates input events into controller
// operations: header activation sorts, a row press selects, a cell double
// press opens the inline editor.
type TableModel struct {
	ctrl      *grid.Controller
	focused   bool
	width     int
	height    int
	offsetX   int
	offsetY   int
	cursorRow int
	cursorCol int
	scrollOff int

	lastClickAt  time.Time
	lastClickRow int
	lastClickCol int
}

// NewTableModel creates the table pane over a grid controller.
func NewTableModel(ctrl *grid.Controller) TableModel {
	return TableModel{ctrl: ctrl, lastClickRow: -1, lastClickCol: -1}
}

// SetFocused sets focus state.
func (m *TableModel) SetFocused(f bool) {
	m.focused = f
}

// Focused returns focus state.
func (m TableModel) Focused() bool { return m.focused }

// SetSize sets the pane dimensions.
func (m *TableModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetOffset records the pane's screen position for mouse mapping.
func (m *TableModel) SetOffset(x, y int) {
	m.offsetX = x
	m.offsetY = y
}

// Cursor returns the current cell cursor.
func (m TableModel) Cursor() (row, col int) { return m.cursorRow, m.cursorCol }

// Init satisfies tea.Model.
func (m TableModel) Init() tea.Cmd { return nil }

// Update handles key and mouse events for the table pane.
func (m TableModel) Update(msg tea.Msg) (TableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.ctrl.Editing() {
			return m.updateEditMode(msg)
		}
		return m.updateNavMode(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m TableModel) updateEditMode(msg tea.KeyMsg) (TableModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		// Commit path; on rejection the editor stays open.
		m.ctrl.CompleteEditor()
		return m, nil
	}
	return m, m.ctrl.UpdateEditor(msg)
}

func (m TableModel) updateNavMode(msg tea.KeyMsg) (TableModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
			m.ctrl.SelectRow(m.cursorRow)
			m.ensureVisible()
		}
	case "down", "j":
		if m.cursorRow < m.ctrl.RowCount()-1 {
			m.cursorRow++
			m.ctrl.SelectRow(m.cursorRow)
			m.ensureVisible()
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < m.ctrl.Registry().Len()-1 {
			m.cursorCol++
		}
	case "s":
		m.ctrl.SortBy(m.cursorCol)
	case "enter", "e":
		return m, m.openEditorAtCursor()
	case "g":
		m.cursorRow = 0
		m.ctrl.SelectRow(0)
		m.scrollOff = 0
	case "G":
		if n := m.ctrl.RowCount(); n > 0 {
			m.cursorRow = n - 1
			m.ctrl.SelectRow(m.cursorRow)
			m.ensureVisible()
		}
	}
	return m, nil
}

func (m *TableModel) openEditorAtCursor() tea.Cmd {
	if m.ctrl.RowCount() == 0 {
		return nil
	}
	widths := m.colWidths()
	w := 10
	if m.cursorCol < len(widths) {
		w = widths[m.cursorCol]
	}
	return m.ctrl.EditCell(m.cursorRow, m.cursorCol, w)
}

func (m TableModel) updateMouse(msg tea.MouseMsg) (TableModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	row, col, region := m.hitTest(msg.X, msg.Y)
	switch region {
	case hitHeader:
		if m.ctrl.Editing() && !m.ctrl.CompleteEditor() {
			return m, nil
		}
		m.ctrl.SortBy(col)
	case hitCell:
		now := time.Now()
		isDouble := row == m.lastClickRow && col == m.lastClickCol &&
			now.Sub(m.lastClickAt) <= doubleClickWindow
		m.lastClickAt = now
		m.lastClickRow = row
		m.lastClickCol = col

		if m.ctrl.Editing() {
			e := m.ctrl.ActiveEditor()
			if e != nil && e.Row == row && e.Col == col {
				return m, nil
			}
			// Clicking away blurs the active editor.
			if !m.ctrl.CompleteEditor() {
				return m, nil
			}
		}
		m.cursorRow = row
		m.cursorCol = col
		m.ctrl.SelectRow(row)
		if isDouble {
			return m, m.openEditorAtCursor()
		}
	}
	return m, nil
}

type hitRegion int

const (
	hitNone hitRegion = iota
	hitHeader
	hitCell
)

// hitTest maps screen coordinates to a header or body cell. Pane layout:
// border, header, separator, then data rows.
func (m TableModel) hitTest(x, y int) (row, col int, region hitRegion) {
	localX := x - m.offsetX - 1 // left border
	localY := y - m.offsetY

	col = -1
	pos := 0
	for i, w := range m.colWidths() {
		if localX >= pos && localX < pos+w+3 {
			col = i
			break
		}
		pos += w + 3
	}
	if col < 0 {
		return 0, 0, hitNone
	}

	switch {
	case localY == 1:
		return 0, col, hitHeader
	case localY >= 3:
		row = localY - 3 + m.scrollOff
		if row >= m.ctrl.RowCount() {
			return 0, 0, hitNone
		}
		return row, col, hitCell
	}
	return 0, 0, hitNone
}

func (m *TableModel) ensureVisible() {
	vis := m.visibleRowCount()
	if m.cursorRow < m.scrollOff {
		m.scrollOff = m.cursorRow
	} else if m.cursorRow >= m.scrollOff+vis {
		m.scrollOff = m.cursorRow - vis + 1
	}
}

func (m TableModel) visibleRowCount() int {
	// Height minus borders, header and separator.
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

func (m TableModel) colWidths() []int {
	reg := m.ctrl.Registry()
	widths := make([]int, reg.Len())
	for i := range widths {
		col, _ := reg.Column(i)
		w := len(col.Name) + 2 // sort mark
		if w < 10 {
			w = 10
		}
		for r := 0; r < m.ctrl.RowCount(); r++ {
			if l := len(m.ctrl.CellText(r, i)); l > w {
				w = l
			}
		}
		if w > 40 {
			w = 40
		}
		widths[i] = w
	}
	return widths
}

// View renders the table pane.
func (m TableModel) View() string {
	borderStyle := UnfocusedBorder
	if m.focused {
		borderStyle = FocusedBorder
	}

	innerW := m.width - 2
	if innerW < 10 {
		innerW = 10
	}
	innerH := m.height - 2
	if innerH < 3 {
		innerH = 3
	}

	return borderStyle.Width(innerW).Height(innerH).MaxHeight(innerH + 2).Render(m.renderGrid(innerH))
}

func (m TableModel) renderGrid(h int) string {
	widths := m.colWidths()
	reg := m.ctrl.Registry()
	marks := m.ctrl.HeaderMarks()

	var b strings.Builder

	headerParts := make([]string, 0, reg.Len())
	for i := 0; i < reg.Len(); i++ {
		col, _ := reg.Column(i)
		name := col.Name
		style := HeaderStyle
		switch marks[i] {
		case grid.DirAscending:
			name += " ▲"
			style = SortedHeaderStyle
		case grid.DirDescending:
			name += " ▼"
			style = SortedHeaderStyle
		}
		headerParts = append(headerParts, style.Width(widths[i]).Render(truncate(name, widths[i])))
	}
	b.WriteString(strings.Join(headerParts, " | "))
	b.WriteString("\n")

	sepParts := make([]string, 0, reg.Len())
	for i := range widths {
		sepParts = append(sepParts, strings.Repeat("─", widths[i]))
	}
	b.WriteString(DimText.Render(strings.Join(sepParts, "─┼─")))
	b.WriteString("\n")

	visRows := h - 2
	if visRows < 1 {
		visRows = 1
	}
	start := m.scrollOff
	end := start + visRows
	if end > m.ctrl.RowCount() {
		end = m.ctrl.RowCount()
	}

	editor := m.ctrl.ActiveEditor()
	for ri := start; ri < end; ri++ {
		rowParts := make([]string, 0, reg.Len())
		for ci := 0; ci < reg.Len(); ci++ {
			w := widths[ci]

			if editor != nil && editor.Row == ri && editor.Col == ci {
				rowParts = append(rowParts, CellEditing.Width(w).MaxWidth(w).Render(editor.Control().View()))
				continue
			}

			val := truncate(m.ctrl.CellText(ri, ci), w)
			var style lipgloss.Style
			switch {
			case m.focused && ri == m.cursorRow && ci == m.cursorCol:
				style = CellSelected
			case ri == m.ctrl.SelectedRow():
				style = RowSelected
			default:
				style = CellNormal
			}
			rowParts = append(rowParts, style.Width(w).Render(val))
		}
		b.WriteString(strings.Join(rowParts, " | "))
		if ri < end-1 {
			b.WriteString("\n")
		}
	}

	if m.ctrl.RowCount() > visRows {
		b.WriteString("\n" + DimText.Render(fmt.Sprintf(" [%d-%d of %d]", start+1, end, m.ctrl.RowCount())))
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
