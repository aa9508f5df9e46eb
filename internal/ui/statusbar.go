package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"staffgrid/internal/notify"
)

// noticeTTL is how long a transient notification stays visible.
const noticeTTL = 3 * time.Second

// StatusBarModel is the context-aware status bar at the bottom. It shows
// the latest transient notification until it expires, and otherwise the
// key hints for the active pane.
type StatusBarModel struct {
	notice     notify.Notice
	hasNotice  bool
	activePane int
	editMode   bool
	width      int
}

// NewStatusBarModel creates a new status bar.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

// SetWidth sets the status bar width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// SetNotice displays a notification.
func (m *StatusBarModel) SetNotice(n notify.Notice) {
	m.notice = n
	m.hasNotice = true
}

// SetActivePane sets which pane is focused (0=table, 1=form).
func (m *StatusBarModel) SetActivePane(pane int) {
	m.activePane = pane
}

// SetEditMode sets whether an inline editor is open.
func (m *StatusBarModel) SetEditMode(editing bool) {
	m.editMode = editing
}

// ClearExpiredNotice drops the notice once its display window has passed.
func (m *StatusBarModel) ClearExpiredNotice() {
	if m.hasNotice && time.Since(m.notice.At) > noticeTTL {
		m.hasNotice = false
	}
}

// View renders the status bar.
func (m StatusBarModel) View() string {
	left := m.contextHints()

	if m.hasNotice {
		var style lipgloss.Style
		switch m.notice.Kind {
		case notify.KindError:
			style = StatusErrorStyle
		default:
			style = StatusSuccessStyle
		}
		text := m.notice.Message
		if m.notice.Title != "" {
			text = m.notice.Title + ": " + text
		}
		left = style.Render(text)
	}

	w := m.width
	if w < 20 {
		w = 20
	}
	gap := w - lipgloss.Width(left) - 2
	if gap < 1 {
		gap = 1
	}
	return StatusBarStyle.Width(w).Render(left + strings.Repeat(" ", gap))
}

func (m StatusBarModel) contextHints() string {
	if m.editMode {
		return "Type to edit | Enter Save | Tab Switch pane"
	}
	switch m.activePane {
	case 0:
		return "Arrows Navigate | s Sort column | Enter Edit cell | Tab Switch pane"
	case 1:
		return "Up/Down Fields | Enter Next / Submit | Tab Switch pane"
	}
	return "Tab Switch pane | Ctrl+C Quit"
}
