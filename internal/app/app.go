package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"staffgrid/internal/fields"
	"staffgrid/internal/grid"
	"staffgrid/internal/notify"
	"staffgrid/internal/ui"
)

// Pane represents which pane is focused.
type Pane int

const (
	TablePane Pane = iota
	FormPane
)

// tickMsg drives notice expiry.
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Model is the root Bubble Tea model: the grid table, the creation form
// and the status bar, with a single controller coordinating mutations.
type Model struct {
	activePane Pane
	ctrl       *grid.Controller
	notices    *notify.Recorder
	table      ui.TableModel
	form       ui.FormModel
	statusbar  ui.StatusBarModel
	keys       keyMap
	title      string
	width      int
	height     int
}

// NewModel creates the root app model.
func NewModel(ctrl *grid.Controller, notices *notify.Recorder, title string) (Model, error) {
	form, err := ui.NewFormModel(ctrl.Registry())
	if err != nil {
		return Model{}, err
	}
	table := ui.NewTableModel(ctrl)
	table.SetFocused(true)
	statusbar := ui.NewStatusBarModel()
	statusbar.SetActivePane(0)

	return Model{
		activePane: TablePane,
		ctrl:       ctrl,
		notices:    notices,
		table:      table,
		form:       form,
		statusbar:  statusbar,
		keys:       defaultKeyMap(),
		title:      title,
	}, nil
}

// Init starts the notice expiry tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tickMsg:
		m.statusbar.ClearExpiredNotice()
		return m, tickCmd()

	case fields.ChangedMsg:
		// A selection-kind editor control changed; that completes the edit.
		if m.ctrl.Editing() {
			m.ctrl.CompleteEditor()
		}
		m.flushNotices()
		return m, nil

	case ui.SubmitMsg:
		var cmd tea.Cmd
		if m.ctrl.SubmitEmployee(m.form.Fields()) {
			cmd = m.form.Reset()
		}
		m.flushNotices()
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleFocus):
			// Leaving the table blurs any open editor, which runs its
			// commit path first.
			if m.activePane == TablePane && m.ctrl.Editing() {
				if !m.ctrl.CompleteEditor() {
					m.flushNotices()
					return m, nil
				}
			}
			m.cycleFocus()
			m.flushNotices()
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && m.activePane != TablePane && m.inTableArea(msg.Y) {
			m.setActivePane(TablePane)
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.flushNotices()
		m.statusbar.SetEditMode(m.ctrl.Editing())
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.activePane {
	case TablePane:
		m.table, cmd = m.table.Update(msg)
	case FormPane:
		m.form, cmd = m.form.Update(msg)
	}
	m.flushNotices()
	m.statusbar.SetEditMode(m.ctrl.Editing())
	return m, cmd
}

// View renders the full layout.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	topBar := ui.TopBarStyle.Width(m.width - 2).Render(" " + m.title + " ")
	tableView := m.table.View()
	formView := m.form.View()
	statusView := m.statusbar.View()

	return lipgloss.JoinVertical(lipgloss.Left, topBar, tableView, formView, statusView)
}

func (m *Model) flushNotices() {
	for _, n := range m.notices.Flush() {
		m.statusbar.SetNotice(n)
	}
}

func (m *Model) cycleFocus() {
	if m.activePane == TablePane {
		m.setActivePane(FormPane)
	} else {
		m.setActivePane(TablePane)
	}
}

func (m *Model) setActivePane(p Pane) {
	m.activePane = p
	switch p {
	case TablePane:
		m.table.SetFocused(true)
		m.form.SetFocused(false)
		m.statusbar.SetActivePane(0)
	case FormPane:
		m.table.SetFocused(false)
		m.form.SetFocused(true)
		m.statusbar.SetActivePane(1)
	}
	m.statusbar.SetEditMode(false)
}

func (m *Model) tableHeight() int {
	availH := m.height - 2 // top bar + status bar
	if availH < 8 {
		availH = 8
	}
	tableH := availH * 55 / 100
	if tableH < 6 {
		tableH = 6
	}
	return tableH
}

func (m *Model) inTableArea(y int) bool {
	return y >= 1 && y < 1+m.tableHeight()
}

func (m *Model) recalcLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	tableH := m.tableHeight()
	formH := m.height - 2 - tableH
	if formH < 5 {
		formH = 5
	}
	m.table.SetSize(m.width, tableH)
	m.table.SetOffset(0, 1)
	m.form.SetSize(m.width, formH)
	m.statusbar.SetWidth(m.width)
}
