package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jthornhill/wayfare/internal/cli/formatter"
	"github.com/jthornhill/wayfare/internal/domain"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse activities interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newBrowseModel(app)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type browseModel struct {
	app        *App
	activities []*domain.Activity
	visible    []*domain.Activity

	table     table.Model
	search    textinput.Model
	searching bool
	detail    *domain.Activity
}

func newBrowseModel(app *App) *browseModel {
	columns := []table.Column{
		{Title: "Activity", Width: 28},
		{Title: "Date", Width: 10},
		{Title: "Time", Width: 11},
		{Title: "Category", Width: 13},
		{Title: "Booked", Width: 6},
		{Title: "Cost", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(lipgloss.Color("#3c3836"))
	t.SetStyles(styles)

	search := textinput.New()
	search.Placeholder = "search activities"
	search.CharLimit = 80

	m := &browseModel{
		app:        app,
		activities: app.Store.Filtered(),
		table:      t,
		search:     search,
	}
	m.refresh()
	return m
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.detail != nil:
			// Any key leaves the detail view.
			m.detail = nil
			return m, nil

		case m.searching:
			switch msg.String() {
			case "esc", "enter":
				m.searching = false
				m.search.Blur()
				m.table.Focus()
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.refresh()
				return m, cmd
			}

		default:
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			case "/":
				m.searching = true
				m.table.Blur()
				return m, m.search.Focus()
			case "enter":
				if cursor := m.table.Cursor(); cursor >= 0 && cursor < len(m.visible) {
					m.detail = m.visible[cursor]
				}
			default:
				var cmd tea.Cmd
				m.table, cmd = m.table.Update(msg)
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.detail != nil {
		return formatter.ActivityDetail(m.detail, m.app.Config.HighCostThreshold) +
			"\n" + formatter.Dim("press any key to go back")
	}

	var footer string
	if m.searching {
		footer = m.search.View()
	} else {
		footer = formatter.Dim(fmt.Sprintf("%d activities · / search · enter detail · q quit", len(m.visible)))
	}
	return m.table.View() + "\n" + footer
}

// refresh narrows the table rows by the live search term. The store's own
// filter state is untouched; this narrowing is view-local.
func (m *browseModel) refresh() {
	term := m.search.Value()
	m.visible = m.visible[:0]
	rows := make([]table.Row, 0, len(m.activities))
	for _, a := range m.activities {
		if !a.Matches(term) {
			continue
		}
		m.visible = append(m.visible, a)
		booked := ""
		if a.IsBooked() {
			booked = "✓"
		}
		rows = append(rows, table.Row{
			a.Name,
			a.DateString(),
			a.StartTime,
			string(a.Category),
			booked,
			fmt.Sprintf("%.2f", a.Cost),
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}
