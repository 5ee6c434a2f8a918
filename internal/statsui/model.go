// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvolden/perk/internal/format"
	"github.com/mvolden/perk/internal/model"
	"github.com/mvolden/perk/internal/stats"
	"github.com/mvolden/perk/internal/store"
)

const (
	tabOverview = iota
	tabRuns
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report stats.Report
	errMsg string

	tabs      []string
	activeTab int
	overview  viewport.Model
	runTable  table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a stats UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tabs:  []string{"Overview", "Runs"},
	}
	m.overview = viewport.New(0, 0)
	m.runTable = buildRunTable(nil)
	m.initInputs()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filterMode && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabRuns {
				m.runTable.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabRuns {
				m.runTable.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabRuns {
				var cmd tea.Cmd
				m.runTable, cmd = m.runTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Curve window: "),
	}
	m.setInputsFromConfig()
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromConfig() {
	if m.cfg.Since != nil {
		m.filterInputs[0].SetValue(m.cfg.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[0].SetValue("")
	}
	if m.cfg.Last > 0 {
		m.filterInputs[1].SetValue(strconv.Itoa(m.cfg.Last))
	} else {
		m.filterInputs[1].SetValue("")
	}
	m.filterInputs[2].SetValue(strconv.Itoa(m.cfg.CurveWindow))
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterIndex = 0
	m.filterError = ""
	m.setInputsFromConfig()
	for i := range m.filterInputs {
		m.filterInputs[i].Blur()
	}
	return m, m.filterInputs[0].Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case "tab", "down":
		return m, m.focusFilterInput(m.filterIndex + 1)
	case "shift+tab", "up":
		return m, m.focusFilterInput(m.filterIndex - 1)
	case "enter":
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.refreshReport()
		m.updateLayout()
		m.renderTabContents()
		return m, tea.ClearScreen
	default:
		var cmd tea.Cmd
		m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
		return m, cmd
	}
}

func (m *Model) focusFilterInput(index int) tea.Cmd {
	count := len(m.filterInputs)
	index = (index + count) % count
	m.filterInputs[m.filterIndex].Blur()
	m.filterIndex = index
	return m.filterInputs[index].Focus()
}

func (m *Model) applyFilter() error {
	sinceRaw := strings.TrimSpace(m.filterInputs[0].Value())
	if sinceRaw == "" {
		m.cfg.Since = nil
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", sinceRaw, time.Local)
		if err != nil {
			return fmt.Errorf("invalid since date: %w", err)
		}
		m.cfg.Since = &parsed
	}

	lastRaw := strings.TrimSpace(m.filterInputs[1].Value())
	if lastRaw == "" {
		m.cfg.Last = 0
	} else {
		last, err := strconv.Atoi(lastRaw)
		if err != nil || last < 0 {
			return fmt.Errorf("last must be a non-negative integer")
		}
		m.cfg.Last = last
	}

	windowRaw := strings.TrimSpace(m.filterInputs[2].Value())
	if windowRaw != "" {
		window, err := strconv.Atoi(windowRaw)
		if err != nil || window < 1 {
			return fmt.Errorf("curve window must be a positive integer")
		}
		m.cfg.CurveWindow = window
	}
	return nil
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	m.activeTab = (m.activeTab + delta + count) % count
	if m.activeTab == tabRuns {
		m.runTable.Focus()
	} else {
		m.runTable.Blur()
	}
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bodyHeight := m.height - 5
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.runTable.SetWidth(m.width)
	m.runTable.SetHeight(bodyHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		if w := m.width - promptWidth - 2; w > 10 {
			m.filterInputs[i].Width = w
		} else {
			m.filterInputs[i].Width = 10
		}
	}
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	if err != nil {
		m.errMsg = err.Error()
		m.report = stats.Report{}
		m.renderTabContents()
		return
	}
	m.errMsg = ""
	m.report = report
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, m.report.Runs); err == nil {
		if err := stats.RenderEarningsCurve(&buf, m.report.Runs, m.cfg.CurveWindow, m.width); err != nil {
			fmt.Fprintf(&buf, "failed to render curve: %v\n", err)
		}
	}
	m.overview.SetContent(buf.String())
	m.runTable = buildRunTable(m.report.Runs)
	if m.activeTab == tabRuns {
		m.runTable.Focus()
	}
	m.updateLayout()
}

func buildRunTable(runs []model.RunAggregate) table.Model {
	columns := []table.Column{
		{Title: "Ended", Width: 16},
		{Title: "Label", Width: 12},
		{Title: "Taps", Width: 6},
		{Title: "Buys", Width: 5},
		{Title: "Earned", Width: 10},
		{Title: "Spent", Width: 10},
	}
	rows := make([]table.Row, 0, len(runs))
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		rows = append(rows, table.Row{
			r.EndedAt.Format("2006-01-02 15:04"),
			r.Label,
			strconv.Itoa(r.Taps),
			strconv.Itoa(r.Purchases),
			format.Amount(r.Earned),
			format.Amount(r.Spent),
		})
	}
	return table.New(table.WithColumns(columns), table.WithRows(rows))
}

func (m *Model) renderHeader() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return tabs + "\n" + headerStyle.Render(m.renderFilterSummary())
}

func (m *Model) renderFilterSummary() string {
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	return fmt.Sprintf("Settings: since=%s  last=%s  window=%d", since, last, m.cfg.CurveWindow)
}

func (m *Model) renderBody() string {
	if m.filterMode {
		lines := []string{"Settings (enter to apply, esc to cancel)"}
		for _, input := range m.filterInputs {
			lines = append(lines, input.View())
		}
		if m.filterError != "" {
			lines = append(lines, errorStyle.Render(m.filterError))
		}
		return strings.Join(lines, "\n")
	}
	if m.activeTab == tabRuns {
		if len(m.report.Runs) == 0 {
			return "No runs found."
		}
		return m.runTable.View()
	}
	return m.overview.View()
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	help := headerStyle.Render("Nav: left/right  Scroll: up/down  Settings: /  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}
