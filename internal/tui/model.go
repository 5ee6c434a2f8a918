// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvolden/perk/internal/engine"
	"github.com/mvolden/perk/internal/format"
	"github.com/mvolden/perk/internal/model"
	"github.com/mvolden/perk/internal/store"
)

// TickMsg drives one second of passive production.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	statLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	gainStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AC47F"))
)

// Model implements the Bubble Tea game UI.
type Model struct {
	engine *engine.Engine
	store  *store.Store
	cfg    model.RunConfig

	startedAt time.Time

	width  int
	height int

	activeTab int
	tables    []table.Model

	lastGain float64

	lastEarned float64
	hasLast    bool
	allEarned  float64
	allRuns    int

	finished bool
}

// NewModel constructs a game TUI model. The store may be nil when run
// recording is unavailable; the game still plays.
func NewModel(eng *engine.Engine, st *store.Store, cfg model.RunConfig) *Model {
	m := &Model{
		engine:    eng,
		store:     st,
		cfg:       cfg,
		startedAt: time.Now(),
	}
	m.initTables()
	m.refreshTables()
	m.loadFooterStats()
	return m
}

// Init implements tea.Model. It registers the recurring production tick.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case TickMsg:
		m.lastGain = m.engine.Tick()
		m.refreshTables()
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.finishRun()
			return m, tea.Quit
		case " ":
			m.lastGain = m.engine.Tap()
			m.refreshTables()
			return m, nil
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l", "tab":
			m.moveTab(1)
			return m, nil
		case "enter", "b":
			m.purchaseSelected()
			return m, nil
		default:
			var cmd tea.Cmd
			m.tables[m.activeTab], cmd = m.tables[m.activeTab].Update(msg)
			return m, cmd
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	sections := []string{
		m.renderHeader(snap),
		m.renderTabs(),
		m.tables[m.activeTab].View(),
		m.renderFooter(),
	}
	body := strings.Join(sections, "\n")
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, body)
}

func (m *Model) moveTab(delta int) {
	count := len(engine.Kinds)
	next := (m.activeTab + delta + count) % count
	m.tables[m.activeTab].Blur()
	m.activeTab = next
	m.tables[m.activeTab].Focus()
}

func (m *Model) purchaseSelected() {
	index := m.tables[m.activeTab].Cursor()
	if m.engine.Purchase(engine.Kinds[m.activeTab], index) {
		m.refreshTables()
	}
}

func (m *Model) initTables() {
	columns := []table.Column{
		{Title: "Upgrade", Width: 18},
		{Title: "Effect", Width: 10},
		{Title: "Owned", Width: 5},
		{Title: "Cost", Width: 10},
	}
	m.tables = make([]table.Model, len(engine.Kinds))
	for i := range m.tables {
		m.tables[i] = table.New(
			table.WithColumns(columns),
			table.WithHeight(7),
		)
	}
	m.tables[m.activeTab].Focus()
}

func (m *Model) refreshTables() {
	snap := m.engine.Snapshot()
	for i, kind := range engine.Kinds {
		items := snap.Groups[kind]
		rows := make([]table.Row, len(items))
		for j, item := range items {
			rows[j] = upgradeRow(kind, item)
		}
		m.tables[i].SetRows(rows)
	}
}

func (m *Model) updateLayout() {
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	snap := m.engine.Snapshot()
	maxRows := 0
	for _, kind := range engine.Kinds {
		if n := len(snap.Groups[kind]); n > maxRows {
			maxRows = n
		}
	}
	if height > maxRows+1 {
		height = maxRows + 1
	}
	for i := range m.tables {
		m.tables[i].SetHeight(height)
	}
}

func (m *Model) renderHeader(snap engine.Snapshot) string {
	title := titleStyle.Render("perk")
	coffees := statLabelStyle.Render("coffees ") + statValueStyle.Render(format.Amount(snap.Currency))
	rates := statLabelStyle.Render(fmt.Sprintf(
		"per tap %s   per sec %s   mult x%.2f",
		rateLabel(snap.PerTap*snap.Multiplier),
		rateLabel(snap.PerSecond*snap.Multiplier),
		snap.Multiplier,
	))
	gain := ""
	if m.lastGain > 0 {
		gain = gainStyle.Render(" +" + format.Amount(m.lastGain))
	}
	return title + "  " + coffees + gain + "\n" + rates
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(engine.Kinds))
	for i, kind := range engine.Kinds {
		label := kind.String()
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderFooter() string {
	segments := []string{"space: tap", "left/right: shop", "enter: buy", "q: quit"}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last run %s", format.Amount(m.lastEarned)))
	}
	if m.allRuns > 0 {
		segments = append(segments, fmt.Sprintf("All-time %s over %d runs", format.Amount(m.allEarned), m.allRuns))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	runs, err := m.store.ListRuns(context.Background(), model.StatsConfig{})
	if err != nil {
		logErrf("failed to load run stats: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}
	last := runs[len(runs)-1]
	m.lastEarned = last.Earned
	m.hasLast = true
	m.allRuns = len(runs)
	for _, r := range runs {
		m.allEarned += r.Earned
	}
}

func (m *Model) finishRun() {
	if m.finished || m.store == nil {
		return
	}
	m.finished = true

	endedAt := time.Now()
	totals := m.engine.Totals()
	snap := m.engine.Snapshot()
	stats := model.RunStats{
		Label:         m.cfg.Label,
		StartedAt:     m.startedAt,
		EndedAt:       endedAt,
		DurationMs:    endedAt.Sub(m.startedAt).Milliseconds(),
		Taps:          totals.Taps,
		Ticks:         totals.Ticks,
		Purchases:     totals.Purchases,
		Earned:        totals.Earned,
		Spent:         totals.Spent,
		EndCurrency:   snap.Currency,
		EndPerTap:     snap.PerTap,
		EndPerSecond:  snap.PerSecond,
		EndMultiplier: snap.Multiplier,
	}
	if _, err := m.store.InsertRun(context.Background(), stats); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
