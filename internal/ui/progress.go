package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"glyphwatch/internal/scan"
)

type progressModel struct {
	title   string
	events  <-chan scan.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path    string
	status  scan.Status
	scanned int
	flagged int
}

type eventMsg scan.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders scan progress.
// The model quits when events is closed or on Ctrl-C.
func NewProgressModel(title string, files []string, events <-chan scan.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: scan.StatusQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(scan.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// терминал в raw-режиме, SIGINT не придёт
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d flagged)", m.title, m.totalFlagged())
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	const statusWidth, countWidth = 10, 18
	nameWidth := m.width - statusWidth - countWidth - 6
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		status := styleStatus(item.status).Render(fmt.Sprintf("%*s", statusWidth, item.status))
		counts := ""
		if item.status == scan.StatusDone {
			counts = fmt.Sprintf("%d/%d flagged", item.flagged, item.scanned)
			if item.flagged > 0 {
				counts = flaggedStyle.Render(counts)
			}
		}
		fmt.Fprintf(&b, "  %s %s", status, name)
		if counts != "" {
			b.WriteString(strings.Repeat(" ", max(1, nameWidth-runewidth.StringWidth(name)+1)))
			b.WriteString(counts)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev scan.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	item.status = ev.Status
	if ev.Status == scan.StatusDone {
		item.scanned, item.flagged = ev.Scanned, ev.Flagged
	}

	total := 0.0
	for _, it := range m.items {
		total += progressFromStatus(it.status)
	}
	return m.prog.SetPercent(total / float64(len(m.items)))
}

func (m *progressModel) totalFlagged() int {
	n := 0
	for _, it := range m.items {
		n += it.flagged
	}
	return n
}

func progressFromStatus(status scan.Status) float64 {
	switch status {
	case scan.StatusDone, scan.StatusError:
		return 1.0
	case scan.StatusWorking:
		// длину файла заранее не знаем
		return 0.5
	default:
		return 0.0
	}
}

var flaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

func styleStatus(status scan.Status) lipgloss.Style {
	switch status {
	case scan.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case scan.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case scan.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
