// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     preview
// Description: Interactive Bubbletea explorer for formatting options
// Created:     2026-10-04
// License:     MIT
// ============================================================================

// Package preview shows formatted tables in the terminal and lets the user
// tune formatting options interactively before copying the LaTeX output.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/tabular"
	"github.com/texunc/texunc/internal/uncertainty"
)

// Config holds explorer configuration
type Config struct {
	Title   string
	Table   *frame.Table
	Options tabular.RenderOptions
}

// Model is the Bubbletea model of the option explorer
type Model struct {
	// State
	width     int
	height    int
	ready     bool
	showLatex bool
	status    string
	err       error

	// Components
	viewport viewport.Model

	// Data
	title  string
	table  *frame.Table
	opts   tabular.RenderOptions
	latex  string
	result *frame.StringTable
}

// New creates the explorer model and renders the table once
func New(cfg Config) Model {
	m := Model{
		title:    cfg.Title,
		table:    cfg.Table,
		opts:     cfg.Options,
		viewport: viewport.New(80, 20),
	}
	m.rerender()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Options returns the options currently applied
func (m Model) Options() tabular.RenderOptions {
	return m.opts
}

// Latex returns the LaTeX output for the current options
func (m Model) Latex() string {
	return m.latex
}

// Err returns the last formatting error, if any
func (m Model) Err() error {
	return m.err
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + options bar
		footerHeight := 4 // Status bar + help
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.ready = true
		m.updateViewportContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil

	case tea.KeyRunes:
		f := m.opts.Format
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Exponent window
		case "+":
			f.MaxPower++
			f.MinPower--
		case "-":
			f.MaxPower--
			f.MinPower++

		// Decimal places
		case "d":
			f.MinDP++
			f.MinDPNoError++
		case "D":
			f.MinDP--
			f.MinDPNoError--

		case "z":
			f.ZeroDPInts = !f.ZeroDPInts

		case "c":
			m.opts.CaptionAbove = !m.opts.CaptionAbove
			m.rerender()
			return m, nil
		case "s":
			m.opts.StarTable = !m.opts.StarTable
			m.rerender()
			return m, nil
		case "l":
			m.showLatex = !m.showLatex
			m.updateViewportContent()
			return m, nil

		default:
			return m, nil
		}
		m.applyFormat(f)
	}

	return m, nil
}

// applyFormat switches to f unless it is invalid
func (m *Model) applyFormat(f uncertainty.Options) {
	if err := f.Validate(); err != nil {
		m.status = err.Error()
		return
	}
	m.opts.Format = f
	m.status = ""
	m.rerender()
}

// rerender formats the table with the current options
func (m *Model) rerender() {
	latex, st, err := tabular.RenderTable(nil, m.table, m.opts)
	m.err = err
	if err == nil {
		m.latex = latex
		m.result = st
	}
	m.updateViewportContent()
}

// updateViewportContent shows either the grid or the LaTeX source
func (m *Model) updateViewportContent() {
	switch {
	case m.err != nil:
		m.viewport.SetContent(StatusErrorStyle.Render(m.err.Error()))
	case m.showLatex:
		m.viewport.SetContent(m.latex)
	default:
		m.viewport.SetContent(Render(m.result))
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderOptionsBar())
	b.WriteString("\n")
	b.WriteString(LatexPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		Logo,
		strings.Repeat(" ", 3),
		HelpDescStyle.Render(m.title),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderOptionsBar() string {
	f := m.opts.Format
	items := []string{
		fmt.Sprintf("power [%d, %d]", f.MinPower, f.MaxPower),
		fmt.Sprintf("min_dp %d/%d", f.MinDP, f.MinDPNoError),
		RenderToggle("zero_dp_ints", f.ZeroDPInts),
		RenderToggle("caption above", m.opts.CaptionAbove),
		RenderToggle("table*", m.opts.StarTable),
	}
	return StatusBarStyle.Width(m.width - 2).Render(strings.Join(items, "  "))
}

func (m Model) renderStatusBar() string {
	if m.status != "" {
		return StatusErrorStyle.Render(m.status)
	}
	view := "table"
	if m.showLatex {
		view = "latex"
	}
	return HelpDescStyle.Render("view: " + view)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("+/-", "Window"),
		RenderKeyHint("d/D", "Decimals"),
		RenderKeyHint("z", "Int DP"),
		RenderKeyHint("c", "Caption"),
		RenderKeyHint("s", "Star"),
		RenderKeyHint("l", "LaTeX"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the explorer and returns the options chosen on exit
func Run(cfg Config) (tabular.RenderOptions, error) {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return cfg.Options, err
	}
	return final.(Model).Options(), nil
}
