package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/rules"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// proveModel - Interactive derivation explorer
// =============================================================================

// candidate is one legal rule application on the current graph.
type candidate struct {
	rule    rules.Rule
	addr    graph.Address
	preview string
}

// appliedStep is one committed step of the derivation.
type appliedStep struct {
	rule   rules.Rule
	addr   graph.Address
	result string
}

// proveModel is the bubbletea model for the prove command.
type proveModel struct {
	premise    *graph.Graph
	current    *graph.Graph
	steps      []appliedStep
	candidates []candidate
	cursor     int
	offset     int
	height     int
	save       bool
	status     string
}

// newProveModel creates a model positioned at the premise.
func newProveModel(g *graph.Graph) proveModel {
	m := proveModel{
		premise: g,
		current: g,
		height:  12,
	}
	m.candidates = enumerate(g)
	return m
}

// enumerate collects every legal rule application with its result preview.
// Enumerator output is already sorted per rule, so the combined list stays
// grouped by rule and ordered by address within each group.
func enumerate(g *graph.Graph) []candidate {
	var out []candidate
	for _, rule := range rules.Rules() {
		addrs, err := rules.Find(rule, g)
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			result, err := rules.Apply(rule, g, addr)
			if err != nil {
				continue
			}
			out = append(out, candidate{rule: rule, addr: addr, preview: result.String()})
		}
	}
	return out
}

func (m proveModel) Init() tea.Cmd {
	return nil
}

func (m proveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			return m.apply(), nil
		case "u":
			return m.undo(), nil
		case "s":
			m.save = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 4 {
			m.height = 4
		}
	}
	return m, nil
}

// apply commits the selected candidate and re-enumerates.
func (m proveModel) apply() proveModel {
	if m.cursor >= len(m.candidates) {
		return m
	}
	cand := m.candidates[m.cursor]
	result, err := rules.Apply(cand.rule, m.current, cand.addr)
	if err != nil {
		m.status = err.Error()
		return m
	}

	m.steps = append(m.steps, appliedStep{rule: cand.rule, addr: cand.addr, result: result.String()})
	m.current = result
	m.candidates = enumerate(result)
	m.cursor = 0
	m.offset = 0
	m.status = ""
	return m
}

// undo drops the last step and replays the remaining derivation.
func (m proveModel) undo() proveModel {
	if len(m.steps) == 0 {
		return m
	}
	m.steps = m.steps[:len(m.steps)-1]

	g := m.premise
	if n := len(m.steps); n > 0 {
		// Results hold canonical text, so re-parsing restores the graph.
		restored, err := graph.Parse(m.steps[n-1].result)
		if err != nil {
			m.status = err.Error()
			return m
		}
		g = restored
	}
	m.current = g
	m.candidates = enumerate(g)
	m.cursor = 0
	m.offset = 0
	m.status = ""
	return m
}

func (m proveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Derivation Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ⏎ apply  u undo  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(listDimStyle.Render(fmt.Sprintf("  premise  %s", m.premise.String())))
	b.WriteString("\n")
	for i, step := range m.steps {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  step %-3d %s at %s", i+1, step.rule, step.addr.String())))
		b.WriteString("\n")
	}
	b.WriteString("  " + styleGraph.Render(m.current.String()))
	b.WriteString("\n\n")

	if len(m.candidates) == 0 {
		b.WriteString(listDimStyle.Render("  no rule applies"))
		b.WriteString("\n")
	}

	end := m.offset + m.height
	if end > len(m.candidates) {
		end = len(m.candidates)
	}
	for i := m.offset; i < end; i++ {
		cand := m.candidates[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %-8s %s %s",
			cursor, cand.rule, cand.addr.String(), iconArrow, cand.preview)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.candidates) > 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.candidates))))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + m.status))
	}

	return b.String()
}
