package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// visibleKinds is how many decoder kinds the selection list shows at once.
const visibleKinds = 15

type interactiveModel struct {
	err      error
	result   *decodeResult
	kinds    []decoderKind
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectKind modelState = iota
	stateInputBytes
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		kinds: sortedKinds(),
		state: stateSelectKind,
	}
}

type decodedMsg struct {
	err    error
	result decodeResult
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputBytes {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectKind && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectKind && m.selected < len(m.kinds)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectKind:
				m.prepareInputs()
				m.state = stateInputBytes
				return m, textinput.Blink

			case stateInputBytes:
				return m, m.decode

			case stateShowResult:
				m.state = stateSelectKind
				m.result = nil
				m.err = nil
				return m, nil
			}

		case "tab":
			if m.state == stateInputBytes && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputBytes:
				m.state = stateSelectKind
				m.inputs = nil
			case stateShowResult:
				m.state = stateInputBytes
				m.result = nil
				m.err = nil
			}
			return m, nil
		}

	case decodedMsg:
		m.err = msg.err
		if msg.err == nil {
			res := msg.result
			m.result = &res
		}
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputBytes {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	k := m.kinds[m.selected]

	hexIn := textinput.New()
	hexIn.Placeholder = "01 00 00 80"
	hexIn.Prompt = "hex: "
	hexIn.Width = 48
	hexIn.Focus()
	m.inputs = []textinput.Model{hexIn}

	if k.sized {
		nIn := textinput.New()
		nIn.Placeholder = "all"
		nIn.Prompt = "n: "
		nIn.Width = 8
		m.inputs = append(m.inputs, nIn)
	}
	m.focusIdx = 0
}

func (m *interactiveModel) decode() tea.Msg {
	k := m.kinds[m.selected]
	data, err := parseHex(m.inputs[0].Value())
	if err != nil {
		return decodedMsg{err: err}
	}
	n := -1
	if len(m.inputs) > 1 {
		if s := strings.TrimSpace(m.inputs[1].Value()); s != "" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return decodedMsg{err: fmt.Errorf("parse n: %w", err)}
			}
			n = v
		}
	}
	return decodedMsg{result: runDecoder(k, data, n)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pptfield"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectKind:
		b.WriteString("Select a decoder:\n\n")
		first := 0
		if m.selected >= visibleKinds {
			first = m.selected - visibleKinds + 1
		}
		for i := first; i < len(m.kinds) && i < first+visibleKinds; i++ {
			line := fmt.Sprintf("%-20s %s", m.kinds[i].name, descStyle.Render(m.kinds[i].desc))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.kinds[i].name))
				b.WriteString(" " + descStyle.Render(m.kinds[i].desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputBytes:
		k := m.kinds[m.selected]
		b.WriteString(fmt.Sprintf("Decoding %s\n\n", kindStyle.Render(k.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter decode • esc back"))

	case stateShowResult:
		k := m.kinds[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", kindStyle.Render(k.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		} else {
			var out strings.Builder
			printer{w: &out, color: true}.result(k.name, *m.result)
			b.WriteString(out.String())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter new decoder • esc edit input • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
