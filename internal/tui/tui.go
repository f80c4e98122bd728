// Package tui is an interactive terminal front end for the suggestion
// engine. Suggestions refresh as the user types; enter picks one.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jusunglee/boothko/internal/suggest"
	"github.com/jusunglee/boothko/internal/transliteration"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	convertedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Width(10)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	composer    *suggest.Composer
	input       textinput.Model
	suggestions []suggest.Suggestion
	cursor      int
	chosen      *suggest.Suggestion
	width       int
}

func New(composer *suggest.Composer, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "검색어 (예: 시나노 전용)"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 50
	ti.SetValue(initial)
	ti.Focus()

	m := Model{composer: composer, input: ti}
	m.refresh()
	return m
}

// Chosen returns the suggestion picked with enter, if any.
func (m Model) Chosen() (suggest.Suggestion, bool) {
	if m.chosen == nil {
		return suggest.Suggestion{}, false
	}
	return *m.chosen, true
}

func (m *Model) refresh() {
	m.suggestions = m.composer.Suggest(m.input.Value())
	if m.cursor >= len(m.suggestions) {
		m.cursor = max(len(m.suggestions)-1, 0)
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown, tea.KeyTab:
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			return m, nil
		case tea.KeyEnter:
			if len(m.suggestions) == 0 {
				return m, nil
			}
			s := m.suggestions[m.cursor]
			m.chosen = &s
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BOOTH 검색어 변환"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")

	if len(m.suggestions) == 0 {
		s.WriteString(subtleStyle.Render("  한글을 입력하세요"))
		s.WriteString("\n")
	}
	for i, sg := range m.suggestions {
		marker := "  "
		converted := convertedStyle.Render(sg.Converted)
		if i == m.cursor {
			marker = selectedStyle.Render("▸ ")
			converted = selectedStyle.Render(sg.Converted)
		}
		fmt.Fprintf(&s, "%s%s %s %s\n",
			marker,
			categoryStyle.Render(string(sg.Category)),
			converted,
			subtleStyle.Render(sg.Original+" · "+transliteration.Romanize(sg.Original)),
		)
	}

	s.WriteString("\n")
	s.WriteString(subtleStyle.Render("↑/↓ select · enter choose · esc quit"))
	s.WriteString("\n")
	return s.String()
}

// Run starts the interactive prompt and returns the chosen suggestion.
func Run(composer *suggest.Composer, initial string) (suggest.Suggestion, bool, error) {
	final, err := tea.NewProgram(New(composer, initial)).Run()
	if err != nil {
		return suggest.Suggestion{}, false, fmt.Errorf("running prompt: %w", err)
	}
	s, ok := final.(Model).Chosen()
	return s, ok, nil
}
