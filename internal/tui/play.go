// Package tui implements the terminal practice session: the same
// dialogue protocol the HTTP API serves, driven locally over one
// in-process session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/continha/internal/session"
	"github.com/abhisek/continha/internal/ui/theme"
)

// Options configure a practice session.
type Options struct {
	Engine    *session.Engine
	Session   *session.Session
	Operation string
	Bracket   string
}

// Model is the Bubble Tea model for a practice session.
type Model struct {
	opts  Options
	input textinput.Model

	question string
	example  string
	feedback string
	errMsg   string
	done     bool

	answered int
	correct  int
}

// New creates the practice model. The first question is posed in Init.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "sua resposta"
	ti.CharLimit = 16
	ti.Focus()
	return Model{opts: opts, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.startQuestion()
}

// startMsg carries the result of posing a new question.
type startMsg struct {
	question string
	err      error
}

func (m Model) startQuestion() tea.Cmd {
	return func() tea.Msg {
		result, err := m.opts.Engine.Start(context.Background(), m.opts.Session, m.opts.Operation, m.opts.Bracket)
		if err != nil {
			return startMsg{err: err}
		}
		return startMsg{question: result.Question}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.done = true
			return m, tea.Quit
		}
		m.question = msg.question
		m.example = ""
		m.feedback = ""
		m.input.SetValue("")
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}

		switch m.opts.Session.Phase {
		case session.PhaseQuestionPosed:
			if msg.String() == "enter" {
				return m.submitAnswer()
			}
		case session.PhaseAwaitingFeedback:
			return m.submitFeedback(msg.String())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitAnswer() (tea.Model, tea.Cmd) {
	result, err := m.opts.Engine.SubmitAnswer(context.Background(), m.opts.Session, m.input.Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	m.answered++
	if result.Correct {
		m.correct++
		m.feedback = theme.Correct.Render("Acertou!")
	} else {
		m.feedback = theme.Incorrect.Render(fmt.Sprintf("Quase! A resposta certa é %d.", result.CorrectAnswer))
	}
	m.example = result.Example
	return m, nil
}

func (m Model) submitFeedback(key string) (tea.Model, tea.Cmd) {
	var understood bool
	switch key {
	case "s", "S":
		understood = true
	case "n", "N":
		understood = false
	default:
		return m, nil
	}

	result, err := m.opts.Engine.SubmitFeedback(context.Background(), m.opts.Session, understood)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	if result.Advanced {
		return m, m.startQuestion()
	}
	m.example = result.Example
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")

	var b strings.Builder
	b.WriteString(theme.Title.Render("Continha: hora de praticar!"))
	b.WriteString("\n\n")

	if m.question != "" {
		b.WriteString(theme.Question.Render(m.question))
		b.WriteString("\n\n")
	}

	switch m.opts.Session.Phase {
	case session.PhaseQuestionPosed:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Enter envia · Esc sai"))
	case session.PhaseAwaitingFeedback:
		if m.feedback != "" {
			b.WriteString(m.feedback)
			b.WriteString("\n\n")
		}
		b.WriteString(theme.Card.Render(m.example))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Entendeu? (s/n) · Esc sai"))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Placar: %d de %d", m.correct, m.answered)))

	v.SetContent(b.String())
	return v
}

// Run starts the practice program and reports the final score.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run practice session: %w", err)
	}
	if m, ok := final.(Model); ok && m.answered > 0 {
		fmt.Printf("Você acertou %d de %d. Até a próxima!\n", m.correct, m.answered)
	}
	return nil
}
