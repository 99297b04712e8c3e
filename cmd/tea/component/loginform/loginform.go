package loginform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/style"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

const inputWidth = 40

// SubmitFunc performs one login attempt.
type SubmitFunc func(ctx context.Context, creds models.Credentials) error

// SubmittedMsg carries the outcome of a login attempt.
type SubmittedMsg struct {
	Err error
}

// Model is the login screen: an email field, a masked password field and
// an inline error line. Input is not validated before it is submitted.
type Model struct {
	ctx     context.Context
	submit  SubmitFunc
	inputs  [fieldCount]textinput.Model
	focused int
	spinner spinner.Model

	submitting bool
	err        error
}

func New(ctx context.Context, submit SubmitFunc) Model {
	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.Width = inputWidth

	password := textinput.New()
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Width = inputWidth

	m := Model{
		ctx:     ctx,
		submit:  submit,
		inputs:  [fieldCount]textinput.Model{email, password},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.inputs[fieldEmail].Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Reset discards any typed credentials and error and focuses the email field.
func (m Model) Reset() Model {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.err = nil
	m.submitting = false
	return m.focus(fieldEmail)
}

// WithEmail prefills the email field and moves focus to the password.
func (m Model) WithEmail(email string) Model {
	if email == "" {
		return m
	}
	m.inputs[fieldEmail].SetValue(email)
	return m.focus(fieldPassword)
}

func (m Model) Err() error {
	return m.err
}

func (m Model) Submitting() bool {
	return m.submitting
}

func (m Model) Credentials() models.Credentials {
	return models.Credentials{
		Email:    m.inputs[fieldEmail].Value(),
		Password: m.inputs[fieldPassword].Value(),
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		return m.Reset(), nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.Type { //nolint:exhaustive // other keys go to the focused input
		case tea.KeyTab, tea.KeyDown:
			return m.focus((m.focused + 1) % fieldCount), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return m.focus((m.focused + fieldCount - 1) % fieldCount), nil
		case tea.KeyEnter:
			if m.focused == fieldEmail {
				return m.focus(fieldPassword), nil
			}
			return m.startSubmit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(style.Header("FestServe", "Advertiser login"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldView(fieldEmail, "Email   "))
	b.WriteString("\n")
	b.WriteString(m.fieldView(fieldPassword, "Password"))
	b.WriteString("\n\n")
	switch {
	case m.submitting:
		b.WriteString(m.spinner.View() + " Logging in...")
	case m.err != nil:
		b.WriteString(style.ErrorText(m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(style.Hint("tab: next field • enter: log in • ctrl+c: quit"))
	return b.String()
}

func (m Model) fieldView(field int, label string) string {
	icon := style.BlankIcon.String()
	if m.focused == field {
		icon = style.ChevronIcon.String()
	}
	return icon + label + " " + m.inputs[field].View()
}

func (m Model) focus(field int) Model {
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focused = field
	return m
}

func (m Model) startSubmit() (Model, tea.Cmd) {
	m.submitting = true
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.submit, m.Credentials()))
}

func submitCmd(ctx context.Context, submit SubmitFunc, creds models.Credentials) tea.Cmd {
	return func() tea.Msg {
		return SubmittedMsg{Err: submit(ctx, creds)}
	}
}
