package program

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/term"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

// An interface describing the parts of BubbleTea's Program that we actually use.
type Program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
	Quit()
}

// A text-only Program for when stdin is not a terminal. Status updates go to
// the debug log so piped output stays clean.
type fakeProgram struct {
	model tea.Model
}

// StatusMsg replaces the line shown next to the spinner.
type StatusMsg string

type statusModel struct {
	cancel  context.CancelFunc
	spinner spinner.Model
	status  string
	width   int
}

// IsInteractive reports whether stdin is a terminal.
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// NewProgram returns a bubbletea program drawing on stderr, or a fake one
// when there is no terminal.
func NewProgram(model tea.Model, opts ...tea.ProgramOption) Program {
	if !IsInteractive() {
		return &fakeProgram{model: model}
	}
	opts = append([]tea.ProgramOption{tea.WithOutput(os.Stderr)}, opts...)
	return tea.NewProgram(model, opts...)
}

func (p *fakeProgram) Run() (tea.Model, error) {
	if initCmd := p.model.Init(); initCmd != nil {
		if msg := initCmd(); msg != nil {
			p.model, _ = p.model.Update(msg)
		}
	}
	return p.model, nil
}

func (p *fakeProgram) Send(msg tea.Msg) {
	if status, ok := msg.(StatusMsg); ok {
		logger.Debug(string(status))
	}
}

func (p *fakeProgram) Quit() {
	p.Send(tea.Quit())
}

// RunProgram shows a spinner while f runs and returns f's error. Pressing
// ctrl+c cancels the context handed to f.
func RunProgram(ctx context.Context, f func(p Program, ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := NewProgram(statusModel{
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#E8590C"))),
		),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- f(p, ctx)
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-errCh
}

func (m statusModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case StatusMsg:
		m.status = string(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m statusModel) View() string {
	return wrap.String(m.spinner.View()+m.status, m.width)
}
