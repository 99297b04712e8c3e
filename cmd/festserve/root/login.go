package root

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rotisserie/eris"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/loginform"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/program"
	"pkg.festserve.dev/festserve-cli/common/logger"
	"pkg.festserve.dev/festserve-cli/common/printer"
)

var ErrLoginCancelled = eris.New("login cancelled")

// Login exchanges credentials for a session token. Missing credentials are
// asked for with the login form when running in a terminal; otherwise they
// are sent as given and the server decides.
func (h *Handler) Login(ctx context.Context, flags models.LoginFlags) error {
	creds := models.Credentials{Email: flags.Email, Password: flags.Password}
	if flags.PasswordStdin {
		password, err := readPassword(h.stdin)
		if err != nil {
			return err
		}
		creds.Password = password
	}

	if (creds.Email == "" || creds.Password == "") && program.IsInteractive() {
		return h.loginWithForm(ctx, creds.Email)
	}

	err := program.RunProgram(ctx, func(p program.Program, ctx context.Context) error {
		p.Send(program.StatusMsg("Logging in..."))
		return h.authService.Login(ctx, creds)
	})
	if err != nil {
		return err
	}

	printLoggedIn(creds.Email)
	return nil
}

func (h *Handler) loginWithForm(ctx context.Context, email string) error {
	form := loginform.New(ctx, h.authService.Login).WithEmail(email)
	final, err := h.runProgram(ctx, loginModel{form: form})
	if err != nil {
		return eris.Wrap(err, "failed to run login form")
	}
	m, ok := final.(loginModel)
	if !ok || !m.done {
		return ErrLoginCancelled
	}

	printLoggedIn(m.email)
	return nil
}

func printLoggedIn(email string) {
	if email == "" {
		printer.Successln("Logged in")
		return
	}
	printer.Successf("Logged in as %s\n", email)
}

// Logout clears the stored session token. Logging out without a session
// is not an error.
func (h *Handler) Logout() error {
	hadSession := h.gate.HasSession()
	if err := h.authService.Logout(); err != nil {
		return err
	}
	if !hadSession {
		printer.Notificationln("No active session")
		return nil
	}
	logger.Info("session cleared")
	printer.Successln("Logged out")
	return nil
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", eris.Wrap(err, "failed to read password from stdin")
	}
	password := strings.TrimRight(line, "\r\n")
	logger.Debugf("read %d byte password from stdin", len(password))
	return password, nil
}

// loginModel runs the login form on its own and quits once a session is stored.
type loginModel struct {
	form  loginform.Model
	done  bool
	email string
}

func (m loginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The form clears its fields on success.
	email := m.form.Credentials().Email
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if submitted, ok := msg.(loginform.SubmittedMsg); ok && submitted.Err == nil {
		m.done = true
		m.email = email
		return m, tea.Quit
	}
	return m, cmd
}

func (m loginModel) View() string {
	if m.done {
		return ""
	}
	return m.form.View() + "\n"
}
