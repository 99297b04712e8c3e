package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"pkg.festserve.dev/festserve-cli/cmd/internal/controllers/gate"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/auth"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/campaign"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/campaignlist"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/loginform"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

// SessionEstablishedMsg is delivered after the auth service stores a new token.
type SessionEstablishedMsg struct{}

// NavigateMsg asks the router to mount Route, subject to the session gate.
type NavigateMsg struct {
	Route models.Route
}

// Model routes between the login screen and the campaign list. Every
// navigation and every update on a protected route consults the gate, so a
// token removed elsewhere sends the user back to the login screen on the
// next event.
type Model struct {
	ctx    context.Context
	gate   *gate.Gate
	events <-chan tea.Msg

	route   models.Route
	login   loginform.Model
	list    campaignlist.Model
	initCmd tea.Cmd
	width   int
}

// New builds the router and mounts the screen for start. It subscribes to
// the auth service so a successful login moves to the campaign list without
// restarting.
func New(
	ctx context.Context,
	sessionGate *gate.Gate,
	authService auth.ServiceInterface,
	campaignService campaign.ServiceInterface,
	start models.Route,
) Model {
	events := make(chan tea.Msg, 1)
	authService.OnEstablished(func(string) {
		select {
		case events <- SessionEstablishedMsg{}:
		default:
		}
	})

	m := Model{
		ctx:    ctx,
		gate:   sessionGate,
		events: events,
		login:  loginform.New(ctx, authService.Login),
		list:   campaignlist.New(campaignService.ListOrEmpty),
	}
	var cmd tea.Cmd
	m, cmd = m.navigate(start)
	m.initCmd = tea.Batch(cmd, waitForEvent(ctx, events))
	return m
}

func (m Model) Route() models.Route {
	return m.route
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyCtrlC || (m.route == models.RouteCampaigns && key.String() == "q") {
			m.list = m.list.Unmount()
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case SessionEstablishedMsg:
		logger.Debug("session established, opening campaign list")
		m.login = m.login.Reset()
		next, cmd := m.navigate(models.RouteCampaigns)
		return next, tea.Batch(cmd, waitForEvent(m.ctx, m.events))

	case loginform.SubmittedMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case NavigateMsg:
		return m.navigate(msg.Route)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	if m.route.Protected() && !m.gate.HasSession() {
		return m.navigate(m.route)
	}

	var cmd tea.Cmd
	switch m.route {
	case models.RouteLogin:
		m.login, cmd = m.login.Update(msg)
	case models.RouteCampaigns:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.route {
	case models.RouteCampaigns:
		return m.list.View() + "\n"
	default:
		return m.login.View() + "\n"
	}
}

// navigate mounts the gate's resolution of requested. Re-requesting the
// mounted route is a no-op.
func (m Model) navigate(requested models.Route) (Model, tea.Cmd) {
	next := m.gate.Resolve(requested)
	if next == m.route && (next != models.RouteCampaigns || m.list.Mounted()) {
		return m, nil
	}
	if next != requested {
		logger.Debugf("no session, redirecting %s to %s", requested, next)
	}

	if m.route == models.RouteCampaigns {
		m.list = m.list.Unmount()
	}
	m.route = next

	var cmd tea.Cmd
	switch next {
	case models.RouteCampaigns:
		m.list, cmd = m.list.Mount(m.ctx)
	case models.RouteLogin:
		m.login = m.login.Reset()
		cmd = m.login.Init()
	}
	return m, cmd
}

func waitForEvent(ctx context.Context, events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}
