package app_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/controllers/gate"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/auth"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/campaign"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/session"
	"pkg.festserve.dev/festserve-cli/cmd/tea/app"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/campaignlist"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/loginform"
)

type AppTestSuite struct {
	suite.Suite
	ctx    context.Context
	cancel context.CancelFunc
	store  *session.MemoryStore
	api    *api.MockClient
}

func (s *AppTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.store = session.NewMemoryStore("")
	s.api = &api.MockClient{}
}

func (s *AppTestSuite) TearDownTest() {
	s.cancel()
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) newApp(start models.Route) app.Model {
	return app.New(
		s.ctx,
		gate.New(s.store),
		auth.NewService(s.api, s.store),
		campaign.NewService(s.api),
		start,
	)
}

func update(m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(app.Model), cmd
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collect(c)...)
	}
	return msgs
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Scenario D: no token, protected route requested.
func (s *AppTestSuite) TestNoSessionRedirectsToLoginWithoutFetching() {
	m := s.newApp(models.RouteCampaigns)

	s.Equal(models.RouteLogin, m.Route())
	s.Contains(m.View(), "Advertiser login")

	s.cancel()
	collect(m.Init())
	s.api.AssertNotCalled(s.T(), "GetCampaigns", mock.Anything)
}

func (s *AppTestSuite) TestSessionMountsCampaignList() {
	s.Require().NoError(s.store.Set("tok123"))
	s.api.On("GetCampaigns", mock.Anything).
		Return([]models.Campaign{{CampaignID: "c1", ProductID: "p1", UnitsAllocated: 5}}, nil).Once()

	m := s.newApp(models.RouteCampaigns)
	s.Equal(models.RouteCampaigns, m.Route())

	s.cancel()
	msgs := collect(m.Init())
	loaded, ok := find[campaignlist.LoadedMsg](msgs)
	s.Require().True(ok)

	m, _ = update(m, loaded)
	s.Contains(m.View(), "p1 - 5")
	s.api.AssertExpectations(s.T())
}

// Scenario A: successful login transitions in-app to the list.
func (s *AppTestSuite) TestLoginTransitionsToCampaignList() {
	creds := models.Credentials{Email: "a@b.c", Password: "pw"}
	s.api.On("ExchangeCredentials", mock.Anything, creds).
		Return(models.LoginToken{AccessToken: "tok123", TokenType: "bearer"}, nil).Once()
	s.api.On("GetCampaigns", mock.Anything).Return([]models.Campaign{}, nil).Once()

	m := s.newApp(models.RouteLogin)
	initCmd := m.Init()

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(creds.Email)})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(creds.Password)})
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	submitted, ok := find[loginform.SubmittedMsg](collect(cmd))
	s.Require().True(ok)
	s.Require().NoError(submitted.Err)

	token, err := s.store.Get()
	s.Require().NoError(err)
	s.Equal("tok123", token)

	established, ok := find[app.SessionEstablishedMsg](collect(initCmd))
	s.Require().True(ok, "the router observes the login")

	m, cmd = update(m, established)
	s.Equal(models.RouteCampaigns, m.Route())

	m, _ = update(m, submitted)
	s.Equal(models.RouteCampaigns, m.Route())

	s.cancel()
	loaded, ok := find[campaignlist.LoadedMsg](collect(cmd))
	s.Require().True(ok)
	m, _ = update(m, loaded)
	s.NotContains(m.View(), "Loading")
	s.api.AssertExpectations(s.T())
}

// Scenario B: rejected login stays on the login screen.
func (s *AppTestSuite) TestFailedLoginStaysOnLoginScreen() {
	s.api.On("ExchangeCredentials", mock.Anything, mock.Anything).
		Return(models.LoginToken{}, api.ErrUnauthorized).Once()

	m := s.newApp(models.RouteLogin)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	submitted, ok := find[loginform.SubmittedMsg](collect(cmd))
	s.Require().True(ok)
	s.Require().ErrorIs(submitted.Err, auth.ErrLoginFailed)

	m, _ = update(m, submitted)
	s.Equal(models.RouteLogin, m.Route())
	s.Contains(m.View(), "Login failed")
	s.False(session.HasToken(s.store))
}

func (s *AppTestSuite) TestRemovedTokenRedirectsOnNextUpdate() {
	s.Require().NoError(s.store.Set("tok123"))
	s.api.On("GetCampaigns", mock.Anything).Return([]models.Campaign{}, nil).Maybe()

	m := s.newApp(models.RouteCampaigns)
	s.Require().Equal(models.RouteCampaigns, m.Route())

	s.Require().NoError(s.store.Clear())
	s.Equal(models.RouteCampaigns, m.Route(), "no re-evaluation until the next event")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	s.Equal(models.RouteLogin, m.Route())
}

func (s *AppTestSuite) TestNavigateRespectsGate() {
	m := s.newApp(models.RouteLogin)

	m, cmd := update(m, app.NavigateMsg{Route: models.RouteCampaigns})
	s.Equal(models.RouteLogin, m.Route())
	s.Nil(cmd, "navigating to the mounted route is a no-op")
	s.api.AssertNotCalled(s.T(), "GetCampaigns", mock.Anything)
}

func (s *AppTestSuite) TestQuitKeys() {
	m := s.newApp(models.RouteLogin)
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	s.Require().NotNil(cmd)
	s.Equal(tea.QuitMsg{}, cmd())

	s.Require().NoError(s.store.Set("tok123"))
	s.api.On("GetCampaigns", mock.Anything).Return([]models.Campaign{}, nil).Maybe()
	m = s.newApp(models.RouteCampaigns)
	_, cmd = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s.Require().NotNil(cmd)
	s.Equal(tea.QuitMsg{}, cmd())
}

func TestLoginObserverDoesNotBlockWithoutRouter(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore("")
	mockAPI := &api.MockClient{}
	mockAPI.On("ExchangeCredentials", mock.Anything, mock.Anything).
		Return(models.LoginToken{AccessToken: "tok"}, nil)
	authService := auth.NewService(mockAPI, store)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	app.New(ctx, gate.New(store), authService, campaign.NewService(mockAPI), models.RouteLogin)

	// The first event fills the buffer, the second must be dropped rather than block.
	require.NoError(t, authService.Login(t.Context(), models.Credentials{}))
	require.NoError(t, authService.Login(t.Context(), models.Credentials{}))
	assert.True(t, session.HasToken(store))
}
