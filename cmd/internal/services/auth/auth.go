package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/rotisserie/eris"

	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/session"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

// ErrLoginFailed is returned for any non-2xx token response. Its message is shown to the user verbatim.
var ErrLoginFailed = eris.New("Login failed")

// EstablishedFunc observes a newly persisted session token.
type EstablishedFunc func(token string)

var _ ServiceInterface = (*Service)(nil)

type ServiceInterface interface {
	Login(ctx context.Context, creds models.Credentials) error
	Logout() error
	OnEstablished(fn EstablishedFunc)
}

// Service exchanges credentials for a session token and persists it.
type Service struct {
	apiClient api.ClientInterface
	store     session.Store

	mu        sync.Mutex
	observers []EstablishedFunc
}

func NewService(apiClient api.ClientInterface, store session.Store) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
	}
}

// OnEstablished registers fn to be called after every successful login.
func (s *Service) OnEstablished(fn EstablishedFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Login exchanges creds for a token, stores it, then notifies observers.
// On any failure the store is left untouched and no observer runs.
// No retry is attempted.
func (s *Service) Login(ctx context.Context, creds models.Credentials) error {
	token, err := s.apiClient.ExchangeCredentials(ctx, creds)
	if err != nil {
		return loginError(err)
	}

	if err := s.store.Set(token.AccessToken); err != nil {
		return eris.Wrap(err, "failed to persist session token")
	}
	logger.Debug("session token stored")

	s.mu.Lock()
	observers := make([]EstablishedFunc, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(token.AccessToken)
	}
	return nil
}

// Logout removes the stored session token.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return eris.Wrap(err, "failed to clear session token")
	}
	return nil
}

// loginError maps a token endpoint failure to what the user sees: "Login failed"
// for any rejected request, the underlying error otherwise.
func loginError(err error) error {
	var statusErr *api.StatusError
	if errors.Is(err, api.ErrUnauthorized) || errors.Is(err, api.ErrForbidden) || errors.As(err, &statusErr) {
		logger.Debugf("token exchange rejected: %v", err)
		return ErrLoginFailed
	}
	logger.Debugf("token exchange failed: %v", err)
	return err
}
