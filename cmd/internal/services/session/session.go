package session

import (
	"github.com/rotisserie/eris"

	"pkg.festserve.dev/festserve-cli/cmd/internal/services/config"
)

func NewConfigStore(configService config.ServiceInterface) *ConfigStore {
	return &ConfigStore{configService: configService}
}

// Get re-reads the credential file on every call, so a token written or
// removed by another process is seen on the next call.
func (s *ConfigStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.configService.Load(); err != nil {
		return "", eris.Wrap(err, "failed to read session")
	}
	return s.configService.GetConfig().Credential.Token, nil
}

func (s *ConfigStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.configService.GetConfig()
	cfg.Credential.Token = token
	if err := s.configService.Save(); err != nil {
		return eris.Wrap(err, "failed to save session")
	}
	return nil
}

func (s *ConfigStore) Clear() error {
	return s.Set("")
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Set("")
}

// HasToken reports whether store holds a non-empty token. A read error counts as no session.
func HasToken(store Store) bool {
	token, err := store.Get()
	return err == nil && token != ""
}
