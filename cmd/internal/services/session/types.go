package session

import (
	"sync"

	"pkg.festserve.dev/festserve-cli/cmd/internal/services/config"
)

// Store holds the session token. Get returns "" when no session exists.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

var (
	_ Store = (*ConfigStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// ConfigStore persists the token through the credential file service.
// It is safe for concurrent use; the TUI and background fetches share one.
type ConfigStore struct {
	mu            sync.Mutex
	configService config.ServiceInterface
}

// MemoryStore keeps the token in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}
