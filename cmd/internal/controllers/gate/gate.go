package gate

import (
	"github.com/rotisserie/eris"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/session"
	"pkg.festserve.dev/festserve-cli/common/logger"
)

var ErrLogin = eris.New("not logged in")

// Gate decides whether protected views may mount. The check is presence
// only: the token is never decoded or validated client-side, and the store
// is read on every call.
type Gate struct {
	store session.Store
}

func New(store session.Store) *Gate {
	return &Gate{store: store}
}

// HasSession reports whether a non-empty token is stored right now.
func (g *Gate) HasSession() bool {
	token, err := g.store.Get()
	if err != nil {
		logger.Warnf("failed to read session, treating as logged out: %v", err)
		return false
	}
	return token != ""
}

// Resolve returns the route to mount for requested.
func (g *Gate) Resolve(requested models.Route) models.Route {
	if !requested.Protected() || g.HasSession() {
		return requested
	}
	return models.RouteLogin
}

// Require returns ErrLogin when no session is stored.
func (g *Gate) Require() error {
	if !g.HasSession() {
		return ErrLogin
	}
	return nil
}
