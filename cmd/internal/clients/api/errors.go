package api

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var (
	ErrUnauthorized      = eris.New("401 Unauthorized.")
	ErrForbidden         = eris.New("403 Forbidden.")
	ErrMalformedResponse = eris.New("malformed response")
	ErrNoToken           = eris.New("no session token")
	ErrNoCampaignID      = eris.New("campaign ID is required")
)

// StatusError is returned for non-2xx responses other than 401 and 403.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the server's detail or message field, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
