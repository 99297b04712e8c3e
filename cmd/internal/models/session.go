package models

// Credentials is transient login input. It is never persisted.
type Credentials struct {
	Email    string
	Password string
}

// LoginToken is the token endpoint response.
type LoginToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Credential struct {
	Token string `json:"token"`
}

type LoginFlags struct {
	Email         string
	Password      string
	PasswordStdin bool
}

type Route string

const (
	RouteLogin     Route = "/login"
	RouteCampaigns Route = "/"
)

// Protected reports whether the route requires a session token.
func (r Route) Protected() bool {
	return r != RouteLogin
}
