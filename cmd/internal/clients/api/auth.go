package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

const (
	tokenEndpoint = "/api/auth/token"
	meEndpoint    = "/api/auth/me"

	// ScopeAdvertiser marks the caller as an advertiser client.
	ScopeAdvertiser = "advertiser"
)

// ExchangeCredentials posts the credentials as a form to the token endpoint.
// No client-side validation is done on email or password.
func (c *Client) ExchangeCredentials(ctx context.Context, creds models.Credentials) (models.LoginToken, error) {
	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)
	form.Set("scope", ScopeAdvertiser)

	req, err := c.prepareRequest(ctx, http.MethodPost, tokenEndpoint, form)
	if err != nil {
		return models.LoginToken{}, err
	}

	body, err := c.doRequest(req)
	if err != nil {
		return models.LoginToken{}, err
	}

	if !gjson.ValidBytes(body) {
		return models.LoginToken{}, eris.Wrap(ErrMalformedResponse, "token response is not valid JSON")
	}
	accessToken := gjson.GetBytes(body, "access_token")
	if accessToken.Type != gjson.String || accessToken.String() == "" {
		return models.LoginToken{}, eris.Wrap(ErrMalformedResponse, "token response has no access_token")
	}

	return models.LoginToken{
		AccessToken: accessToken.String(),
		TokenType:   gjson.GetBytes(body, "token_type").String(),
	}, nil
}

// GetMe returns the advertiser the session token belongs to.
func (c *Client) GetMe(ctx context.Context) (models.Advertiser, error) {
	body, err := c.sendAuthorized(ctx, get, meEndpoint)
	if err != nil {
		return models.Advertiser{}, eris.Wrap(err, "Failed to get current advertiser")
	}
	return parseResponse[models.Advertiser](body)
}
