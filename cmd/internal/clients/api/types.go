package api

import (
	"context"
	"net/http"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

// Interface implementation check.
var _ ClientInterface = &Client{}

// Client is the FestServe HTTP API client. Protected calls read the bearer
// token from Tokens at request time.
type Client struct {
	BaseURL    string
	HTTPClient HTTPClientInterface
	Tokens     TokenSource
}

// ClientInterface defines the FestServe API operations used by the CLI.
type ClientInterface interface {
	// ExchangeCredentials trades an email/password pair for an access token.
	ExchangeCredentials(ctx context.Context, creds models.Credentials) (models.LoginToken, error)

	GetMe(ctx context.Context) (models.Advertiser, error)
	GetCampaigns(ctx context.Context) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	GetCampaignScanCount(ctx context.Context, id string) (models.ScanCount, error)
	GetCampaignSnapshots(ctx context.Context, id string) ([]models.Snapshot, error)
}

// HTTPClientInterface allows for mocking the underlying HTTP client.
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the current session token. session.Store satisfies it.
type TokenSource interface {
	Get() (string, error)
}
