package api

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

// Ensure MockClient implements the interface.
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of ClientInterface.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ExchangeCredentials(ctx context.Context, creds models.Credentials) (models.LoginToken, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(models.LoginToken), args.Error(1)
}

func (m *MockClient) GetMe(ctx context.Context) (models.Advertiser, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Advertiser), args.Error(1)
}

func (m *MockClient) GetCampaigns(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockClient) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Campaign), args.Error(1)
}

func (m *MockClient) GetCampaignScanCount(ctx context.Context, id string) (models.ScanCount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ScanCount), args.Error(1)
}

func (m *MockClient) GetCampaignSnapshots(ctx context.Context, id string) ([]models.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Snapshot), args.Error(1)
}

// MockHTTPClient is a mock implementation of HTTPClientInterface for testing.
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	return args.Get(0).(*http.Response), args.Error(1)
}
