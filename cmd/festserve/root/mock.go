package root

import (
	"context"

	"github.com/stretchr/testify/mock"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

// Interface guard.
var _ HandlerInterface = (*MockHandler)(nil)

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Interactive(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) Login(ctx context.Context, flags models.LoginFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockHandler) Logout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockHandler) Campaigns(ctx context.Context, flags models.ListCampaignsFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockHandler) ShowCampaign(ctx context.Context, flags models.ShowCampaignFlags) error {
	args := m.Called(ctx, flags)
	return args.Error(0)
}

func (m *MockHandler) WhoAmI(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHandler) Version() error {
	args := m.Called()
	return args.Error(0)
}
