package campaign

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

var _ ServiceInterface = (*MockService)(nil)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]models.Campaign, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockService) ListOrEmpty(ctx context.Context) []models.Campaign {
	args := m.Called(ctx)
	return args.Get(0).([]models.Campaign)
}

func (m *MockService) Report(ctx context.Context, id string) (models.CampaignReport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CampaignReport), args.Error(1)
}
