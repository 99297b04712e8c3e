package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
)

var _ ServiceInterface = (*MockService)(nil)

type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, creds models.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *MockService) Logout() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockService) OnEstablished(fn EstablishedFunc) {
	m.Called(fn)
}
