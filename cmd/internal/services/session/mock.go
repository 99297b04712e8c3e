package session

import "github.com/stretchr/testify/mock"

var _ Store = (*MockStore)(nil)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockStore) Set(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}
