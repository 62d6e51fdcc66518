package mocks

import (
	"context"

	"finance-tracker/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStore является моком для storage.Store: фиксирует вызов и передает Repo в fn
type MockStore struct {
	mock.Mock
	Repo storage.Repository
}

var _ storage.Store = (*MockStore)(nil)

func NewMockStore(repo storage.Repository) *MockStore {
	return &MockStore{Repo: repo}
}

func (m *MockStore) WithTx(ctx context.Context, fn func(storage.Repository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Repo)
}

func (m *MockStore) WithConn(ctx context.Context, fn func(storage.Repository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Repo)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
