// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"teamed/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	var user *entity.User
	if v := args.Get(0); v != nil {
		user = v.(*entity.User)
	}

	return user, args.Error(1)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)

	var users []entity.User
	if v := args.Get(0); v != nil {
		users = v.([]entity.User)
	}

	return users, args.Error(1)
}
