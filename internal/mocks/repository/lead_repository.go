package repository

import (
	"context"

	"teamed/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockLeadRepository is a testify mock of repository.LeadRepository.
type MockLeadRepository struct {
	mock.Mock
}

func NewMockLeadRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLeadRepository {
	m := &MockLeadRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)

	return args.Error(0)
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)

	var leads []entity.Lead
	if v := args.Get(0); v != nil {
		leads = v.([]entity.Lead)
	}

	return leads, args.Error(1)
}
