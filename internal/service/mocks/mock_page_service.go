package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"modulepage/internal/model"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Build(ctx context.Context) (*model.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}
