package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/utils"
)

type BillDetailService struct {
	mock.Mock
}

func NewBillDetailService(t testingT) *BillDetailService {
	m := &BillDetailService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BillDetailService) CreateBillDetails(ctx context.Context, details []dtos.CreateBillDetailRequest) (*utils.ServiceResponse, error) {
	args := m.Called(ctx, details)
	resp, _ := args.Get(0).(*utils.ServiceResponse)
	return resp, args.Error(1)
}

type Publisher struct {
	mock.Mock
}

func NewPublisher(t testingT) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Publisher) Publish(ctx context.Context, event kds.Event) error {
	return m.Called(ctx, event).Error(0)
}

var _ kds.Publisher = (*Publisher)(nil)
