package services

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/mocks"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
)

func TestWaiterService_CreateWaiter(t *testing.T) {
	ctx := context.Background()
	request := dtos.CreateWaiterRequest{FirstName: "Luis", LastName: "Gomez", Age: 30}

	tests := []struct {
		name         string
		prepareMocks func(uow *mocks.UnitOfWork)
		expectedCode utils.ResponseCode
		expectedMsg  string
	}{
		{
			name: "success",
			prepareMocks: func(uow *mocks.UnitOfWork) {
				uow.On("Begin", ctx).Return(nil).Once()
				uow.WaiterRepo.On("Any", ctx, mock.Anything).Return(false, nil).Once()
				uow.WaiterRepo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*models.Waiter).ID = 5
				}).Return(true, nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			},
			expectedCode: utils.ResponseCodeOk,
			expectedMsg:  utils.StatusSuccessful,
		},
		{
			name: "duplicate full name",
			prepareMocks: func(uow *mocks.UnitOfWork) {
				uow.On("Begin", ctx).Return(nil).Once()
				uow.WaiterRepo.On("Any", ctx, mock.Anything).Return(true, nil).Once()
				uow.On("Close", ctx).Return(nil).Once()
			},
			expectedCode: utils.ResponseCodeBadRequest,
			expectedMsg:  "the waiter Luis Gomez already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := mocks.NewUnitOfWork(t)
			tt.prepareMocks(uow)

			resp, err := NewWaiterService(uow).CreateWaiter(ctx, request)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.ResponseCode)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}

func TestWaiterService_CreateWaiter_ReturnsGeneratedID(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewUnitOfWork(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.WaiterRepo.On("Any", ctx, mock.Anything).Return(false, nil).Once()
	uow.WaiterRepo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Waiter).ID = 12
	}).Return(true, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	resp, err := NewWaiterService(uow).CreateWaiter(ctx, dtos.CreateWaiterRequest{FirstName: "A", LastName: "B"})

	require.NoError(t, err)
	waiter, ok := resp.Data.(*models.Waiter)
	require.True(t, ok)
	assert.Equal(t, uint(12), waiter.ID)
}

func TestWaiterService_UpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()

	t.Run("update", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.WaiterRepo.On("Any", ctx, mock.Anything).Return(false, nil).Once()
		uow.On("Close", ctx).Return(nil).Once()

		request := dtos.UpdateWaiterRequest{ID: 9, CreateWaiterRequest: dtos.CreateWaiterRequest{FirstName: "Luis", LastName: "Gomez"}}
		resp, err := NewWaiterService(uow).UpdateWaiter(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "the waiter Luis Gomez not exist.", resp.Message)
		uow.WaiterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.WaiterRepo.On("FirstOrDefault", ctx, mock.Anything, mock.Anything).
			Return(mo.None[models.Waiter](), nil).Once()
		uow.On("Close", ctx).Return(nil).Once()

		resp, err := NewWaiterService(uow).DeleteWaiter(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, utils.ResponseCodeBadRequest, resp.ResponseCode)
		assert.Equal(t, "the waiter with identification 9 not exist.", resp.Message)
		uow.WaiterRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestWaiterService_DeleteWaiter_FailureRollsBackOnce(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewUnitOfWork(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.WaiterRepo.On("FirstOrDefault", ctx, mock.Anything, mock.Anything).
		Return(mo.Some(models.Waiter{ID: 9}), nil).Once()
	uow.WaiterRepo.On("Delete", ctx, mock.Anything).Return(false, errors.New("disk I/O error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := NewWaiterService(uow).DeleteWaiter(ctx, 9)

	_, ok := utils.AsUseCaseError(err)
	assert.True(t, ok)
	uow.AssertNumberOfCalls(t, "Rollback", 1)
}

func TestWaiterService_GetWaiterSales(t *testing.T) {
	ctx := context.Background()
	uow := mocks.NewUnitOfWork(t)
	uow.WaiterRepo.On("GetWaiterSales", ctx, dtos.DateRange{}).Return([]dtos.WaiterSales{
		{FirstName: "Luis", LastName: "Gomez", Sales: decimal.NewFromInt(300)},
		{FirstName: "Maria", LastName: "Diaz", Sales: decimal.Zero},
	}, nil).Once()

	resp, err := NewWaiterService(uow).GetWaiterSales(ctx, dtos.DateRange{})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Quantity)
	assert.True(t, resp.Status)
}
