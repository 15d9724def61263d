package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type WaiterService struct {
	uow repositories.UnitOfWork
}

func NewWaiterService(uow repositories.UnitOfWork) *WaiterService {
	return &WaiterService{uow: uow}
}

func (s *WaiterService) GetWaiters(ctx context.Context) (*utils.ServiceResponse, error) {
	waiters, err := s.uow.Waiters().GetAll(ctx)
	if err != nil {
		return nil, failure("GetWaiters", err)
	}
	return utils.NewServiceResponse().Listing(len(waiters), waiters, utils.StatusFailed), nil
}

// CreateWaiter rejects a waiter whose first and last name already exist,
// ignoring case and surrounding spaces.
func (s *WaiterService) CreateWaiter(ctx context.Context, request dtos.CreateWaiterRequest) (*utils.ServiceResponse, error) {
	const op = "CreateWaiter"
	resp := utils.NewServiceResponse()
	duplicate := fmt.Sprintf("the waiter %s %s already exists.", request.FirstName, request.LastName)

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Waiters().Any(ctx, repositories.FullNameEquals(request.FirstName, request.LastName))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if exists {
		return reject(ctx, s.uow, op, resp, duplicate)
	}

	waiter := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &waiter, func() (bool, error) {
		return s.uow.Waiters().Insert(ctx, &waiter)
	}, "is not possible create a waiter.", duplicate)
}

func (s *WaiterService) UpdateWaiter(ctx context.Context, request dtos.UpdateWaiterRequest) (*utils.ServiceResponse, error) {
	const op = "UpdateWaiter"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Waiters().Any(ctx, repositories.ByID(request.ID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if !exists {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the waiter %s %s not exist.", request.FirstName, request.LastName))
	}

	waiter := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &waiter, func() (bool, error) {
		return s.uow.Waiters().Update(ctx, &waiter)
	}, "is not possible update a waiter.",
		fmt.Sprintf("the waiter %s %s already exists.", request.FirstName, request.LastName))
}

func (s *WaiterService) DeleteWaiter(ctx context.Context, waiterID uint) (*utils.ServiceResponse, error) {
	const op = "DeleteWaiter"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	found, err := s.uow.Waiters().FirstOrDefault(ctx, repositories.ByID(waiterID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	waiter, ok := found.Get()
	if !ok {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the waiter with identification %d not exist.", waiterID))
	}

	return commitWrite(ctx, s.uow, op, resp, &waiter, func() (bool, error) {
		return s.uow.Waiters().Delete(ctx, &waiter)
	}, "is not possible delete a waiter.", "is not possible delete a waiter.")
}

func (s *WaiterService) GetWaiterSales(ctx context.Context, dateRange dtos.DateRange) (*utils.ServiceResponse, error) {
	sales, err := s.uow.Waiters().GetWaiterSales(ctx, dateRange)
	if err != nil {
		return nil, failure("GetWaiterSales", err)
	}
	return utils.NewServiceResponse().Listing(len(sales), sales, utils.StatusFailed), nil
}
