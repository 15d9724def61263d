package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type FoodService struct {
	uow repositories.UnitOfWork
}

func NewFoodService(uow repositories.UnitOfWork) *FoodService {
	return &FoodService{uow: uow}
}

func (s *FoodService) GetFoods(ctx context.Context) (*utils.ServiceResponse, error) {
	foods, err := s.uow.Foods().GetAll(ctx)
	if err != nil {
		return nil, failure("GetFoods", err)
	}
	return utils.NewServiceResponse().Listing(len(foods), foods, utils.StatusFailed), nil
}

func (s *FoodService) CreateFood(ctx context.Context, request dtos.CreateFoodRequest) (*utils.ServiceResponse, error) {
	const op = "CreateFood"
	resp := utils.NewServiceResponse()
	duplicate := fmt.Sprintf("the food %s already exists.", request.Name)

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Foods().Any(ctx, repositories.NameEquals(request.Name))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if exists {
		return reject(ctx, s.uow, op, resp, duplicate)
	}

	food := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &food, func() (bool, error) {
		return s.uow.Foods().Insert(ctx, &food)
	}, "is not possible create a food.", duplicate)
}

func (s *FoodService) UpdateFood(ctx context.Context, request dtos.UpdateFoodRequest) (*utils.ServiceResponse, error) {
	const op = "UpdateFood"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Foods().Any(ctx, repositories.ByID(request.ID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if !exists {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the food %s not exist.", request.Name))
	}

	food := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &food, func() (bool, error) {
		return s.uow.Foods().Update(ctx, &food)
	}, "is not possible update a food.", fmt.Sprintf("the food %s already exists.", request.Name))
}

func (s *FoodService) DeleteFood(ctx context.Context, foodID uint) (*utils.ServiceResponse, error) {
	const op = "DeleteFood"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	found, err := s.uow.Foods().FirstOrDefault(ctx, repositories.ByID(foodID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	food, ok := found.Get()
	if !ok {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the food with identification %d not exist.", foodID))
	}

	return commitWrite(ctx, s.uow, op, resp, &food, func() (bool, error) {
		return s.uow.Foods().Delete(ctx, &food)
	}, "is not possible delete a food.",
		fmt.Sprintf("the food with identification %d is used by bills and cannot be deleted.", foodID))
}

// GetSalesFood answers the best selling food of the range, or NoContent
// when nothing was sold.
func (s *FoodService) GetSalesFood(ctx context.Context, dateRange dtos.DateRange) (*utils.ServiceResponse, error) {
	best, err := s.uow.Foods().GetSalesFood(ctx, dateRange)
	if err != nil {
		return nil, failure("GetSalesFood", err)
	}

	resp := utils.NewServiceResponse()
	if food, ok := best.Get(); ok {
		return resp.Listing(1, food, utils.StatusFailed), nil
	}
	return resp.Listing(0, nil, utils.StatusFailed), nil
}
