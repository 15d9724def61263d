package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type CustomerService struct {
	uow repositories.UnitOfWork
}

func NewCustomerService(uow repositories.UnitOfWork) *CustomerService {
	return &CustomerService{uow: uow}
}

func (s *CustomerService) GetCustomers(ctx context.Context) (*utils.ServiceResponse, error) {
	customers, err := s.uow.Customers().GetAll(ctx)
	if err != nil {
		return nil, failure("GetCustomers", err)
	}
	return utils.NewServiceResponse().Listing(len(customers), customers, utils.StatusFailed), nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, request dtos.CustomerRequest) (*utils.ServiceResponse, error) {
	const op = "CreateCustomer"
	resp := utils.NewServiceResponse()
	duplicate := fmt.Sprintf("the customer with identification %s already exists.", request.ID)

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Customers().Any(ctx, repositories.ByID(request.ID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if exists {
		return reject(ctx, s.uow, op, resp, duplicate)
	}

	customer := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &customer, func() (bool, error) {
		return s.uow.Customers().Insert(ctx, &customer)
	}, "is not possible create a customer.", duplicate)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, request dtos.CustomerRequest) (*utils.ServiceResponse, error) {
	const op = "UpdateCustomer"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.Customers().Any(ctx, repositories.ByID(request.ID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if !exists {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the customer with identification %s not exists.", request.ID))
	}

	customer := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &customer, func() (bool, error) {
		return s.uow.Customers().Update(ctx, &customer)
	}, "is not possible update a customer.", "is not possible update a customer.")
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) (*utils.ServiceResponse, error) {
	const op = "DeleteCustomer"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	found, err := s.uow.Customers().FirstOrDefault(ctx, repositories.ByID(customerID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	customer, ok := found.Get()
	if !ok {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the customer with identification %s not exists.", customerID))
	}

	return commitWrite(ctx, s.uow, op, resp, &customer, func() (bool, error) {
		return s.uow.Customers().Delete(ctx, &customer)
	}, "is not possible delete a customer.", "is not possible delete a customer.")
}

// GetCustomerSpend lists the customers whose spend in the range reaches
// the requested minimum.
func (s *CustomerService) GetCustomerSpend(ctx context.Context, filter dtos.CustomerSpendFilter) (*utils.ServiceResponse, error) {
	spend, err := s.uow.Customers().GetCustomerSpend(ctx, filter)
	if err != nil {
		return nil, failure("GetCustomerSpend", err)
	}
	return utils.NewServiceResponse().Listing(len(spend), spend, utils.StatusFailed), nil
}
