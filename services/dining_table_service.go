package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type DiningTableService struct {
	uow repositories.UnitOfWork
	qr  QRGenerator
}

func NewDiningTableService(uow repositories.UnitOfWork, qr QRGenerator) *DiningTableService {
	return &DiningTableService{uow: uow, qr: qr}
}

func (s *DiningTableService) GetDiningTables(ctx context.Context) (*utils.ServiceResponse, error) {
	tables, err := s.uow.DiningTables().GetAll(ctx)
	if err != nil {
		return nil, failure("GetDiningTables", err)
	}
	return utils.NewServiceResponse().Listing(len(tables), tables, utils.StatusFailed), nil
}

func (s *DiningTableService) CreateDiningTable(ctx context.Context, request dtos.CreateDiningTableRequest) (*utils.ServiceResponse, error) {
	const op = "CreateDiningTable"
	resp := utils.NewServiceResponse()
	duplicate := fmt.Sprintf("the dining table %s already exists.", request.Name)

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.DiningTables().Any(ctx, repositories.NameEquals(request.Name))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if exists {
		return reject(ctx, s.uow, op, resp, duplicate)
	}

	table := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &table, func() (bool, error) {
		return s.uow.DiningTables().Insert(ctx, &table)
	}, "is not possible create a dining table.", duplicate)
}

func (s *DiningTableService) UpdateDiningTable(ctx context.Context, request dtos.UpdateDiningTableRequest) (*utils.ServiceResponse, error) {
	const op = "UpdateDiningTable"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	exists, err := s.uow.DiningTables().Any(ctx, repositories.ByID(request.ID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if !exists {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the dining table with identification %d not exist.", request.ID))
	}

	table := request.ToModel()
	return commitWrite(ctx, s.uow, op, resp, &table, func() (bool, error) {
		return s.uow.DiningTables().Update(ctx, &table)
	}, "is not possible update a dining table.", fmt.Sprintf("the dining table %s already exists.", request.Name))
}

func (s *DiningTableService) DeleteDiningTable(ctx context.Context, tableID uint) (*utils.ServiceResponse, error) {
	const op = "DeleteDiningTable"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	found, err := s.uow.DiningTables().FirstOrDefault(ctx, repositories.ByID(tableID))
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	table, ok := found.Get()
	if !ok {
		return reject(ctx, s.uow, op, resp, fmt.Sprintf("the dining table with identification %d not exist.", tableID))
	}

	return commitWrite(ctx, s.uow, op, resp, &table, func() (bool, error) {
		return s.uow.DiningTables().Delete(ctx, &table)
	}, "is not possible delete a dining table.", "is not possible delete a dining table.")
}

// GetDiningTableQRCode renders a PNG QR code pointing at the table. Data
// holds the image bytes.
func (s *DiningTableService) GetDiningTableQRCode(ctx context.Context, tableID uint) (*utils.ServiceResponse, error) {
	const op = "GetDiningTableQRCode"
	resp := utils.NewServiceResponse()

	found, err := s.uow.DiningTables().FirstOrDefault(ctx, repositories.ByID(tableID))
	if err != nil {
		return nil, failure(op, err)
	}
	if found.IsAbsent() {
		return resp.Reject(fmt.Sprintf("the dining table with identification %d not exist.", tableID)), nil
	}

	png, err := s.qr.Generate(tableID)
	if err != nil {
		return nil, failure(op, err)
	}
	return resp.Affected(true, png, utils.StatusFailed), nil
}
