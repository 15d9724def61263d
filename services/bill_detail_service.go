package services

import (
	"context"

	"github.com/samber/lo"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type BillDetailService struct {
	uow repositories.UnitOfWork
}

func NewBillDetailService(uow repositories.UnitOfWork) *BillDetailService {
	return &BillDetailService{uow: uow}
}

// CreateBillDetails inserts every line in one statement. The caller stamps
// the bill id on each line first. When the unit of work already has a
// transaction open the lines join it.
func (s *BillDetailService) CreateBillDetails(ctx context.Context, requests []dtos.CreateBillDetailRequest) (*utils.ServiceResponse, error) {
	const op = "CreateBillDetails"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	details := lo.Map(requests, func(r dtos.CreateBillDetailRequest, _ int) models.BillDetail {
		return r.ToModel()
	})

	created, err := s.uow.BillDetails().InsertMany(ctx, details)
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}
	if err := s.uow.Commit(ctx); err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}

	return resp.Affected(created, details, utils.StatusFailed), nil
}
