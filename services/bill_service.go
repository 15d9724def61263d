package services

import (
	"context"
	"time"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/kds"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
)

type BillService struct {
	uow       repositories.UnitOfWork
	details   BillDetailServiceInterface
	publisher kds.Publisher
}

// NewBillService wires the bill writer. publisher may be nil.
func NewBillService(uow repositories.UnitOfWork, details BillDetailServiceInterface, publisher kds.Publisher) *BillService {
	return &BillService{uow: uow, details: details, publisher: publisher}
}

// CreateBill stores the header and its lines in one transaction. If either
// write fails nothing is persisted.
func (s *BillService) CreateBill(ctx context.Context, request dtos.CreateBillRequest) (*utils.ServiceResponse, error) {
	const op = "CreateBill"
	resp := utils.NewServiceResponse()

	if err := s.uow.Begin(ctx); err != nil {
		return nil, failure(op, err)
	}

	bill := request.ToModel()
	if bill.CreationDate.IsZero() {
		bill.CreationDate = time.Now()
	}
	bill.CreationDate = bill.CreationDate.UTC()

	created, err := s.uow.Bills().Insert(ctx, &bill)
	if err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}

	if created {
		created, err = s.createDetails(ctx, &bill, request.Details)
		if err != nil {
			return nil, abort(ctx, s.uow, op, err)
		}
	}

	if !created {
		if err := s.uow.Rollback(ctx); err != nil {
			return nil, failure(op, err)
		}
		return resp.Affected(false, request, utils.StatusFailed), nil
	}

	if err := s.uow.Commit(ctx); err != nil {
		return nil, abort(ctx, s.uow, op, err)
	}

	utils.InfoLogger.Infof("Bill %d created for customer %s with %d lines", bill.ID, bill.CustomerID, len(bill.BillDetails))
	s.publish(ctx, bill, request)

	return resp.Affected(true, bill, utils.StatusFailed), nil
}

func (s *BillService) createDetails(ctx context.Context, bill *models.Bill, lines []dtos.CreateBillDetailRequest) (bool, error) {
	stamped := make([]dtos.CreateBillDetailRequest, len(lines))
	for i, line := range lines {
		line.BillID = bill.ID
		stamped[i] = line
	}

	detailResp, err := s.details.CreateBillDetails(ctx, stamped)
	if err != nil {
		return false, err
	}
	if details, ok := detailResp.Data.([]models.BillDetail); ok {
		bill.BillDetails = details
	}
	return detailResp.Status, nil
}

func (s *BillService) publish(ctx context.Context, bill models.Bill, request dtos.CreateBillRequest) {
	if s.publisher == nil {
		return
	}

	event := kds.NewBillCreatedEvent(kds.BillCreated{
		BillID:        bill.ID,
		CustomerID:    bill.CustomerID,
		DiningTableID: bill.DiningTableID,
		WaiterID:      bill.WaiterID,
		CreationDate:  bill.CreationDate,
		Total:         request.Total(),
		Lines:         len(request.Details),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		utils.ErrorLogger.WithError(err).WithField("bill_id", bill.ID).Error("Failed to publish bill event")
	}
}

func (s *BillService) GetBillsWithDetails(ctx context.Context, filter dtos.BillFilter) (*utils.ServiceResponse, error) {
	bills, err := s.uow.Bills().GetBillsWithDetails(ctx, filter)
	if err != nil {
		return nil, failure("GetBillsWithDetails", err)
	}
	return utils.NewServiceResponse().Listing(len(bills), bills, utils.StatusNoContent), nil
}
