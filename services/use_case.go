package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/restaurant-api/repositories"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

// failure logs err once and wraps it as the operation's UseCaseError. An
// error already raised by a nested use case keeps its cause under the outer
// operation's name.
func failure(op string, err error) error {
	if inner, ok := utils.AsUseCaseError(err); ok {
		return utils.NewUseCaseError(op, inner.Err)
	}
	utils.ErrorLogger.WithError(err).WithField("op", op).Error("use case failed")
	return utils.NewUseCaseError(op, err)
}

// abort discards the open transaction before reporting err.
func abort(ctx context.Context, uow repositories.UnitOfWork, op string, err error) error {
	if rbErr := uow.Rollback(ctx); rbErr != nil {
		utils.ErrorLogger.WithError(rbErr).WithField("op", op).Error("rollback failed")
	}
	return failure(op, err)
}

// reject closes the transaction without writing and answers BadRequest.
func reject(ctx context.Context, uow repositories.UnitOfWork, op string, resp *utils.ServiceResponse, message string) (*utils.ServiceResponse, error) {
	if err := uow.Close(ctx); err != nil {
		return nil, failure(op, err)
	}
	return resp.Reject(message), nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// commitWrite finishes a single-row write started inside an open
// transaction. A unique violation raised by the store is turned into a
// rejection with conflictMessage after the transaction is rolled back. Any
// other store error, foreign key violations included, is a failure.
func commitWrite(ctx context.Context, uow repositories.UnitOfWork, op string, resp *utils.ServiceResponse,
	data interface{}, write func() (bool, error), failMessage, conflictMessage string) (*utils.ServiceResponse, error) {
	ok, err := write()
	if err != nil && isUniqueViolation(err) {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			return nil, failure(op, rbErr)
		}
		utils.InfoLogger.WithField("op", op).Infof("rejected by store constraint: %v", err)
		return resp.Reject(conflictMessage), nil
	}
	if err != nil {
		return nil, abort(ctx, uow, op, err)
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, abort(ctx, uow, op, err)
	}
	return resp.Affected(ok, data, failMessage), nil
}
