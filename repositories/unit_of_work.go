package repositories

import (
	"context"
	"sync"

	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

// UnitOfWork groups the repositories of one logical operation behind a
// single transaction. Begin while a transaction is open joins it; only the
// outermost Commit writes. Rollback always discards the whole transaction.
// Close leaves the current scope without writing anything. All four are
// no-ops when no transaction is open.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Close(ctx context.Context) error

	Customers() CustomerRepository
	Waiters() WaiterRepository
	Foods() FoodRepository
	DiningTables() Repository[models.DiningTable]
	Bills() BillRepository
	BillDetails() Repository[models.BillDetail]
}

type GormUnitOfWork struct {
	db *gorm.DB

	mu    sync.Mutex
	tx    *gorm.DB
	depth int

	customers    *GormCustomerRepository
	waiters      *GormWaiterRepository
	foods        *GormFoodRepository
	diningTables *GormRepository[models.DiningTable]
	bills        *GormBillRepository
	billDetails  *GormRepository[models.BillDetail]
}

var _ UnitOfWork = (*GormUnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	uow := &GormUnitOfWork{db: db}
	uow.customers = NewCustomerRepository(uow.conn)
	uow.waiters = NewWaiterRepository(uow.conn)
	uow.foods = NewFoodRepository(uow.conn)
	uow.diningTables = NewRepository[models.DiningTable](uow.conn)
	uow.bills = NewBillRepository(uow.conn)
	uow.billDetails = NewRepository[models.BillDetail](uow.conn)
	return uow
}

func (u *GormUnitOfWork) conn() *gorm.DB {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx != nil {
		u.depth++
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	u.depth = 1
	return nil
}

func (u *GormUnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx == nil {
		return nil
	}
	if u.depth > 1 {
		u.depth--
		return nil
	}

	err := u.tx.Commit().Error
	u.reset()
	return err
}

func (u *GormUnitOfWork) Rollback(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.reset()
	return err
}

func (u *GormUnitOfWork) Close(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.tx == nil {
		return nil
	}
	if u.depth > 1 {
		u.depth--
		return nil
	}

	// nothing was written in this scope, release the connection
	err := u.tx.Rollback().Error
	u.reset()
	return err
}

// inTransaction reports whether a transaction is currently open.
func (u *GormUnitOfWork) inTransaction() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tx != nil
}

func (u *GormUnitOfWork) reset() {
	u.tx = nil
	u.depth = 0
}

func (u *GormUnitOfWork) Customers() CustomerRepository { return u.customers }
func (u *GormUnitOfWork) Waiters() WaiterRepository { return u.waiters }
func (u *GormUnitOfWork) Foods() FoodRepository { return u.foods }
func (u *GormUnitOfWork) DiningTables() Repository[models.DiningTable] { return u.diningTables }
func (u *GormUnitOfWork) Bills() BillRepository { return u.bills }
func (u *GormUnitOfWork) BillDetails() Repository[models.BillDetail] { return u.billDetails }
