package kds

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const EventBillCreated = "bill_created"

type Event struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// BillCreated is the payload sent to the kitchen when a bill is stored.
type BillCreated struct {
	BillID        uint            `json:"bill_id"`
	CustomerID    string          `json:"customer_id"`
	DiningTableID uint            `json:"dining_table_id"`
	WaiterID      uint            `json:"waiter_id"`
	CreationDate  time.Time       `json:"creation_date"`
	Total         decimal.Decimal `json:"total"`
	Lines         int             `json:"lines"`
}

func NewBillCreatedEvent(payload BillCreated) Event {
	return Event{Event: EventBillCreated, Data: payload, Timestamp: time.Now().UTC()}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Publishers fans an event out to every publisher and joins their errors.
type Publishers []Publisher

func (p Publishers) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, publisher := range p {
		if publisher == nil {
			continue
		}
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
