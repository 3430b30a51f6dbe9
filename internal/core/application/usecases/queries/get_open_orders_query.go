package queries

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves orders whose composite status is not terminal,
// oldest first. Terminal codes come from the loaded registry.
//
// Example:
//
//	query, _ := NewGetOpenOrdersQuery(100)
//	handler := NewGetOpenOrdersQueryHandler(db, registry)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
type GetOpenOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetOpenOrdersQuery(limit int) (GetOpenOrdersQuery, error) {
	if limit <= 0 {
		return GetOpenOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("%d is not greater than 0", limit))
	}

	return GetOpenOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

func (q GetOpenOrdersQuery) Limit() int {
	return q.limit
}

// GetOpenOrdersQueryResponse is one row of the open orders list.
type GetOpenOrdersQueryResponse struct {
	ID             kernel.UUID
	PaymentStatus  StatusView
	ShipmentStatus StatusView
	Status         StatusView
}
