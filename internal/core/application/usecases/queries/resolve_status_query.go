package queries

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrResolveStatusQueryIsNotConstructed = errors.New(
		"ResolveStatusQuery must be created via NewResolveStatusQuery constructor",
	)
)

// ResolveStatusQuery previews the composite status of a (payment, shipment) pair
// without touching any order. Operators use it to check rule tables.
type ResolveStatusQuery struct {
	payment  string
	shipment string

	guard guard.ConstructorGuard
}

func NewResolveStatusQuery(payment, shipment string) (ResolveStatusQuery, error) {
	payment = strings.TrimSpace(payment)
	shipment = strings.TrimSpace(shipment)

	var problems []error
	if payment == "" {
		problems = append(problems, errs.NewValueIsRequiredError("payment"))
	}
	if shipment == "" {
		problems = append(problems, errs.NewValueIsRequiredError("shipment"))
	}
	if err := errors.Join(problems...); err != nil {
		return ResolveStatusQuery{}, err
	}

	return ResolveStatusQuery{payment: payment, shipment: shipment, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveStatusQuery) Validate() error {
	return q.guard.Validate(ErrResolveStatusQueryIsNotConstructed)
}

type ResolveStatusQueryResponse struct {
	Payment  StatusView
	Shipment StatusView
	Status   StatusView
	Rule     status.Rule
}

type ResolveStatusQueryHandler struct {
	registry *status.Registry
}

func NewResolveStatusQueryHandler(registry *status.Registry) ResolveStatusQueryHandler {
	return ResolveStatusQueryHandler{registry: registry}
}

// Handle rejects codes outside the vocabularies and reports status.ErrNoMatchingRule for gaps.
func (h ResolveStatusQueryHandler) Handle(query ResolveStatusQuery) (*ResolveStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(
		h.registry.ValidateCode(status.AxisPayment, query.payment),
		h.registry.ValidateCode(status.AxisShipment, query.shipment),
	); err != nil {
		return nil, err
	}

	rule, err := h.registry.Match(query.payment, query.shipment)
	if err != nil {
		return nil, err
	}

	return &ResolveStatusQueryResponse{
		Payment:  viewOf(h.registry, status.AxisPayment, query.payment),
		Shipment: viewOf(h.registry, status.AxisShipment, query.shipment),
		Status:   viewOf(h.registry, status.AxisOrder, rule.Result),
		Rule:     rule,
	}, nil
}
