package queries

import (
	"errors"

	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/guard"
)

var (
	ErrGetStatusesQueryIsNotConstructed = errors.New(
		"GetStatusesQuery must be created via NewGetStatusesQuery constructor",
	)
)

// GetStatusesQuery describes the loaded registry: the three vocabularies, the
// psoMapping rules, the carriers and the configuration sources merged into it.
type GetStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusesQuery() GetStatusesQuery {
	return GetStatusesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusesQueryIsNotConstructed)
}

type GetStatusesQueryResponse struct {
	Payment  []status.Definition
	Shipment []status.Definition
	Order    []status.Definition
	Rules    []status.Rule
	Carriers []CarrierResponse
	Sources  []string
}

type CarrierResponse struct {
	Code        string
	Name        string
	TrackingURL string
}

// GetStatusesQueryHandler reads the registry only; it never touches the database.
type GetStatusesQueryHandler struct {
	registry *status.Registry
}

func NewGetStatusesQueryHandler(registry *status.Registry) GetStatusesQueryHandler {
	return GetStatusesQueryHandler{registry: registry}
}

func (h GetStatusesQueryHandler) Handle(query GetStatusesQuery) (*GetStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]CarrierResponse, 0)
	for _, c := range h.registry.Carriers() {
		carriers = append(carriers, CarrierResponse{Code: c.Code(), Name: c.Name(), TrackingURL: c.TrackingURL()})
	}

	return &GetStatusesQueryResponse{
		Payment:  h.registry.Payment().Definitions(),
		Shipment: h.registry.Shipment().Definitions(),
		Order:    h.registry.Order().Definitions(),
		Rules:    h.registry.Rules(),
		Carriers: carriers,
		Sources:  h.registry.Sources(),
	}, nil
}
