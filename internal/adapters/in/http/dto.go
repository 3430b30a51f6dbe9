package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrder struct {
	ID                 string `json:"id"`
	NoShippingRequired bool   `json:"noShippingRequired"`
}

type StatusChange struct {
	Code string `json:"code"`
}

type NewShipment struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	ItemCount      int    `json:"itemCount"`
}

// Order is returned by the write endpoints.
type Order struct {
	ID                 string `json:"id"`
	PaymentStatus      string `json:"paymentStatus"`
	ShipmentStatus     string `json:"shipmentStatus"`
	Status             string `json:"status"`
	NoShippingRequired bool   `json:"noShippingRequired"`
}

type Status struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Badge string `json:"badge,omitempty"`
}

type Shipment struct {
	ID             string    `json:"id"`
	Carrier        string    `json:"carrier,omitempty"`
	CarrierName    string    `json:"carrierName,omitempty"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	TrackingLink   string    `json:"trackingLink,omitempty"`
	ItemCount      int       `json:"itemCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderDetails is returned by GET /api/v1/orders/:id.
type OrderDetails struct {
	ID                 string     `json:"id"`
	PaymentStatus      Status     `json:"paymentStatus"`
	ShipmentStatus     Status     `json:"shipmentStatus"`
	Status             Status     `json:"status"`
	Terminal           bool       `json:"terminal"`
	NoShippingRequired bool       `json:"noShippingRequired"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	Shipments          []Shipment `json:"shipments"`
}

type OpenOrder struct {
	ID             string `json:"id"`
	PaymentStatus  Status `json:"paymentStatus"`
	ShipmentStatus Status `json:"shipmentStatus"`
	Status         Status `json:"status"`
}

type Definition struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Badge        string   `json:"badge,omitempty"`
	IsDefault    bool     `json:"isDefault"`
	IsCancelable bool     `json:"isCancelable"`
	Terminal     bool     `json:"terminal,omitempty"`
	Next         []string `json:"next,omitempty"`
}

type Rule struct {
	Payment  string `json:"payment"`
	Shipment string `json:"shipment"`
	Result   string `json:"result"`
}

type Carrier struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	TrackingURL string `json:"trackingUrl,omitempty"`
}

type Statuses struct {
	PaymentStatus  []Definition `json:"paymentStatus"`
	ShipmentStatus []Definition `json:"shipmentStatus"`
	OrderStatus    []Definition `json:"orderStatus"`
	PsoMapping     []Rule       `json:"psoMapping"`
	Carriers       []Carrier    `json:"carriers"`
	Sources        []string     `json:"sources"`
}

type Resolution struct {
	Payment  Status `json:"payment"`
	Shipment Status `json:"shipment"`
	Status   Status `json:"status"`
	Rule     string `json:"rule"`
}

func toOrder(o *order.Order) Order {
	return Order{
		ID:                 o.ID().String(),
		PaymentStatus:      o.PaymentStatus(),
		ShipmentStatus:     o.ShipmentStatus(),
		Status:             o.Status(),
		NoShippingRequired: o.NoShippingRequired(),
	}
}

func toStatus(v queries.StatusView) Status {
	return Status{Code: v.Code, Name: v.Name, Badge: v.Badge}
}

func toOrderDetails(r *queries.GetOrderQueryResponse) OrderDetails {
	shipments := make([]Shipment, len(r.Shipments))
	for i, s := range r.Shipments {
		shipments[i] = Shipment{
			ID:             s.ID.String(),
			Carrier:        s.Carrier,
			CarrierName:    s.CarrierName,
			TrackingNumber: s.TrackingNumber,
			TrackingLink:   s.TrackingLink,
			ItemCount:      s.ItemCount,
			CreatedAt:      s.CreatedAt,
		}
	}

	return OrderDetails{
		ID:                 r.ID.String(),
		PaymentStatus:      toStatus(r.PaymentStatus),
		ShipmentStatus:     toStatus(r.ShipmentStatus),
		Status:             toStatus(r.Status),
		Terminal:           r.Terminal,
		NoShippingRequired: r.NoShippingRequired,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		Shipments:          shipments,
	}
}

func toDefinitions(definitions []status.Definition) []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		out[i] = Definition{
			Code:         d.Code,
			Name:         d.Name,
			Badge:        d.Badge,
			IsDefault:    d.IsDefault,
			IsCancelable: d.IsCancelable,
			Terminal:     d.Terminal,
			Next:         d.Next,
		}
	}
	return out
}

func toStatuses(r *queries.GetStatusesQueryResponse) Statuses {
	rules := make([]Rule, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = Rule{Payment: rule.Payment, Shipment: rule.Shipment, Result: rule.Result}
	}
	carriers := make([]Carrier, len(r.Carriers))
	for i, c := range r.Carriers {
		carriers[i] = Carrier{Code: c.Code, Name: c.Name, TrackingURL: c.TrackingURL}
	}

	return Statuses{
		PaymentStatus:  toDefinitions(r.Payment),
		ShipmentStatus: toDefinitions(r.Shipment),
		OrderStatus:    toDefinitions(r.Order),
		PsoMapping:     rules,
		Carriers:       carriers,
		Sources:        r.Sources,
	}
}
