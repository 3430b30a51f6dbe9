package status

func flag(b bool) *bool {
	return &b
}

// DefaultContribution returns the compiled-in vocabularies, psoMapping and carriers.
// Deployment overrides and extensions are merged on top of it.
func DefaultContribution() Contribution {
	return Contribution{
		Source: "core",
		PaymentStatuses: map[string]StatusConfig{
			PaymentPending:  {Name: "Pending", Badge: "default", IsDefault: flag(true), IsCancelable: flag(true)},
			PaymentPaid:     {Name: "Paid", Badge: "success", IsCancelable: flag(true)},
			PaymentCanceled: {Name: "Canceled", Badge: "critical", IsCancelable: flag(false)},
			PaymentRefunded: {Name: "Refunded", Badge: "attention", IsCancelable: flag(false)},
		},
		ShipmentStatuses: map[string]StatusConfig{
			ShipmentPending:    {Name: "Pending", Badge: "default", IsDefault: flag(true), IsCancelable: flag(true)},
			ShipmentProcessing: {Name: "Processing", Badge: "attention", IsCancelable: flag(true)},
			ShipmentShipped:    {Name: "Shipped", Badge: "attention", IsCancelable: flag(false)},
			ShipmentDelivered:  {Name: "Delivered", Badge: "success", IsCancelable: flag(false)},
			ShipmentCanceled:   {Name: "Canceled", Badge: "critical", IsCancelable: flag(false)},
		},
		OrderStatuses: map[string]StatusConfig{
			OrderNew: {
				Name: "New", Badge: "default", IsDefault: flag(true), IsCancelable: flag(true),
				Next: []string{OrderProcessing, OrderCanceled},
			},
			OrderProcessing: {
				Name: "Processing", Badge: "attention", IsCancelable: flag(true),
				Next: []string{OrderCompleted, OrderCanceled, OrderClosed},
			},
			OrderCompleted: {
				Name: "Completed", Badge: "success",
				Next: []string{OrderClosed},
			},
			OrderCanceled: {Name: "Canceled", Badge: "critical", Terminal: flag(true)},
			OrderClosed:   {Name: "Closed", Badge: "default", Terminal: flag(true)},
		},
		// Declaration order deliberately puts specific rules after general ones;
		// resolution does not depend on it.
		Rules: []RuleConfig{
			{Payment: PaymentPending, Shipment: ShipmentPending, Result: OrderNew},
			{Payment: PaymentPending, Shipment: Wildcard, Result: OrderProcessing},
			{Payment: PaymentPaid, Shipment: Wildcard, Result: OrderProcessing},
			{Payment: PaymentPaid, Shipment: ShipmentDelivered, Result: OrderCompleted},
			{Payment: PaymentCanceled, Shipment: Wildcard, Result: OrderProcessing},
			{Payment: PaymentCanceled, Shipment: ShipmentCanceled, Result: OrderCanceled},
			{Payment: PaymentRefunded, Shipment: Wildcard, Result: OrderClosed},
		},
		Carriers: map[string]CarrierConfig{
			"default": {Name: "Default"},
			"fedex":   {Name: "FedEx", TrackingURL: "https://www.fedex.com/fedextrack/?trknbr={trackingNumber}"},
			"usps":    {Name: "USPS", TrackingURL: "https://tools.usps.com/go/TrackConfirmAction?tLabels={trackingNumber}"},
			"ups":     {Name: "UPS", TrackingURL: "https://www.ups.com/track?tracknum={trackingNumber}"},
		},
	}
}
