package status

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/shipment"
)

// Option tunes LoadRegistry.
type Option func(*options)

type options struct {
	tieBreak TieBreak
}

// WithTieBreak selects how equally specific rules are resolved.
func WithTieBreak(tieBreak TieBreak) Option {
	return func(o *options) {
		o.tieBreak = tieBreak
	}
}

// Registry is the immutable result of merging and validating all contributions.
type Registry struct {
	payment  *Vocabulary
	shipment *Vocabulary
	order    *Vocabulary
	rules    *RuleTable
	carriers []shipment.Carrier
	sources  []string
}

// LoadRegistry merges contributions in order and validates the result as a whole.
// Every problem found is reported; the returned error wraps ErrConfig.
//
// Example:
//
//	registry, err := status.LoadRegistry(
//	    []status.Contribution{status.DefaultContribution(), overrides},
//	    status.WithTieBreak(status.LastRegisteredWins),
//	)
//	if err != nil {
//	    log.Fatalf("refusing to start: %v", err)
//	}
func LoadRegistry(contributions []Contribution, opts ...Option) (*Registry, error) {
	o := options{tieBreak: LastRegisteredWins}
	for _, opt := range opts {
		opt(&o)
	}

	payment, shipments, orders := newDraft(), newDraft(), newDraft()
	carrierDrafts := make(map[string]*CarrierConfig)
	var carrierOrder []string
	var ruleConfigs []RuleConfig
	sources := make([]string, 0, len(contributions))

	for _, c := range contributions {
		sources = append(sources, c.Source)
		payment.merge(c.PaymentStatuses)
		shipments.merge(c.ShipmentStatuses)
		orders.merge(c.OrderStatuses)
		ruleConfigs = append(ruleConfigs, c.Rules...)

		for _, code := range sortedKeys(c.Carriers) {
			cfg := c.Carriers[code]
			existing, ok := carrierDrafts[code]
			if !ok {
				existing = &CarrierConfig{}
				carrierDrafts[code] = existing
				carrierOrder = append(carrierOrder, code)
			}
			if cfg.Name != "" {
				existing.Name = cfg.Name
			}
			if cfg.TrackingURL != "" {
				existing.TrackingURL = cfg.TrackingURL
			}
		}
	}

	var problems []error

	vocabularies := make(map[Axis]*Vocabulary, 3)
	for _, entry := range []struct {
		axis  Axis
		draft *draft
	}{
		{AxisPayment, payment},
		{AxisShipment, shipments},
		{AxisOrder, orders},
	} {
		definitions := entry.draft.definitions()
		problems = append(problems, validateVocabulary(entry.axis, definitions)...)
		vocabularies[entry.axis] = newVocabulary(entry.axis, definitions)
	}

	problems = append(problems, validateTransitions(vocabularies[AxisOrder])...)

	rules := make([]Rule, 0, len(ruleConfigs))
	for _, rc := range ruleConfigs {
		rule := Rule(rc)
		if err := validateRule(rc, vocabularies); err != nil {
			problems = append(problems, err)
			continue
		}
		rules = append(rules, rule)
	}

	carriers := make([]shipment.Carrier, 0, len(carrierOrder))
	for _, code := range carrierOrder {
		cfg := carrierDrafts[code]
		carrier, err := shipment.NewCarrier(code, cfg.Name, cfg.TrackingURL)
		if err != nil {
			ce := newConfigError(ErrMalformedVocabulary, "", code, "carrier")
			ce.Cause = err
			problems = append(problems, ce)
			continue
		}
		carriers = append(carriers, carrier)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Registry{
		payment:  vocabularies[AxisPayment],
		shipment: vocabularies[AxisShipment],
		order:    vocabularies[AxisOrder],
		rules:    NewRuleTable(rules, o.tieBreak),
		carriers: carriers,
		sources:  sources,
	}, nil
}

func validateVocabulary(axis Axis, definitions []Definition) []error {
	var problems []error
	var defaults []string

	for _, d := range definitions {
		if err := d.validateSchema(); err != nil {
			ce := newConfigError(ErrMalformedVocabulary, axis, d.Code, "schema")
			ce.Cause = err
			problems = append(problems, ce)
		}
		if d.IsDefault {
			defaults = append(defaults, d.Code)
		}
		if axis != AxisOrder && (len(d.Next) > 0 || d.Terminal) {
			problems = append(problems, newConfigError(ErrMalformedVocabulary, axis, d.Code,
				"next and terminal are only allowed on order statuses"))
		}
	}

	switch {
	case len(defaults) == 0:
		problems = append(problems, newConfigError(ErrMissingDefault, axis, "", "exactly one status must be the default"))
	case len(defaults) > 1:
		problems = append(problems, newConfigError(ErrDuplicateDefault, axis, "",
			fmt.Sprintf("%v are all flagged as default", defaults)))
	}

	return problems
}

func validateTransitions(orders *Vocabulary) []error {
	var problems []error
	terminal := 0
	for _, d := range orders.definitions {
		if d.Terminal {
			terminal++
		}
		if d.Terminal && len(d.Next) > 0 {
			problems = append(problems, newConfigError(ErrMalformedVocabulary, AxisOrder, d.Code,
				"a terminal status cannot declare next statuses"))
		}
		for _, next := range d.Next {
			if !orders.Has(next) {
				problems = append(problems, newConfigError(ErrInvalidStatusReference, AxisOrder, d.Code,
					fmt.Sprintf("next status %q is not defined", next)))
			}
		}
	}
	if terminal == 0 && len(orders.definitions) > 0 {
		problems = append(problems, newConfigError(ErrMalformedVocabulary, AxisOrder, "",
			"at least one status must be terminal"))
	}
	return problems
}

func validateRule(rc RuleConfig, vocabularies map[Axis]*Vocabulary) error {
	rule := Rule(rc)
	if err := rc.Validate(); err != nil {
		ce := newConfigError(ErrMalformedVocabulary, "", rule.Key(), "rule")
		ce.Cause = err
		return ce
	}

	var problems []error
	if rc.Payment != Wildcard && !vocabularies[AxisPayment].Has(rc.Payment) {
		problems = append(problems, newConfigError(ErrInvalidStatusReference, AxisPayment, rc.Payment,
			fmt.Sprintf("referenced by rule %s", rule)))
	}
	if rc.Shipment != Wildcard && !vocabularies[AxisShipment].Has(rc.Shipment) {
		problems = append(problems, newConfigError(ErrInvalidStatusReference, AxisShipment, rc.Shipment,
			fmt.Sprintf("referenced by rule %s", rule)))
	}
	if !vocabularies[AxisOrder].Has(rc.Result) {
		problems = append(problems, newConfigError(ErrInvalidStatusReference, AxisOrder, rc.Result,
			fmt.Sprintf("referenced by rule %s", rule)))
	}
	return errors.Join(problems...)
}

// Payment returns the payment status vocabulary.
func (r *Registry) Payment() *Vocabulary {
	return r.payment
}

// Shipment returns the shipment status vocabulary.
func (r *Registry) Shipment() *Vocabulary {
	return r.shipment
}

// Order returns the composite order status vocabulary.
func (r *Registry) Order() *Vocabulary {
	return r.order
}

// Vocabulary returns the vocabulary of axis.
func (r *Registry) Vocabulary(axis Axis) (*Vocabulary, error) {
	switch axis {
	case AxisPayment:
		return r.payment, nil
	case AxisShipment:
		return r.shipment, nil
	case AxisOrder:
		return r.order, nil
	default:
		return nil, axis.Validate()
	}
}

// Resolve derives the composite order status of a (payment, shipment) pair.
func (r *Registry) Resolve(payment, shipment string) (string, error) {
	return r.rules.Resolve(payment, shipment)
}

// Match returns the rule Resolve would apply.
func (r *Registry) Match(payment, shipment string) (Rule, error) {
	return r.rules.Match(payment, shipment)
}

// Rules returns the psoMapping in registration order.
func (r *Registry) Rules() []Rule {
	return r.rules.Rules()
}

// DefaultCode returns the default status code of axis, or "" for an unknown axis.
func (r *Registry) DefaultCode(axis Axis) string {
	v, err := r.Vocabulary(axis)
	if err != nil {
		return ""
	}
	return v.Default().Code
}

// ValidateCode returns an UnknownStatusCodeError when code is not defined on axis.
func (r *Registry) ValidateCode(axis Axis, code string) error {
	v, err := r.Vocabulary(axis)
	if err != nil {
		return err
	}
	if !v.Has(code) {
		return &UnknownStatusCodeError{Axis: axis, Code: code}
	}
	return nil
}

// IsTerminal reports whether an order status admits no further transitions.
func (r *Registry) IsTerminal(orderStatus string) bool {
	d, ok := r.order.Get(orderStatus)
	return ok && d.Terminal
}

// IsCancelable reports whether code on axis allows the order to be canceled.
func (r *Registry) IsCancelable(axis Axis, code string) bool {
	v, err := r.Vocabulary(axis)
	if err != nil {
		return false
	}
	d, ok := v.Get(code)
	return ok && d.IsCancelable
}

// Carrier looks up a carrier by code.
func (r *Registry) Carrier(code string) (shipment.Carrier, bool) {
	for _, c := range r.carriers {
		if c.Code() == code {
			return c, true
		}
	}
	return shipment.Carrier{}, false
}

// Carriers returns the configured carriers in load order.
func (r *Registry) Carriers() []shipment.Carrier {
	out := make([]shipment.Carrier, len(r.carriers))
	copy(out, r.carriers)
	return out
}

// Sources lists the contribution sources in load order.
func (r *Registry) Sources() []string {
	out := make([]string, len(r.sources))
	copy(out, r.sources)
	return out
}
