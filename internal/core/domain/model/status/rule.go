package status

import (
	"fmt"
	"strings"
)

// Rule maps a (payment, shipment) pattern pair to an order status code.
// Either pattern may be Wildcard.
type Rule struct {
	Payment  string
	Shipment string
	Result   string
}

// Key renders the rule pattern the way it is written in configuration, e.g. "paid:*".
func (r Rule) Key() string {
	return r.Payment + ":" + r.Shipment
}

func (r Rule) String() string {
	return r.Key() + " -> " + r.Result
}

// TieBreak decides which of two equally specific rules is kept.
type TieBreak int

const (
	LastRegisteredWins TieBreak = iota
	FirstRegisteredWins
)

// ParseTieBreak accepts "last" (default) or "first".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return LastRegisteredWins, nil
	case "first":
		return FirstRegisteredWins, nil
	default:
		return LastRegisteredWins, fmt.Errorf("unknown rule tie-break %q", s)
	}
}

type pair struct {
	payment  string
	shipment string
}

// RuleTable is the psoMapping compiled into one lookup per specificity tier.
type RuleTable struct {
	rules      []Rule
	exact      map[pair]Rule
	byPayment  map[string]Rule
	byShipment map[string]Rule
	universal  *Rule
}

// NewRuleTable indexes rules in registration order.
func NewRuleTable(rules []Rule, tieBreak TieBreak) *RuleTable {
	t := &RuleTable{
		rules:      make([]Rule, 0, len(rules)),
		exact:      make(map[pair]Rule),
		byPayment:  make(map[string]Rule),
		byShipment: make(map[string]Rule),
	}

	for _, r := range rules {
		t.rules = append(t.rules, r)

		switch {
		case r.Payment != Wildcard && r.Shipment != Wildcard:
			store(t.exact, pair{payment: r.Payment, shipment: r.Shipment}, r, tieBreak)
		case r.Payment != Wildcard:
			store(t.byPayment, r.Payment, r, tieBreak)
		case r.Shipment != Wildcard:
			store(t.byShipment, r.Shipment, r, tieBreak)
		default:
			if t.universal == nil || tieBreak == LastRegisteredWins {
				universal := r
				t.universal = &universal
			}
		}
	}

	return t
}

func store[K comparable](m map[K]Rule, key K, r Rule, tieBreak TieBreak) {
	if _, exists := m[key]; exists && tieBreak == FirstRegisteredWins {
		return
	}
	m[key] = r
}

// Match returns the most specific rule for the pair.
func (t *RuleTable) Match(payment, shipment string) (Rule, error) {
	if r, ok := t.exact[pair{payment: payment, shipment: shipment}]; ok {
		return r, nil
	}
	if r, ok := t.byPayment[payment]; ok {
		return r, nil
	}
	if r, ok := t.byShipment[shipment]; ok {
		return r, nil
	}
	if t.universal != nil {
		return *t.universal, nil
	}
	return Rule{}, &NoMatchingRuleError{Payment: payment, Shipment: shipment}
}

// Resolve returns the composite order status for the pair. It has no side effects.
func (t *RuleTable) Resolve(payment, shipment string) (string, error) {
	r, err := t.Match(payment, shipment)
	if err != nil {
		return "", err
	}
	return r.Result, nil
}

// Rules returns the rules in registration order.
func (t *RuleTable) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}
