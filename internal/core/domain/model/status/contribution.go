package status

import (
	"maps"
	"regexp"
	"slices"

	validation "github.com/jellydator/validation"
)

var (
	codePattern    = regexp.MustCompile(`^[a-zA-Z_]+$`)
	patternPattern = regexp.MustCompile(`^(\*|[a-zA-Z_]+)$`)
)

// Contribution is one configuration fragment merged into the Registry.
// Fragments are applied in the order they are passed to LoadRegistry.
type Contribution struct {
	Source           string                   `yaml:"source"`
	PaymentStatuses  map[string]StatusConfig  `yaml:"paymentStatus"`
	ShipmentStatuses map[string]StatusConfig  `yaml:"shipmentStatus"`
	OrderStatuses    map[string]StatusConfig  `yaml:"orderStatus"`
	Rules            []RuleConfig             `yaml:"psoMapping"`
	Carriers         map[string]CarrierConfig `yaml:"carriers"`
}

// StatusConfig is the configurable shape of a status. Zero fields of a later
// fragment leave the value of an earlier fragment untouched.
type StatusConfig struct {
	Name         string   `yaml:"name"`
	Badge        string   `yaml:"badge"`
	IsDefault    *bool    `yaml:"isDefault"`
	IsCancelable *bool    `yaml:"isCancelable"`
	Terminal     *bool    `yaml:"terminal"`
	Next         []string `yaml:"next"`
}

// RuleConfig is one psoMapping row.
type RuleConfig struct {
	Payment  string `yaml:"payment"`
	Shipment string `yaml:"shipment"`
	Result   string `yaml:"result"`
}

// Validate checks the row shape; references are checked against the merged vocabularies.
func (r RuleConfig) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Payment, validation.Required, validation.Match(patternPattern)),
		validation.Field(&r.Shipment, validation.Required, validation.Match(patternPattern)),
		validation.Field(&r.Result, validation.Required, validation.Match(codePattern)),
	)
}

// CarrierConfig is the configurable shape of a carrier.
type CarrierConfig struct {
	Name        string `yaml:"name"`
	TrackingURL string `yaml:"trackingUrl"`
}

func (d Definition) validateSchema() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Code, validation.Required, validation.Match(codePattern)),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Badge, validation.Required),
		validation.Field(&d.Next, validation.Each(validation.Match(codePattern))),
	)
}

// draft accumulates merged definitions of one axis in first-seen order.
type draft struct {
	order []string
	items map[string]*Definition
}

func newDraft() *draft {
	return &draft{items: make(map[string]*Definition)}
}

func (d *draft) merge(fragment map[string]StatusConfig) {
	for _, code := range sortedKeys(fragment) {
		cfg := fragment[code]
		def, ok := d.items[code]
		if !ok {
			def = &Definition{Code: code}
			d.items[code] = def
			d.order = append(d.order, code)
		}

		if cfg.Name != "" {
			def.Name = cfg.Name
		}
		if cfg.Badge != "" {
			def.Badge = cfg.Badge
		}
		if cfg.IsDefault != nil {
			def.IsDefault = *cfg.IsDefault
		}
		if cfg.IsCancelable != nil {
			def.IsCancelable = *cfg.IsCancelable
		}
		if cfg.Terminal != nil {
			def.Terminal = *cfg.Terminal
		}
		if cfg.Next != nil {
			def.Next = slices.Clone(cfg.Next)
		}
	}
}

func (d *draft) definitions() []Definition {
	out := make([]Definition, 0, len(d.order))
	for _, code := range d.order {
		out = append(out, d.items[code].clone())
	}
	return out
}

// sortedKeys gives map-shaped fragments a deterministic merge order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
