package shipment

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"shop/internal/pkg/errs"
)

// TrackingNumberPlaceholder is substituted in a carrier tracking URL template.
const TrackingNumberPlaceholder = "{trackingNumber}"

var carrierCodePattern = regexp.MustCompile(`^[a-zA-Z_]+$`)

// Carrier is a shipping company a shipment can be handed to.
type Carrier struct {
	code        string
	name        string
	trackingURL string
}

// NewCarrier validates and builds a Carrier. trackingURL is optional.
func NewCarrier(code, name, trackingURL string) (Carrier, error) {
	var problems []error
	if !carrierCodePattern.MatchString(code) {
		problems = append(problems, errs.NewValueIsInvalidError("carrier code"))
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("carrier name"))
	}
	if err := errors.Join(problems...); err != nil {
		return Carrier{}, err
	}

	return Carrier{code: code, name: name, trackingURL: trackingURL}, nil
}

func (c Carrier) Code() string {
	return c.code
}

func (c Carrier) Name() string {
	return c.name
}

// TrackingURL returns the raw template.
func (c Carrier) TrackingURL() string {
	return c.trackingURL
}

// TrackingLink renders the template for trackingNumber. It is empty when the
// carrier has no template or no tracking number is known.
func (c Carrier) TrackingLink(trackingNumber string) string {
	if c.trackingURL == "" || trackingNumber == "" {
		return ""
	}
	return strings.ReplaceAll(c.trackingURL, TrackingNumberPlaceholder, url.QueryEscape(trackingNumber))
}
