// Package order provides the Order aggregate whose composite status is derived
// from two independently updated signals, payment status and shipment status.
//
// The package includes:
//   - Order: the aggregate root holding the three status codes and the
//     noShippingRequired flag
//   - StatusPolicy: the read-only view of the status registry the aggregate
//     consults for defaults, code validation, resolution and terminal checks
//
// Key business rules:
//   - The composite status is always the resolver output for the current
//     (payment, shipment) pair
//   - Once the composite status is terminal the order never changes again
//   - A failed change (unknown code, missing rule) leaves the order untouched
//   - Cancelation requires both the payment and the shipment status to be cancelable
package order
