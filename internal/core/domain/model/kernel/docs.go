// Package kernel provides shared domain primitives for the order management model.
//
// The package includes:
//   - UUID: A value object for order and shipment identifiers with validation and comparison
//
// Primitives are immutable and safe for concurrent use.
package kernel
