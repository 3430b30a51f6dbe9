// Package shipment models the shipments attached to an order and the carriers
// that transport them.
//
// A shipment record is created either by an admin action (carrier and tracking
// number known) or automatically, with zero items and no carrier, for orders that
// do not require physical shipping.
package shipment
