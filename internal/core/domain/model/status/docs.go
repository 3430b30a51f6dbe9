// Package status holds the configurable status vocabularies of the store and the
// psoMapping rule table that derives the composite order status from a
// (payment status, shipment status) pair.
//
// A Registry is assembled once at startup from an ordered list of Contributions
// (compiled-in defaults first, deployment overrides and extensions after),
// validated as a whole and never mutated afterwards. It is safe for concurrent use.
//
// Resolution is specificity-first, independent of the order rules were declared in:
//
//	payment:shipment  >  payment:*  >  *:shipment  >  *:*
//
// Two rules of the same specificity are tie-broken by registration order,
// last registered wins unless WithTieBreak(FirstRegisteredWins) is given.
package status
