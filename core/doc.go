// Package core defines the domain model for the Argus alert analytics engine.
//
// The central type is Alert, one security event with a handful of required
// fields and several optional facets (resource, network, threat intelligence,
// risk, compliance, cost, user context, metadata). Facets are pointers:
// absence is a first-class state, not a zero value, and every consumer of a
// facet must tolerate nil.
//
// The package also provides AlertFilters, the predicate applied by the store
// when answering paged queries, and the constants shared across the
// aggregation layer (severity and status vocabularies, risk thresholds,
// counter sentinel keys).
package core
