// Package analytics computes the dashboard aggregations served by the API:
// basic frequency stats, the seven-facet advanced report, and the
// trend/prediction heuristic.
//
// Every aggregation is a read-only pass over the store. Missing facets and
// unparseable timestamps exclude a record from the specific bucket that
// needed the field, never from the whole pass. Basic and advanced reports
// are memoized, which is safe because the store never changes after load;
// the trend report depends on the caller's clock and is computed per call.
package analytics
