// Package services provides stateless domain services that implement logic
// spanning multiple domain concepts.
//
// The package includes:
//   - RateResolver: deterministic shipment price computation from rate cards,
//     surcharges, contract volume tiers and promotional campaigns
//   - MetricsAggregator: pure aggregation of shipment facts into dashboard
//     metric buckets
//
// Both services are side-effect free: all configuration and facts are passed
// in explicitly, there is no hidden process-wide state, and identical inputs
// always produce identical outputs.
package services
