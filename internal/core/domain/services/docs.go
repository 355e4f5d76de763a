// Package services provides domain services that span the catalog and the
// order aggregate.
//
// The package includes:
//   - PricingEngine: resolves authoritative prices, checks stock and computes
//     subtotal + shipping = total for a cart
package services
