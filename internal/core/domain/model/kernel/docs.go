// Package kernel provides the value objects shared by every checkout aggregate.
//
// The package includes:
//   - UUID: identifier for orders, line items and buyers
//   - Money: non-negative decimal amount used for prices, subtotals and totals
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate.
package kernel
