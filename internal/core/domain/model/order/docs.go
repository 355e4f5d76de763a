// Package order provides the Order aggregate: an order, its line items and the
// shipping snapshot frozen at checkout.
//
// The package includes:
//   - Order: the aggregate root, persisted together with its line items
//   - LineItem: a priced product entry frozen into an order
//   - ShippingSnapshot: immutable copy of address, method, shipping cost, subtotal and buyer contact
//   - Status: Draft or Completed, with Draft -> Completed as the only transition
//   - ReceiptPath: storage-relative receipt location derived from the creation date
//
// Key business rules:
//   - total == Σ(unit price × quantity) + shipping cost, checked on construction and on restore
//   - line items are never edited; they can only be appended while the order is Draft
//   - the receipt path is set once, on a Completed order, without touching monetary fields
package order
