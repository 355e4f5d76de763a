package order

import "fmt"

// ReceiptPath returns the storage-relative receipt location for an order:
// YYYY/MM/DD/<order-id>.pdf, partitioned by the UTC creation date and always
// separated by forward slashes.
func ReceiptPath(o *Order) string {
	created := o.CreatedAt().UTC()
	return fmt.Sprintf("%04d/%02d/%02d/%s.pdf", created.Year(), int(created.Month()), created.Day(), o.ID())
}
