package catalog

// Snapshot is one consistent view of the products and shipping methods. A
// pricing run reads everything from the same Snapshot, so a reload in the
// middle of a checkout cannot mix two catalog versions.
type Snapshot struct {
	products map[int64]Product
	shipping map[int64]ShippingMethod
}

// NewSnapshot indexes products and methods by id. A later duplicate id replaces
// an earlier one.
func NewSnapshot(products []Product, methods []ShippingMethod) Snapshot {
	s := Snapshot{
		products: make(map[int64]Product, len(products)),
		shipping: make(map[int64]ShippingMethod, len(methods)),
	}
	for _, p := range products {
		s.products[p.ID()] = p
	}
	for _, m := range methods {
		s.shipping[m.ID()] = m
	}
	return s
}

func (s Snapshot) Product(id int64) (Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func (s Snapshot) ShippingMethod(id int64) (ShippingMethod, bool) {
	m, ok := s.shipping[id]
	return m, ok
}

// Len returns the number of products and shipping methods.
func (s Snapshot) Len() (products, methods int) {
	return len(s.products), len(s.shipping)
}
