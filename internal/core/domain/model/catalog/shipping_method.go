package catalog

import (
	"errors"
	"fmt"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// ShippingMethod is a named flat-rate delivery option.
type ShippingMethod struct {
	id            int64
	name          string
	price         kernel.Money
	estimatedTime string
}

// NewShippingMethod validates a shipping snapshot record. estimatedTime is optional.
func NewShippingMethod(id int64, name string, price kernel.Money, estimatedTime string) (ShippingMethod, error) {
	var errList []error
	if id <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id)))
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("nombre"))
	}
	if err := price.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return ShippingMethod{}, err
	}

	return ShippingMethod{
		id:            id,
		name:          strings.TrimSpace(name),
		price:         price,
		estimatedTime: strings.TrimSpace(estimatedTime),
	}, nil
}

func (m ShippingMethod) ID() int64 {
	return m.id
}

func (m ShippingMethod) Name() string {
	return m.name
}

func (m ShippingMethod) Price() kernel.Money {
	return m.price
}

func (m ShippingMethod) EstimatedTime() string {
	return m.estimatedTime
}

// DefaultShippingMethods is the minimal set substituted when no shipping
// snapshot can be resolved and the deployment allows the fallback.
func DefaultShippingMethods() []ShippingMethod {
	build := func(id int64, name string, price int64, eta string) ShippingMethod {
		m, _ := kernel.MoneyFromInt(price)
		method, _ := NewShippingMethod(id, name, m, eta)
		return method
	}
	return []ShippingMethod{
		build(1, "Retiro en Campus", 0, "Inmediato"),
		build(2, "Envío Estándar", 5000, "3-5 días hábiles"),
		build(3, "Envío Express", 10000, "1-2 días hábiles"),
	}
}
