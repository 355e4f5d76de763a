package order

import (
	"errors"
	"strings"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Address is the delivery address as entered at checkout. PostalCode is optional.
type Address struct {
	street     string
	postalCode string
	commune    string
	city       string
}

func NewAddress(street, postalCode, commune, city string) (Address, error) {
	street, postalCode = strings.TrimSpace(street), strings.TrimSpace(postalCode)
	commune, city = strings.TrimSpace(commune), strings.TrimSpace(city)

	var errList []error
	if street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("direccion"))
	}
	if commune == "" {
		errList = append(errList, errs.NewValueIsRequiredError("comuna"))
	}
	if city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("ciudad"))
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return Address{street: street, postalCode: postalCode, commune: commune, city: city}, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Commune() string    { return a.commune }
func (a Address) City() string       { return a.city }

// Contact is the normalized buyer contact captured with the order.
type Contact struct {
	nationalID identity.NationalID
	email      identity.Email
	phone      identity.Phone
}

func NewContact(nationalID identity.NationalID, email identity.Email, phone identity.Phone) Contact {
	return Contact{nationalID: nationalID, email: email, phone: phone}
}

func (c Contact) NationalID() identity.NationalID { return c.nationalID }
func (c Contact) Email() identity.Email           { return c.email }
func (c Contact) Phone() identity.Phone           { return c.phone }

// ShippingSnapshot is the audit copy frozen into a completed order: where it
// goes, which method was chosen, what shipping cost and what the line items
// summed to at commit time.
type ShippingSnapshot struct {
	address       Address
	contact       Contact
	methodID      int64
	methodName    string
	estimatedTime string
	cost          kernel.Money
	subtotal      kernel.Money
}

func NewShippingSnapshot(
	address Address,
	contact Contact,
	methodID int64,
	methodName string,
	estimatedTime string,
	cost kernel.Money,
	subtotal kernel.Money,
) (ShippingSnapshot, error) {
	var errList []error
	if methodID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("metodo_envio_id"))
	}
	if strings.TrimSpace(methodName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("metodo_envio"))
	}
	errList = append(errList, cost.Validate(), subtotal.Validate())
	if err := errors.Join(errList...); err != nil {
		return ShippingSnapshot{}, err
	}

	return ShippingSnapshot{
		address:       address,
		contact:       contact,
		methodID:      methodID,
		methodName:    methodName,
		estimatedTime: estimatedTime,
		cost:          cost,
		subtotal:      subtotal,
	}, nil
}

func (s ShippingSnapshot) Address() Address       { return s.address }
func (s ShippingSnapshot) Contact() Contact       { return s.contact }
func (s ShippingSnapshot) MethodID() int64        { return s.methodID }
func (s ShippingSnapshot) MethodName() string     { return s.methodName }
func (s ShippingSnapshot) EstimatedTime() string  { return s.estimatedTime }
func (s ShippingSnapshot) Cost() kernel.Money     { return s.cost }
func (s ShippingSnapshot) Subtotal() kernel.Money { return s.subtotal }
