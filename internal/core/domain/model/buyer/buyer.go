// Package buyer holds the Buyer aggregate: the account that places orders and
// the contact details reused by checkout and receipts.
package buyer

import (
	"errors"
	"strings"
	"time"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer or RestoreBuyer")

// Buyer is an account holder. National id and phone are optional and, when
// present, always stored in canonical form. National id uniqueness across
// buyers is enforced by the repository.
type Buyer struct {
	id           kernel.UUID
	email        identity.Email
	firstName    string
	lastName     string
	passwordHash string
	nationalID   *identity.NationalID
	phone        *identity.Phone
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewBuyer registers a buyer. passwordHash must already be hashed.
func NewBuyer(
	id kernel.UUID,
	email identity.Email,
	firstName string,
	lastName string,
	passwordHash string,
	now time.Time,
) (*Buyer, error) {
	var errList []error
	errList = append(errList, id.Validate())
	if email.String() == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if passwordHash == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password hash"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	now = now.UTC().Truncate(time.Microsecond)
	return &Buyer{
		id:           id,
		email:        email,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// State carries persisted buyer fields into RestoreBuyer.
type State struct {
	ID           kernel.UUID
	Email        identity.Email
	FirstName    string
	LastName     string
	PasswordHash string
	NationalID   *identity.NationalID
	Phone        *identity.Phone
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func RestoreBuyer(s State) (*Buyer, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	return &Buyer{
		id:           s.ID,
		email:        s.Email,
		firstName:    s.FirstName,
		lastName:     s.LastName,
		passwordHash: s.PasswordHash,
		nationalID:   s.NationalID,
		phone:        s.Phone,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (b *Buyer) Validate() error {
	if b == nil {
		return ErrBuyerIsNotConstructed
	}
	return b.guard.Validate(ErrBuyerIsNotConstructed)
}

func (b *Buyer) ID() kernel.UUID       { return b.id }
func (b *Buyer) Email() identity.Email { return b.email }
func (b *Buyer) FirstName() string     { return b.firstName }
func (b *Buyer) LastName() string      { return b.lastName }
func (b *Buyer) PasswordHash() string  { return b.passwordHash }
func (b *Buyer) CreatedAt() time.Time  { return b.createdAt }
func (b *Buyer) UpdatedAt() time.Time  { return b.updatedAt }

// FullName joins first and last name, falling back to the email.
func (b *Buyer) FullName() string {
	name := strings.TrimSpace(b.firstName + " " + b.lastName)
	if name == "" {
		return b.email.String()
	}
	return name
}

// NationalID returns the canonical national id, if the buyer has one.
func (b *Buyer) NationalID() (identity.NationalID, bool) {
	if b.nationalID == nil {
		return identity.NationalID{}, false
	}
	return *b.nationalID, true
}

// Phone returns the canonical phone, if the buyer has one.
func (b *Buyer) Phone() (identity.Phone, bool) {
	if b.phone == nil {
		return identity.Phone{}, false
	}
	return *b.phone, true
}

// UpdateProfile replaces the optional contact fields. Nil leaves a field unchanged.
// Names are only replaced when non-blank.
func (b *Buyer) UpdateProfile(
	firstName, lastName string,
	nationalID *identity.NationalID,
	phone *identity.Phone,
	now time.Time,
) {
	if s := strings.TrimSpace(firstName); s != "" {
		b.firstName = s
	}
	if s := strings.TrimSpace(lastName); s != "" {
		b.lastName = s
	}
	if nationalID != nil {
		id := *nationalID
		b.nationalID = &id
	}
	if phone != nil {
		p := *phone
		b.phone = &p
	}
	b.updatedAt = now.UTC().Truncate(time.Microsecond)
}
