package ports

import (
	"context"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
)

// BuyerRepository defines the persistence contract for buyers.
type BuyerRepository interface {
	Add(ctx context.Context, aggregate *buyer.Buyer) error
	Update(ctx context.Context, aggregate *buyer.Buyer) error

	// Get returns errs.ObjectNotFoundError when the buyer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error)

	// FindByNationalID returns the buyer holding id, or errs.ObjectNotFoundError.
	FindByNationalID(ctx context.Context, id identity.NationalID) (*buyer.Buyer, error)

	// FindByEmail returns the buyer registered with email, or errs.ObjectNotFoundError.
	FindByEmail(ctx context.Context, email identity.Email) (*buyer.Buyer, error)
}
