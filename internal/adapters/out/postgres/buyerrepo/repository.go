package buyerrepo

import (
	"context"
	"errors"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBuyerRepository implements ports.BuyerRepository using GORM.
type GormBuyerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBuyerRepository creates a new GORM buyer repository.
func NewGormBuyerRepository(db *gorm.DB, tracker aggregateTracker) *GormBuyerRepository {
	return &GormBuyerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new buyer. A duplicate email or national ID is reported as
// errs.ValueIsNotUniqueError when the connection translates driver errors.
func (r *GormBuyerRepository) Add(ctx context.Context, aggregate *buyer.Buyer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, "email", aggregate.Email().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites the profile columns of an existing buyer.
func (r *GormBuyerRepository) Update(ctx context.Context, aggregate *buyer.Buyer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BuyerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"first_name":  dto.FirstName,
			"last_name":   dto.LastName,
			"national_id": dto.NationalID,
			"phone":       dto.Phone,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		nationalID, _ := aggregate.NationalID()
		return translate(result.Error, "rut", nationalID.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("buyer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a buyer by ID.
func (r *GormBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.findOne(ctx, "buyer", id.String(), "id = ?", id.Bytes())
}

// FindByNationalID retrieves the buyer that registered the given RUT.
func (r *GormBuyerRepository) FindByNationalID(ctx context.Context, id identity.NationalID) (*buyer.Buyer, error) {
	if id.IsZero() {
		return nil, errs.NewValueIsRequiredError("rut")
	}
	return r.findOne(ctx, "rut", id.String(), "national_id = ?", id.String())
}

// FindByEmail retrieves the buyer registered with email.
func (r *GormBuyerRepository) FindByEmail(ctx context.Context, email identity.Email) (*buyer.Buyer, error) {
	return r.findOne(ctx, "email", email.String(), "email = ?", email.String())
}

func (r *GormBuyerRepository) findOne(ctx context.Context, param, key string, query string, arg any) (*buyer.Buyer, error) {
	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

// translate maps a unique index violation to errs.ValueIsNotUniqueError.
// Requires gorm.Config.TranslateError.
func translate(err error, param, value string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsNotUniqueError(param, value)
	}
	return err
}
