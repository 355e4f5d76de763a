// Package buyerrepo maps buyer aggregates to the "buyers" table.
package buyerrepo

import (
	"time"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BuyerDTO represents the database structure for persisting buyers.
// NationalID and Phone are NULL until the buyer fills in the profile.
type BuyerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	FirstName    string    `gorm:"not null;default:''"`
	LastName     string    `gorm:"not null;default:''"`
	PasswordHash string    `gorm:"not null"`
	NationalID   *string   `gorm:"uniqueIndex"`
	Phone        *string
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for buyers.
func (BuyerDTO) TableName() string {
	return "buyers"
}

func fromDomain(b *buyer.Buyer) BuyerDTO {
	dto := BuyerDTO{
		ID:           b.ID().Bytes(),
		Email:        b.Email().String(),
		FirstName:    b.FirstName(),
		LastName:     b.LastName(),
		PasswordHash: b.PasswordHash(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
	if nationalID, ok := b.NationalID(); ok {
		s := nationalID.String()
		dto.NationalID = &s
	}
	if phone, ok := b.Phone(); ok {
		s := phone.String()
		dto.Phone = &s
	}
	return dto
}

func toDomain(dto BuyerDTO) (*buyer.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	email, err := identity.ParseEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	state := buyer.State{
		ID:           id,
		Email:        email,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PasswordHash: dto.PasswordHash,
		CreatedAt:    dto.CreatedAt.UTC(),
		UpdatedAt:    dto.UpdatedAt.UTC(),
	}
	if dto.NationalID != nil {
		nationalID, parseErr := identity.ParseNationalID(*dto.NationalID)
		if parseErr != nil {
			return nil, parseErr
		}
		state.NationalID = &nationalID
	}
	if dto.Phone != nil {
		phone, parseErr := identity.ParsePhone(*dto.Phone)
		if parseErr != nil {
			return nil, parseErr
		}
		state.Phone = &phone
	}
	return buyer.RestoreBuyer(state)
}
