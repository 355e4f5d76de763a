// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in "orders" plus one row per line item in "order_line_items".
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      int             `gorm:"not null;index:idx_orders_status_receipt,priority:1"`
	Total       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Shipping    ShippingDTO     `gorm:"embedded;embeddedPrefix:shipping_"`
	ReceiptPath *string         `gorm:"index:idx_orders_status_receipt,priority:2"`
	// ReceiptAttemptedAt is the last failed receipt attempt, NULL if none.
	ReceiptAttemptedAt *time.Time
	CreatedAt          time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ShippingDTO is the embedded shipping snapshot. MethodID is NULL for draft
// orders, which have no snapshot.
type ShippingDTO struct {
	Street        string
	PostalCode    string
	Commune       string
	City          string
	NationalID    string
	Email         string
	Phone         string
	MethodID      *int64
	MethodName    string
	EstimatedTime string
	Cost          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

// LineItemDTO is one frozen line item. Position keeps insertion order.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   int64           `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity    int             `gorm:"not null"`
	Attributes  string          `gorm:"type:jsonb;not null;default:'{}'"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:        o.ID().Bytes(),
		BuyerID:   o.BuyerID().Bytes(),
		Status:    int(o.Status()),
		Total:     o.Total().Amount(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
	if path, ok := o.ReceiptPath(); ok {
		dto.ReceiptPath = &path
	}

	shipping, ok := o.Shipping()
	if !ok {
		dto.Shipping = ShippingDTO{Cost: decimal.Zero, Subtotal: decimal.Zero}
		return dto
	}
	methodID := shipping.MethodID()
	address, contact := shipping.Address(), shipping.Contact()
	dto.Shipping = ShippingDTO{
		Street:        address.Street(),
		PostalCode:    address.PostalCode(),
		Commune:       address.Commune(),
		City:          address.City(),
		NationalID:    contact.NationalID().String(),
		Email:         contact.Email().String(),
		Phone:         contact.Phone().String(),
		MethodID:      &methodID,
		MethodName:    shipping.MethodName(),
		EstimatedTime: shipping.EstimatedTime(),
		Cost:          shipping.Cost().Amount(),
		Subtotal:      shipping.Subtotal().Amount(),
	}
	return dto
}

func lineItemFromDomain(orderID kernel.UUID, position int, item order.LineItem) (LineItemDTO, error) {
	attrs := item.Attributes()
	if attrs == nil {
		attrs = map[string]any{}
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return LineItemDTO{}, fmt.Errorf("encode attributes of line item %s: %w", item.ID(), err)
	}

	return LineItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		Position:    position,
		ProductID:   item.ProductID(),
		ProductName: item.ProductName(),
		UnitPrice:   item.UnitPrice().Amount(),
		Quantity:    item.Quantity(),
		Attributes:  string(raw),
	}, nil
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	var attrs map[string]any
	if err = json.Unmarshal([]byte(dto.Attributes), &attrs); err != nil {
		return order.LineItem{}, fmt.Errorf("decode attributes of line item %s: %w", id, err)
	}

	return order.NewLineItem(id, dto.ProductID, dto.ProductName, price, dto.Quantity, attrs)
}

// toDomain converts the order row and its line item rows into the aggregate
// using RestoreOrder, which re-derives and checks the total.
func toDomain(dto OrderDTO, itemDTOs []LineItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipping, err := shippingToDomain(dto.Shipping)
	if err != nil {
		return nil, err
	}

	state := order.State{
		ID:        id,
		BuyerID:   buyerID,
		Status:    order.Status(dto.Status),
		Items:     items,
		Shipping:  shipping,
		Total:     total,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
	}
	if dto.ReceiptPath != nil {
		state.ReceiptPath = *dto.ReceiptPath
	}
	return order.RestoreOrder(state)
}

func shippingToDomain(dto ShippingDTO) (*order.ShippingSnapshot, error) {
	if dto.MethodID == nil {
		return nil, nil
	}

	address, err := order.NewAddress(dto.Street, dto.PostalCode, dto.Commune, dto.City)
	if err != nil {
		return nil, err
	}
	// Stored values are canonical; parsing them again is idempotent.
	nationalID, err := identity.ParseNationalID(dto.NationalID)
	if err != nil {
		return nil, err
	}
	email, err := identity.ParseEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	phone, err := identity.ParsePhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	snapshot, err := order.NewShippingSnapshot(address, order.NewContact(nationalID, email, phone),
		*dto.MethodID, dto.MethodName, dto.EstimatedTime, cost, subtotal)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
