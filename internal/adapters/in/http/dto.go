package http

import (
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/generated/servers"
)

func orderFromDomain(o *order.Order) servers.Order {
	items := o.LineItems()
	resp := servers.Order{
		Id:            o.ID().Bytes(),
		Estado:        o.Status().String(),
		Detalles:      make([]servers.LineItem, 0, len(items)),
		Subtotal:      o.Subtotal().Amount(),
		CostoEnvio:    o.ShippingCost().Amount(),
		Total:         o.Total().Amount(),
		FechaCreacion: o.CreatedAt(),
	}
	for _, item := range items {
		resp.Detalles = append(resp.Detalles, servers.LineItem{
			ProductoId:     item.ProductID(),
			Nombre:         item.ProductName(),
			Cantidad:       item.Quantity(),
			PrecioUnitario: item.UnitPrice().Amount(),
			Subtotal:       item.Subtotal().Amount(),
		})
	}
	if shipping, ok := o.Shipping(); ok {
		resp.MetodoEnvio = shipping.MethodName()
	}
	if path, ok := o.ReceiptPath(); ok {
		resp.RutaComprobante = &path
	}
	return resp
}

func orderFromView(v queries.OrderView) servers.Order {
	resp := servers.Order{
		Id:              v.ID.Bytes(),
		Estado:          v.Status.String(),
		MetodoEnvio:     v.ShippingMethod,
		Detalles:        make([]servers.LineItem, 0, len(v.Items)),
		Subtotal:        v.Subtotal.Amount(),
		CostoEnvio:      v.ShippingCost.Amount(),
		Total:           v.Total.Amount(),
		RutaComprobante: v.ReceiptPath,
		FechaCreacion:   v.CreatedAt,
	}
	for _, item := range v.Items {
		resp.Detalles = append(resp.Detalles, servers.LineItem{
			ProductoId:     item.ProductID,
			Nombre:         item.ProductName,
			Cantidad:       item.Quantity,
			PrecioUnitario: item.UnitPrice.Amount(),
			Subtotal:       item.Subtotal.Amount(),
		})
	}
	return resp
}

// buyerFromDomain never exposes the password hash.
func buyerFromDomain(b *buyer.Buyer) servers.Buyer {
	resp := servers.Buyer{
		Id:       b.ID().Bytes(),
		Email:    b.Email().String(),
		Nombre:   b.FirstName(),
		Apellido: b.LastName(),
	}
	if id, ok := b.NationalID(); ok {
		s := id.String()
		resp.Rut = &s
	}
	if phone, ok := b.Phone(); ok {
		s := phone.String()
		resp.Telefono = &s
	}
	return resp
}
