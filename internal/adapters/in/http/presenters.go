package http

import (
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrderResponse(detail *queries.GetOrderByNumberQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = servers.OrderItem{
			Id:             item.ID.Value(),
			MenuItemId:     item.MenuItemID.Value(),
			MenuItemName:   item.MenuItemName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPrice.Cents(),
			LineTotalCents: item.LineTotal.Cents(),
		}
	}

	response := servers.Order{
		OrderNumber:         detail.Number,
		Status:              servers.OrderStatus(detail.Status.String()),
		CustomerEmail:       detail.CustomerEmail,
		CustomerName:        detail.CustomerName,
		SpecialInstructions: detail.Instructions,
		SubtotalCents:       detail.Subtotal.Cents(),
		TaxCents:            detail.Tax.Cents(),
		DeliveryFeeCents:    detail.DeliveryFee.Cents(),
		TotalCents:          detail.Total.Cents(),
		Eta:                 detail.ETA,
		Items:               items,
		CreatedAt:           detail.CreatedAt,
		UpdatedAt:           detail.UpdatedAt,
	}

	if p := detail.Payment; p != nil {
		response.Payment = &servers.Payment{
			Method:      string(p.Method),
			Status:      string(p.Status),
			AmountCents: p.Amount.Cents(),
			Currency:    p.Currency,
		}
		if p.ProcessorRef != "" {
			ref := p.ProcessorRef
			response.Payment.ProcessorRef = &ref
		}
	}

	return response
}

func optionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	value := id.Value()
	return &value
}

// deref returns the zero value for absent optional fields.
func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
