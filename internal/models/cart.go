package models

import "time"

// CartItem представляет позицию корзины.
// Product снимок товара на момент последней синхронизации, он может устареть
// до следующего прохода синхронизатора.
type CartItem struct {
	AddedAt   time.Time `json:"added_at"`             // время добавления
	UnitPrice *int64    `json:"unit_price,omitempty"` // явная цена позиции (перекрывает цену снимка)
	ProductID string    `json:"product_id"`           // ID товара, ключ позиции
	Product   Product   `json:"product"`              // снимок товара
	Quantity  int       `json:"quantity"`             // запрошенное количество
}

// EffectivePrice returns the explicit unit price override when present,
// otherwise the price of the embedded product snapshot.
func (c CartItem) EffectivePrice() int64 {
	if c.UnitPrice != nil {
		return *c.UnitPrice
	}
	return c.Product.Price
}

// LineTotal returns EffectivePrice multiplied by the quantity.
func (c CartItem) LineTotal() int64 {
	return c.EffectivePrice() * int64(c.Quantity)
}
