package api

import (
	"time"

	"github.com/iudanet/marketsync/internal/models"
)

// UpsertProductRequest представляет изменение товара администратором
type UpsertProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// AddCartItemRequest представляет добавление товара в корзину
type AddCartItemRequest struct {
	UnitPrice *int64 `json:"unit_price,omitempty"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest представляет изменение количества позиции
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ValidateVoucherRequest представляет проверку промокода
type ValidateVoucherRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

// ValidateVoucherResponse представляет результат проверки промокода
type ValidateVoucherResponse struct {
	Voucher        models.Voucher `json:"voucher"`
	DiscountAmount int64          `json:"discount_amount"`
}

// MaintenanceRequest представляет изменение режима обслуживания
type MaintenanceRequest struct {
	Start   *time.Time             `json:"start,omitempty"`
	End     *time.Time             `json:"end,omitempty"`
	Mode    models.MaintenanceMode `json:"mode"`
	Message string                 `json:"message,omitempty"`
}

// OrderItemRequest позиция создаваемого заказа
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest представляет создание заказа
type CreateOrderRequest struct {
	VoucherCode     string             `json:"voucher_code,omitempty"`
	ShippingAddress string             `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest представляет изменение статуса заказа
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// CreateRefundRequest представляет заявку на возврат
type CreateRefundRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
	Amount  int64  `json:"amount"`
}

// UpdateRefundRequest представляет решение администратора по возврату
type UpdateRefundRequest struct {
	Status models.RefundStatus `json:"status"`
	Note   string              `json:"note,omitempty"`
}

// CreateConversationRequest представляет открытие диалога с поддержкой
type CreateConversationRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendMessageRequest представляет новое сообщение в диалоге
type SendMessageRequest struct {
	Body string `json:"body"`
}
