package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrProductNotFound indicates that product was not found
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound indicates that the cart has no line for the product
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrVoucherNotFound indicates an unknown voucher code
	ErrVoucherNotFound = errors.New("voucher not found")

	// ErrVoucherUsed indicates that the voucher was consumed by a concurrent order
	ErrVoucherUsed = errors.New("voucher has already been used")

	// ErrInsufficientStock indicates that an order asks for more units than are left
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrOrderNotFound indicates that order was not found
	ErrOrderNotFound = errors.New("order not found")

	// ErrRefundNotFound indicates that refund request was not found
	ErrRefundNotFound = errors.New("refund not found")

	// ErrConversationNotFound indicates that conversation was not found
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrNotificationNotFound indicates that notification was not found
	ErrNotificationNotFound = errors.New("notification not found")
)
