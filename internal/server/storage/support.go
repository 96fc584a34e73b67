package storage

import (
	"context"

	"github.com/iudanet/marketsync/internal/models"
)

// RefundStorage defines refund request persistence
type RefundStorage interface {
	CreateRefund(ctx context.Context, refund *models.Refund) error
	GetRefund(ctx context.Context, refundID string) (*models.Refund, error)
	// ListRefunds lists refunds of userID; empty userID lists every refund
	ListRefunds(ctx context.Context, userID string) ([]models.Refund, error)
	UpdateRefund(ctx context.Context, refund *models.Refund) error
}

// ConversationStorage defines support chat persistence
type ConversationStorage interface {
	CreateConversation(ctx context.Context, conv *models.Conversation, first *models.Message) error
	GetConversation(ctx context.Context, convID string) (*models.Conversation, error)
	// ListConversations lists conversations of userID; empty userID lists every conversation
	ListConversations(ctx context.Context, userID string) ([]models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, convID string) ([]models.Message, error)
}

// NotificationStorage defines user notification persistence
type NotificationStorage interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkNotificationRead returns ErrNotificationNotFound unless the notification belongs to userID
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}
