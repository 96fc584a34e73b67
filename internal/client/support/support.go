// Package support wraps refunds and the support chat.
package support

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

var (
	// ErrOrderRequired is returned for a refund without an order id
	ErrOrderRequired = errors.New("order id is required")
	// ErrInvalidAmount is returned for a non-positive refund amount
	ErrInvalidAmount = errors.New("refund amount must be positive")
	// ErrConversationRequired is returned when a message has no conversation id
	ErrConversationRequired = errors.New("conversation id is required")
)

//go:generate moq -out remote_mock.go . Remote

// Remote is the part of the store client used by support.
type Remote interface {
	CreateRefund(ctx context.Context, req api.CreateRefundRequest) (*models.Refund, error)
	ListRefunds(ctx context.Context) ([]models.Refund, error)
	UpdateRefund(ctx context.Context, refundID string, req api.UpdateRefundRequest) (*models.Refund, error)
	CreateConversation(ctx context.Context, req api.CreateConversationRequest) (*models.Conversation, error)
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID, body string) (*models.Message, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// Service сервис возвратов и чата поддержки
type Service struct {
	remote    Remote
	publisher notify.Publisher
	logger    *slog.Logger
}

// NewService создает сервис поддержки
func NewService(remote Remote, publisher notify.Publisher, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = notify.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{remote: remote, publisher: publisher, logger: logger}
}

// RequestRefund files a refund request for an order.
func (s *Service) RequestRefund(ctx context.Context, orderID, reason string, amount int64) (*models.Refund, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderRequired
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	reason = strings.TrimSpace(reason)
	if err := validation.ValidateText("reason", reason, validation.MaxReasonLen); err != nil {
		return nil, err
	}

	refund, err := s.remote.CreateRefund(ctx, api.CreateRefundRequest{OrderID: orderID, Reason: reason, Amount: amount})
	if err != nil {
		notify.Error(s.publisher, "refunds", err)
		return nil, fmt.Errorf("failed to request refund: %w", err)
	}

	s.logger.Info("Refund requested", "refund_id", refund.ID, "order_id", orderID)
	s.publisher.Publish(notify.Notice{
		Level:   notify.LevelSuccess,
		Domain:  "refunds",
		Key:     refund.ID,
		Message: fmt.Sprintf("Refund for order %s requested", orderID),
	})
	return refund, nil
}

// Refunds lists refund requests visible to the caller.
func (s *Service) Refunds(ctx context.Context) ([]models.Refund, error) {
	refunds, err := s.remote.ListRefunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}
	return refunds, nil
}

// Approve принимает заявку (администратор)
func (s *Service) Approve(ctx context.Context, refundID, note string) (*models.Refund, error) {
	return s.decide(ctx, refundID, models.RefundApproved, note)
}

// Reject отклоняет заявку (администратор)
func (s *Service) Reject(ctx context.Context, refundID, note string) (*models.Refund, error) {
	return s.decide(ctx, refundID, models.RefundRejected, note)
}

func (s *Service) decide(ctx context.Context, refundID string, status models.RefundStatus, note string) (*models.Refund, error) {
	if strings.TrimSpace(refundID) == "" {
		return nil, errors.New("refund id is required")
	}
	if len(note) > validation.MaxReasonLen {
		return nil, fmt.Errorf("note must not exceed %d characters", validation.MaxReasonLen)
	}

	refund, err := s.remote.UpdateRefund(ctx, refundID, api.UpdateRefundRequest{Status: status, Note: strings.TrimSpace(note)})
	if err != nil {
		notify.Error(s.publisher, "refunds", err)
		return nil, fmt.Errorf("failed to update refund: %w", err)
	}
	s.logger.Info("Refund updated", "refund_id", refundID, "status", status)
	return refund, nil
}

// OpenConversation starts a chat with the first message.
func (s *Service) OpenConversation(ctx context.Context, subject, message string) (*models.Conversation, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if err := validation.ValidateText("subject", subject, validation.MaxReasonLen); err != nil {
		return nil, err
	}
	if err := validation.ValidateText("message", message, validation.MaxMessageLen); err != nil {
		return nil, err
	}

	conv, err := s.remote.CreateConversation(ctx, api.CreateConversationRequest{Subject: subject, Message: message})
	if err != nil {
		notify.Error(s.publisher, "support", err)
		return nil, fmt.Errorf("failed to open conversation: %w", err)
	}
	s.logger.Info("Conversation opened", "conversation_id", conv.ID)
	return conv, nil
}

// Conversations lists the caller's conversations.
func (s *Service) Conversations(ctx context.Context) ([]models.Conversation, error) {
	convs, err := s.remote.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// Send posts a message to a conversation.
func (s *Service) Send(ctx context.Context, conversationID, body string) (*models.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrConversationRequired
	}
	body = strings.TrimSpace(body)
	if err := validation.ValidateText("message", body, validation.MaxMessageLen); err != nil {
		return nil, err
	}

	msg, err := s.remote.SendMessage(ctx, conversationID, body)
	if err != nil {
		notify.Error(s.publisher, "support", err)
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return msg, nil
}

// Messages lists a conversation, oldest first as returned by the server.
func (s *Service) Messages(ctx context.Context, conversationID string) ([]models.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrConversationRequired
	}
	msgs, err := s.remote.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// MarkRead отмечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, notificationID string) error {
	if err := s.remote.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
