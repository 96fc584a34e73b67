package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/pkg/api"
)

// CreateRefund создает заявку на возврат
func (c *Client) CreateRefund(ctx context.Context, req api.CreateRefundRequest) (*models.Refund, error) {
	var refund models.Refund
	if err := c.do(ctx, call{op: "create refund", method: http.MethodPost, path: "/refunds", body: req, result: &refund}); err != nil {
		return nil, err
	}
	return &refund, nil
}

// ListRefunds возвращает заявки на возврат
func (c *Client) ListRefunds(ctx context.Context) ([]models.Refund, error) {
	var refunds []models.Refund
	if err := c.do(ctx, call{op: "list refunds", method: http.MethodGet, path: "/refunds", result: &refunds}); err != nil {
		return nil, err
	}
	return refunds, nil
}

// UpdateRefund одобряет или отклоняет заявку. Только для администратора.
func (c *Client) UpdateRefund(ctx context.Context, refundID string, req api.UpdateRefundRequest) (*models.Refund, error) {
	var refund models.Refund
	err := c.do(ctx, call{op: "update refund", method: http.MethodPatch, path: "/refunds/" + url.PathEscape(refundID), body: req, result: &refund})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// CreateConversation открывает диалог с поддержкой
func (c *Client) CreateConversation(ctx context.Context, req api.CreateConversationRequest) (*models.Conversation, error) {
	var conv models.Conversation
	if err := c.do(ctx, call{op: "create conversation", method: http.MethodPost, path: "/conversations", body: req, result: &conv}); err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListConversations возвращает диалоги пользователя
func (c *Client) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var convs []models.Conversation
	if err := c.do(ctx, call{op: "list conversations", method: http.MethodGet, path: "/conversations", result: &convs}); err != nil {
		return nil, err
	}
	return convs, nil
}

// ListMessages возвращает сообщения диалога
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var msgs []models.Message
	err := c.do(ctx, call{op: "list messages", method: http.MethodGet, path: "/conversations/" + url.PathEscape(conversationID) + "/messages", result: &msgs})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage отправляет сообщение в диалог
func (c *Client) SendMessage(ctx context.Context, conversationID, body string) (*models.Message, error) {
	var msg models.Message
	err := c.do(ctx, call{
		op: "send message", method: http.MethodPost, path: "/conversations/" + url.PathEscape(conversationID) + "/messages",
		body: api.SendMessageRequest{Body: body}, result: &msg,
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListNotifications возвращает уведомления пользователя
func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	if err := c.do(ctx, call{op: "list notifications", method: http.MethodGet, path: "/notifications", result: &list}); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkNotificationRead отмечает уведомление прочитанным
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, call{op: "mark notification read", method: http.MethodPost, path: "/notifications/" + url.PathEscape(notificationID) + "/read"})
}
