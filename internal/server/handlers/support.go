package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
	"github.com/iudanet/marketsync/internal/validation"
	"github.com/iudanet/marketsync/pkg/api"
)

const maxSubjectLen = 200

// SupportHandler обслуживает возвраты, чат с поддержкой и уведомления
type SupportHandler struct {
	responder
	refunds       storage.RefundStorage
	orders        storage.OrderStorage
	conversations storage.ConversationStorage
	notifications storage.NotificationStorage
	clock         clockwork.Clock
	notifier      notifier
}

// NewSupportHandler создает handler поддержки
func NewSupportHandler(logger *slog.Logger, refunds storage.RefundStorage, orders storage.OrderStorage, conversations storage.ConversationStorage, notifications storage.NotificationStorage, clock clockwork.Clock) *SupportHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SupportHandler{
		responder:     responder{logger: logger},
		refunds:       refunds,
		orders:        orders,
		conversations: conversations,
		notifications: notifications,
		clock:         clock,
		notifier:      notifier{store: notifications, clock: clock, logger: logger},
	}
}

// CreateRefund обрабатывает POST /refunds
func (h *SupportHandler) CreateRefund(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.CreateRefundRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateText("reason", req.Reason, validation.MaxReasonLen); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrder(ctx, req.OrderID)
	if err != nil || order.UserID != userID {
		if err == nil || errors.Is(err, storage.ErrOrderNotFound) {
			h.sendError(w, notFound("order", req.OrderID), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to get order", err)
		return
	}
	if req.Amount <= 0 || req.Amount > order.Total {
		h.sendError(w, fmt.Sprintf("refund amount must be between 1 and %d", order.Total), http.StatusBadRequest)
		return
	}

	now := h.clock.Now()
	refund := &models.Refund{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		UserID:    userID,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    models.RefundRequested,
		Amount:    req.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.refunds.CreateRefund(ctx, refund); err != nil {
		h.internalError(w, r, "failed to create refund", err)
		return
	}

	h.logger.InfoContext(ctx, "refund requested", slog.String("refund_id", refund.ID), slog.String("order_id", order.ID))
	h.sendJSON(w, refund, http.StatusCreated)
}

// ListRefunds обрабатывает GET /refunds. Администратор видит все заявки.
func (h *SupportHandler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	if IsAdmin(r.Context()) {
		userID = ""
	}

	refunds, err := h.refunds.ListRefunds(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list refunds", err)
		return
	}
	h.sendJSON(w, refunds, http.StatusOK)
}

// UpdateRefund обрабатывает PATCH /refunds/{id} (admin). Решение
// принимается один раз, автор заявки получает уведомление.
func (h *SupportHandler) UpdateRefund(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req api.UpdateRefundRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Status != models.RefundApproved && req.Status != models.RefundRejected {
		h.sendError(w, fmt.Sprintf("refund status must be %s or %s", models.RefundApproved, models.RefundRejected), http.StatusBadRequest)
		return
	}

	refund, err := h.refunds.GetRefund(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRefundNotFound) {
			h.sendError(w, notFound("refund", id), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to get refund", err)
		return
	}
	if refund.Status != models.RefundRequested {
		h.sendError(w, "refund is already "+string(refund.Status), http.StatusConflict)
		return
	}

	refund.Status = req.Status
	refund.Note = strings.TrimSpace(req.Note)
	refund.UpdatedAt = h.clock.Now()
	if err := h.refunds.UpdateRefund(ctx, refund); err != nil {
		h.internalError(w, r, "failed to update refund", err)
		return
	}

	if refund.Status == models.RefundApproved {
		if _, err := h.orders.UpdateOrderStatus(ctx, refund.OrderID, models.OrderStatusRefunded); err != nil {
			h.logger.WarnContext(ctx, "failed to mark order refunded", slog.String("order_id", refund.OrderID), slog.Any("error", err))
		}
	}

	body := fmt.Sprintf("Your refund for order %s was %s.", shortID(refund.OrderID), refund.Status)
	if refund.Note != "" {
		body += " " + refund.Note
	}
	h.notifier.send(r, refund.UserID, "Refund "+string(refund.Status), body)

	h.sendJSON(w, refund, http.StatusOK)
}

// CreateConversation обрабатывает POST /conversations
func (h *SupportHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req api.CreateConversationRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateText("subject", req.Subject, maxSubjectLen); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateText("message", req.Message, validation.MaxMessageLen); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := h.clock.Now()
	conv := &models.Conversation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Subject:   strings.TrimSpace(req.Subject),
		Status:    "open",
		CreatedAt: now,
		UpdatedAt: now,
	}
	first := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderID:       userID,
		Body:           req.Message,
		CreatedAt:      now,
	}
	if err := h.conversations.CreateConversation(r.Context(), conv, first); err != nil {
		h.internalError(w, r, "failed to create conversation", err)
		return
	}
	h.sendJSON(w, conv, http.StatusCreated)
}

// ListConversations обрабатывает GET /conversations
func (h *SupportHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	if IsAdmin(r.Context()) {
		userID = ""
	}

	convs, err := h.conversations.ListConversations(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list conversations", err)
		return
	}
	h.sendJSON(w, convs, http.StatusOK)
}

// ListMessages обрабатывает GET /conversations/{id}/messages
func (h *SupportHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.conversation(w, r)
	if !ok {
		return
	}

	msgs, err := h.conversations.ListMessages(r.Context(), conv.ID)
	if err != nil {
		h.internalError(w, r, "failed to list messages", err)
		return
	}
	h.sendJSON(w, msgs, http.StatusOK)
}

// SendMessage обрабатывает POST /conversations/{id}/messages. Ответ
// администратора порождает уведомление владельцу диалога.
func (h *SupportHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	conv, ok := h.conversation(w, r)
	if !ok {
		return
	}
	userID, _ := GetUserID(r.Context())

	var req api.SendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validation.ValidateText("message", req.Body, validation.MaxMessageLen); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderID:       userID,
		Body:           req.Body,
		CreatedAt:      h.clock.Now(),
	}
	if err := h.conversations.CreateMessage(r.Context(), msg); err != nil {
		if errors.Is(err, storage.ErrConversationNotFound) {
			h.sendError(w, notFound("conversation", conv.ID), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to send message", err)
		return
	}

	if userID != conv.UserID {
		h.notifier.send(r, conv.UserID, "Support replied", conv.Subject)
	}
	h.sendJSON(w, msg, http.StatusCreated)
}

// conversation загружает диалог из пути и проверяет доступ к нему
func (h *SupportHandler) conversation(w http.ResponseWriter, r *http.Request) (*models.Conversation, bool) {
	userID, ok := h.userID(w, r)
	if !ok {
		return nil, false
	}
	id := chi.URLParam(r, "id")

	conv, err := h.conversations.GetConversation(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrConversationNotFound) {
			h.sendError(w, notFound("conversation", id), http.StatusNotFound)
			return nil, false
		}
		h.internalError(w, r, "failed to get conversation", err)
		return nil, false
	}
	// чужой диалог выглядит как отсутствующий
	if conv.UserID != userID && !IsAdmin(r.Context()) {
		h.sendError(w, notFound("conversation", id), http.StatusNotFound)
		return nil, false
	}
	return conv, true
}

// ListNotifications обрабатывает GET /notifications
func (h *SupportHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	list, err := h.notifications.ListNotifications(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "failed to list notifications", err)
		return
	}
	h.sendJSON(w, list, http.StatusOK)
}

// MarkNotificationRead обрабатывает POST /notifications/{id}/read
func (h *SupportHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.notifications.MarkNotificationRead(r.Context(), userID, id); err != nil {
		if errors.Is(err, storage.ErrNotificationNotFound) {
			h.sendError(w, notFound("notification", id), http.StatusNotFound)
			return
		}
		h.internalError(w, r, "failed to mark notification read", err)
		return
	}
	h.sendJSON(w, nil, http.StatusOK)
}
