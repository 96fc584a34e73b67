package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

// notifier создает уведомления пользователю. Ошибка записи не прерывает запрос.
type notifier struct {
	store  storage.NotificationStorage
	clock  clockwork.Clock
	logger *slog.Logger
}

func (n notifier) send(r *http.Request, userID, title, body string) {
	if n.store == nil {
		return
	}
	notification := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: n.clock.Now(),
	}
	if err := n.store.CreateNotification(r.Context(), notification); err != nil {
		n.logger.WarnContext(r.Context(), "failed to create notification",
			slog.String("user_id", userID), slog.Any("error", err))
	}
}
