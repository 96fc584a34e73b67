package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/internal/server/storage"
)

const refundColumns = `id, order_id, user_id, reason, status, note, amount, created_at, updated_at`

func scanRefund(row scanner, r *models.Refund) error {
	return row.Scan(&r.ID, &r.OrderID, &r.UserID, &r.Reason, &r.Status, &r.Note, &r.Amount, &r.CreatedAt, &r.UpdatedAt)
}

// CreateRefund stores a new refund request
func (s *Storage) CreateRefund(ctx context.Context, r *models.Refund) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO refunds (`+refundColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.OrderID, r.UserID, r.Reason, r.Status, r.Note, r.Amount, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert refund: %w", err)
	}
	return nil
}

// GetRefund retrieves a refund request by ID
func (s *Storage) GetRefund(ctx context.Context, refundID string) (*models.Refund, error) {
	r := &models.Refund{}
	row := s.db.QueryRowContext(ctx, `SELECT `+refundColumns+` FROM refunds WHERE id = ?`, refundID)
	if err := scanRefund(row, r); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRefundNotFound
		}
		return nil, fmt.Errorf("failed to get refund: %w", err)
	}
	return r, nil
}

// ListRefunds returns refunds newest first
func (s *Storage) ListRefunds(ctx context.Context, userID string) ([]models.Refund, error) {
	query, args := byOwner(`SELECT `+refundColumns+` FROM refunds`, userID, `created_at DESC, id`)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query refunds: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	refunds := []models.Refund{}
	for rows.Next() {
		var r models.Refund
		if err := scanRefund(rows, &r); err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return refunds, nil
}

// UpdateRefund stores the decision on a refund
func (s *Storage) UpdateRefund(ctx context.Context, r *models.Refund) error {
	result, err := s.db.ExecContext(ctx, `UPDATE refunds SET status = ?, note = ?, updated_at = ? WHERE id = ?`,
		r.Status, r.Note, r.UpdatedAt, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update refund: %w", err)
	}
	return rowsAffected(result, storage.ErrRefundNotFound)
}

const conversationColumns = `id, user_id, subject, status, created_at, updated_at`

func scanConversation(row scanner, c *models.Conversation) error {
	return row.Scan(&c.ID, &c.UserID, &c.Subject, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

// CreateConversation stores a conversation together with its first message
func (s *Storage) CreateConversation(ctx context.Context, c *models.Conversation, first *models.Message) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO conversations (`+conversationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Subject, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	if first != nil {
		_, err = tx.ExecContext(ctx, `INSERT INTO messages (id, conversation_id, sender_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
			first.ID, c.ID, first.SenderID, first.Body, first.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit conversation: %w", err)
	}
	return nil
}

// GetConversation retrieves a conversation by ID
func (s *Storage) GetConversation(ctx context.Context, convID string) (*models.Conversation, error) {
	c := &models.Conversation{}
	row := s.db.QueryRowContext(ctx, `SELECT `+conversationColumns+` FROM conversations WHERE id = ?`, convID)
	if err := scanConversation(row, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return c, nil
}

// ListConversations returns conversations with the latest activity first
func (s *Storage) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	query, args := byOwner(`SELECT `+conversationColumns+` FROM conversations`, userID, `updated_at DESC, id`)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	convs := []models.Conversation{}
	for rows.Next() {
		var c models.Conversation
		if err := scanConversation(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return convs, nil
}

// CreateMessage appends a message and touches the conversation
func (s *Storage) CreateMessage(ctx context.Context, m *models.Message) error {
	result, err := s.db.ExecContext(ctx, `UPDATE conversations SET updated_at = ? WHERE id = ?`, m.CreatedAt, m.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %w", err)
	}
	if err := rowsAffected(result, storage.ErrConversationNotFound); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO messages (id, conversation_id, sender_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.ConversationID, m.SenderID, m.Body, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListMessages returns messages of a conversation oldest first
func (s *Storage) ListMessages(ctx context.Context, convID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, sender_id, body, created_at FROM messages WHERE conversation_id = ? ORDER BY created_at, rowid`, convID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	msgs := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return msgs, nil
}

// CreateNotification stores a notification for a user
func (s *Storage) CreateNotification(ctx context.Context, n *models.Notification) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO notifications (id, user_id, title, body, read, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, n.Body, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListNotifications returns notifications of a user newest first
func (s *Storage) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, body, read, created_at FROM notifications WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	list := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return list, nil
}

// MarkNotificationRead marks a notification of the user as read
func (s *Storage) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return rowsAffected(result, storage.ErrNotificationNotFound)
}

// byOwner дописывает фильтр по владельцу, при пустом userID фильтра нет
func byOwner(query, userID, orderBy string) (string, []any) {
	var args []any
	if userID != "" {
		query += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	return query + ` ORDER BY ` + orderBy, args
}
