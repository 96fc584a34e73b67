package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/marketsync/internal/models"
)

// GetMaintenance returns the stored settings; mode off when none were saved
func (s *Storage) GetMaintenance(ctx context.Context) (*models.Maintenance, error) {
	query := `SELECT mode, start_at, end_at, message, updated_at FROM maintenance WHERE id = 1`

	m := &models.Maintenance{}
	var start, end sql.NullTime

	err := s.db.QueryRowContext(ctx, query).Scan(&m.Mode, &start, &end, &m.Message, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			off := models.NoMaintenance(time.Time{})
			return &off, nil
		}
		return nil, fmt.Errorf("failed to get maintenance settings: %w", err)
	}

	if start.Valid {
		m.Start = &start.Time
	}
	if end.Valid {
		m.End = &end.Time
	}
	return m, nil
}

// SaveMaintenance replaces the settings row
func (s *Storage) SaveMaintenance(ctx context.Context, m *models.Maintenance) error {
	query := `
		INSERT OR REPLACE INTO maintenance (id, mode, start_at, end_at, message, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, m.Mode, nullTime(m.Start), nullTime(m.End), m.Message, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save maintenance settings: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
