package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/domain/repository"
)

const maxRequestLogLimit = 500

type requestLogRepository struct {
	db *DB
}

func NewRequestLogRepository(db *DB) repository.RequestLogRepository {
	return &requestLogRepository{db: db}
}

func (r *requestLogRepository) Insert(ctx context.Context, entry *domain.RequestLogEntry) error {
	if entry.Avoid == nil {
		entry.Avoid = []string{}
	}

	query := `
		INSERT INTO routing_request_log
			(id, mode, method, path, status_code, decode_failed, transport_error, duration_ms, avoid, created_at)
		VALUES
			(:id, :mode, :method, :path, :status_code, :decode_failed, :transport_error, :duration_ms, :avoid, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		r.db.logger.Error("Failed to insert request log entry",
			zap.String("id", entry.ID.String()),
			zap.Error(err))
		return fmt.Errorf("insert request log: %w", err)
	}

	return nil
}

// ListRecent возвращает последние записи, новые первыми
func (r *requestLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RequestLogEntry, error) {
	if limit <= 0 || limit > maxRequestLogLimit {
		limit = maxRequestLogLimit
	}

	query := `
		SELECT id, mode, method, path, status_code, decode_failed, transport_error, duration_ms, avoid, created_at
		FROM routing_request_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	var entries []*domain.RequestLogEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		r.db.logger.Error("Failed to list request log", zap.Error(err))
		return nil, fmt.Errorf("list request log: %w", err)
	}

	return entries, nil
}
