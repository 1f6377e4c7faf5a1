package postgres

import (
	"context"
	"fmt"
)

const requestLogSchema = `
CREATE TABLE IF NOT EXISTS routing_request_log (
	id              UUID PRIMARY KEY,
	mode            TEXT        NOT NULL,
	method          TEXT        NOT NULL,
	path            TEXT        NOT NULL,
	status_code     INTEGER     NOT NULL DEFAULT 0,
	decode_failed   BOOLEAN     NOT NULL DEFAULT FALSE,
	transport_error TEXT,
	duration_ms     BIGINT      NOT NULL,
	avoid           TEXT[]      NOT NULL DEFAULT '{}',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_routing_request_log_created_at
	ON routing_request_log (created_at DESC);
`

// EnsureSchema создаёт таблицу журнала вызовов, если её нет
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, requestLogSchema); err != nil {
		return fmt.Errorf("ensure request log schema: %w", err)
	}
	return nil
}
