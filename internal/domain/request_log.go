package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RequestLogEntry - запись о вызове внешнего сервиса
type RequestLogEntry struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Mode           Mode           `json:"mode" db:"mode"`
	Method         string         `json:"method" db:"method"`
	Path           string         `json:"path" db:"path"`
	StatusCode     int            `json:"status_code" db:"status_code"`
	DecodeFailed   bool           `json:"decode_failed" db:"decode_failed"`
	TransportError *string        `json:"transport_error,omitempty" db:"transport_error"`
	DurationMs     int64          `json:"duration_ms" db:"duration_ms"`
	Avoid          pq.StringArray `json:"avoid" db:"avoid"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
