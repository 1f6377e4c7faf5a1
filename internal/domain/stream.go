package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamRoutingJobs = "stream:routing:jobs"
	StreamRoutingDone = "stream:routing:done"
)

// RoutingJobEvent - входящее событие на расчёт. Заполнено ровно одно из Route/Range/Batch/Matrix,
// соответствующее Mode.
type RoutingJobEvent struct {
	JobID  uuid.UUID        `json:"job_id"`
	Mode   Mode             `json:"mode"`
	Key    string           `json:"key"`
	Route  *RouteJobParams  `json:"route,omitempty"`
	Range  *RangeJobParams  `json:"range,omitempty"`
	Batch  *BatchJobParams  `json:"batch,omitempty"`
	Matrix *MatrixJobParams `json:"matrix,omitempty"`
}

type RouteJobParams struct {
	Origin      Coordinate         `json:"origin"`
	Destination Coordinate         `json:"destination"`
	Options     *RouteOptionsInput `json:"options,omitempty"`
}

type RangeJobParams struct {
	Origin Coordinate `json:"origin"`
	Budget Budget     `json:"budget"`
}

type BatchJobParams struct {
	Pairs   []RoutePair        `json:"pairs"`
	Options *RouteOptionsInput `json:"options,omitempty"`
}

type MatrixJobParams struct {
	Origins      []Coordinate       `json:"origins"`
	Destinations []Coordinate       `json:"destinations"`
	Options      *RouteOptionsInput `json:"options,omitempty"`
}

// RoutingDoneEvent - результат выполнения задачи
type RoutingDoneEvent struct {
	JobID         uuid.UUID      `json:"job_id"`
	Mode          Mode           `json:"mode"`
	StatusCode    int            `json:"status_code,omitempty"`
	Result        map[string]any `json:"result,omitempty"`
	DecodeFailure *DecodeFailure `json:"decode_failure,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
