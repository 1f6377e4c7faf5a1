package routing_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/routing-gateway/internal/config"
	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
	redisRepo "github.com/routing-gateway/internal/repository/redis"
	"github.com/routing-gateway/internal/usecase"
	"github.com/routing-gateway/internal/worker/routing"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data any) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

// MockJobRunner is a mock of JobRunner
type MockJobRunner struct {
	mock.Mock
}

func (m *MockJobRunner) RunJob(ctx context.Context, job domain.RoutingJobEvent) domain.RoutingDoneEvent {
	args := m.Called(ctx, job)
	return args.Get(0).(domain.RoutingDoneEvent)
}

func TestJobWorker_Name(t *testing.T) {
	w := routing.NewJobWorker(&MockStreamRepository{}, &MockJobRunner{}, "group", "", "", zap.NewNop())
	assert.Equal(t, "routing-jobs", w.Name())
	assert.Equal(t, "group", w.ConsumerGroup())
}

func TestJobWorker_ConsumerGroupError(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRoutingJobs, "group").Return(errors.New("redis down"))

	w := routing.NewJobWorker(stream, &MockJobRunner{}, "group", "c1", "", zap.NewNop())
	err := w.Start(context.Background())
	assert.Error(t, err)
	stream.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobWorker_ProcessesMessages(t *testing.T) {
	stream := &MockStreamRepository{}
	runner := &MockJobRunner{}

	jobID := uuid.New()
	job := domain.RoutingJobEvent{
		JobID: jobID,
		Mode:  domain.ModeRange,
		Range: &domain.RangeJobParams{Origin: domain.Coordinate{Lat: 1, Lon: 2}},
	}
	payload, err := json.Marshal(job)
	require.NoError(t, err)

	messages := make(chan domain.StreamMessage, 2)
	messages <- domain.StreamMessage{ID: "1-0", Data: "not json"}
	messages <- domain.StreamMessage{ID: "2-0", Data: string(payload)}

	done := domain.RoutingDoneEvent{JobID: jobID, Mode: domain.ModeRange, StatusCode: http.StatusOK}

	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRoutingJobs, "group").Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.StreamRoutingJobs, "group", "c1").
		Return((<-chan domain.StreamMessage)(messages), nil)
	stream.On("AckMessage", mock.Anything, domain.StreamRoutingJobs, "group", "1-0").Return(nil).Once()
	acked := make(chan struct{})
	stream.On("AckMessage", mock.Anything, domain.StreamRoutingJobs, "group", "2-0").
		Run(func(mock.Arguments) { close(acked) }).Return(nil).Once()
	stream.On("PublishToStream", mock.Anything, domain.StreamRoutingDone, done).Return("3-0", nil).Once()

	// пустой ключ задания заменяется ключом по умолчанию
	runner.On("RunJob", mock.Anything, mock.MatchedBy(func(j domain.RoutingJobEvent) bool {
		return j.JobID == jobID && j.Key == "default_key"
	})).Return(done).Once()

	w := routing.NewJobWorker(stream, runner, "group", "c1", "default_key", zap.NewNop())

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(context.Background()) }()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not acknowledged")
	}

	require.NoError(t, w.Stop())
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	stream.AssertExpectations(t)
	runner.AssertExpectations(t)
}

func TestJobWorker_EndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "job_key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"routes":[{"summary":{"lengthInMeters":1834}}]}`))
	}))
	defer upstream.Close()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	logger := zap.NewNop()
	streamRepo := redisRepo.NewStreamRepository(client, logger, 50*time.Millisecond)
	routingRepo := tomtom.NewTomTomClient(&config.TomTomConfig{BaseURL: upstream.URL, RequestTimeout: 5}, logger)
	uc := usecase.NewRoutingUseCase(routingRepo, nil, nil, logger, 0)

	w := routing.NewJobWorker(streamRepo, uc, "routing-job-workers", "c1", "", logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	jobID := uuid.New()
	_, err := streamRepo.PublishToStream(ctx, domain.StreamRoutingJobs, domain.RoutingJobEvent{
		JobID: jobID,
		Mode:  domain.ModeRoute,
		Key:   "job_key",
		Route: &domain.RouteJobParams{
			Origin:      domain.Coordinate{Lat: 42.37806, Lon: -87.94427},
			Destination: domain.Coordinate{Lat: 42.39081, Lon: -87.95857},
		},
	})
	require.NoError(t, err)

	go func() { _ = w.Start(ctx) }()
	defer w.Stop()

	var done domain.RoutingDoneEvent
	assert.Eventually(t, func() bool {
		msgs, err := client.XRange(ctx, domain.StreamRoutingDone, "-", "+").Result()
		if err != nil || len(msgs) == 0 {
			return false
		}
		return json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &done) == nil
	}, 4*time.Second, 20*time.Millisecond)

	assert.Equal(t, jobID, done.JobID)
	assert.Equal(t, http.StatusOK, done.StatusCode)
	assert.Empty(t, done.Error)
	assert.Contains(t, done.Result, "routes")
}
