package routing

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/domain/repository"
	"github.com/routing-gateway/internal/worker"
)

// JobRunner выполняет задание маршрутизации
type JobRunner interface {
	RunJob(ctx context.Context, job domain.RoutingJobEvent) domain.RoutingDoneEvent
}

// JobWorker читает задания из stream:routing:jobs и публикует результаты в stream:routing:done.
// Задания обрабатываются по одному, каждое сообщение подтверждается.
type JobWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	runner     JobRunner
	defaultKey string
}

// NewJobWorker создает новый JobWorker. Пустой consumerName заменяется на hostname-pid.
func NewJobWorker(
	streamRepo repository.StreamRepository,
	runner JobRunner,
	consumerGroup string,
	consumerName string,
	defaultKey string,
	logger *zap.Logger,
) *JobWorker {
	return &JobWorker{
		BaseWorker: worker.NewBaseWorker("routing-jobs", domain.StreamRoutingJobs, consumerGroup, consumerName, logger),
		streamRepo: streamRepo,
		runner:     runner,
		defaultKey: defaultKey,
	}
}

// Start запускает воркер и блокируется до остановки
func (w *JobWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting routing job worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, w.Stream(), w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.Done():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

func (w *JobWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var job domain.RoutingJobEvent
	if err := json.Unmarshal([]byte(msg.Data), &job); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// битое сообщение подтверждаем, чтобы не застревало
		w.ack(ctx, msg.ID)
		return
	}

	if job.Key == "" {
		job.Key = w.defaultKey
	}

	done := w.runner.RunJob(ctx, job)

	if _, err := w.streamRepo.PublishToStream(ctx, domain.StreamRoutingDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
	}

	w.ack(ctx, msg.ID)

	logger.Info("Routing job processed",
		zap.String("job_id", job.JobID.String()),
		zap.String("mode", string(job.Mode)),
		zap.Int("status_code", done.StatusCode),
		zap.Bool("failed", done.Error != ""))
}

func (w *JobWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, w.Stream(), w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
