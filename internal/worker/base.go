package worker

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// BaseWorker - общая часть воркеров, читающих stream через consumer group.
// Встраивается в конкретный воркер и даёт ему Name, Stop и доступ к настройкам потребителя.
type BaseWorker struct {
	name          string
	stream        string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger

	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{}
}

// NewBaseWorker создает BaseWorker. Пустой consumerName заменяется на DefaultConsumerName.
func NewBaseWorker(name, stream, consumerGroup, consumerName string, logger *zap.Logger) *BaseWorker {
	if consumerName == "" {
		consumerName = DefaultConsumerName()
	}

	return &BaseWorker{
		name:          name,
		stream:        stream,
		consumerGroup: consumerGroup,
		consumerName:  consumerName,
		logger:        logger.With(zap.String("worker", name)),
		done:          make(chan struct{}),
	}
}

// DefaultConsumerName - имя потребителя вида hostname-pid
func DefaultConsumerName() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "worker"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}

func (w *BaseWorker) Name() string          { return w.name }
func (w *BaseWorker) Stream() string        { return w.stream }
func (w *BaseWorker) ConsumerGroup() string { return w.consumerGroup }
func (w *BaseWorker) ConsumerName() string  { return w.consumerName }
func (w *BaseWorker) Logger() *zap.Logger   { return w.logger }

// Stop закрывает Done. Повторный вызов ничего не делает.
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		w.stopped.Store(true)
		close(w.done)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	return w.stopped.Load()
}

// Done закрывается при Stop
func (w *BaseWorker) Done() <-chan struct{} {
	return w.done
}
