package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/foundry90/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher publishes to a Bus and hands failures to a background
// worker that retries with exponential backoff. Events that exhaust their
// retries, or arrive while the queue is full, go to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry publishes once and queues the event for retry on failure.
// It never blocks the caller on retries.
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := rp.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)

	select {
	case rp.retryQueue <- retryEntry{event: evt, attempts: 0, lastErr: err}:
	default:
		logger.FromContext(ctx).Error(LogMsgRetryQueueFull, "event_type", evt.Type)
		if dlErr := rp.deadLetter.Write(evt, 1, err); dlErr != nil {
			logger.FromContext(ctx).Error(LogMsgDeadLetterWriteFailed, "error", dlErr)
		}
	}
}

// Publish implements Bus; failures are absorbed by the retry queue
func (rp *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	rp.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the wrapped bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry, rp.shutdown)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// retry keeps attempting one event until it succeeds or runs out of attempts.
// Closing stop skips the remaining backoff waits.
func (rp *ResilientPublisher) retry(entry retryEntry, stop <-chan struct{}) {
	log := logger.FromContext(context.Background())

	for entry.attempts < rp.maxRetries {
		entry.attempts++
		delay := CalculateRetryDelay(rp.retryDelay, entry.attempts)

		if stop != nil {
			select {
			case <-time.After(delay):
			case <-stop:
			}
		}

		err := rp.bus.Publish(context.Background(), entry.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
			return
		}
		entry.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	if err := rp.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// drain retries whatever is still queued without backoff waits
func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.retry(entry, nil)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

// Shutdown stops the worker after draining the queue, bounded by ctx
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.once.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return rp.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
