package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MuForge_Go/internal/logger"
)

// Publisher is what game code publishes through. It never fails the caller.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher publishes to a Bus and retries failed deliveries in the
// background with exponential backoff. Events that still fail, or that do not
// fit in the retry queue, are written to a dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates the publisher and starts its retry worker
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

// PublishWithRetry publishes once synchronously and queues a retry on failure
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	select {
	case <-rp.shutdown:
		logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "error", err)
		rp.writeDeadLetter(event, 1, err)
		return
	default:
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryEntry{event: event, attempts: 1, lastErr: err})
}

// Shutdown stops the worker, which gives every queued event one final attempt.
// Returns ctx.Err() if the worker does not finish in time.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.closeOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	if rp.deadLetter != nil {
		return rp.deadLetter.Close()
	}
	return nil
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case rp.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry.event, entry.attempts, entry.lastErr)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case <-rp.shutdown:
			rp.drain()
			return
		case entry := <-rp.retryQueue:
			timer := time.NewTimer(CalculateRetryDelay(rp.retryDelay, entry.attempts))
			select {
			case <-rp.shutdown:
				timer.Stop()
				rp.finalAttempt(entry)
				rp.drain()
				return
			case <-timer.C:
			}
			rp.retry(entry)
		}
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	err := rp.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts+1)
		return
	}

	entry.attempts++
	entry.lastErr = err
	if entry.attempts > rp.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
		rp.writeDeadLetter(entry.event, entry.attempts, err)
		return
	}

	logger.Debug(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempts", entry.attempts, "error", err)
	rp.enqueue(entry)
}

// drain gives every queued event one last attempt without waiting out its backoff
func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
		rp.writeDeadLetter(entry.event, entry.attempts+1, err)
	}
}

func (rp *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
	}
}
