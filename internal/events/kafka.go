package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/logging"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/retry"
)

const (
	sendAttempts   = 3
	sendBaseDelay  = 100 * time.Millisecond
	publishTimeout = 20 * time.Second
	queueSize      = 256
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type outgoing struct {
	ctx       context.Context
	writer    messageWriter
	message   kafka.Message
	eventType string
}

// EventSender publishes lesson and auth events. Events are queued and written
// by a background goroutine; callers never wait on the broker. A full queue
// drops the event with a warning.
type EventSender struct {
	lessons messageWriter
	auth    messageWriter
	breaker *retry.CircuitBreaker

	mu     sync.RWMutex
	closed bool
	queue  chan outgoing
	done   chan struct{}
}

func NewEventSender(brokers []string, lessonTopic, authTopic string) *EventSender {
	return newEventSender(newWriter(brokers, lessonTopic), newWriter(brokers, authTopic))
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

func newEventSender(lessons, auth messageWriter) *EventSender {
	s := &EventSender{
		lessons: lessons,
		auth:    auth,
		breaker: retry.NewCircuitBreaker(5, 30*time.Second, retry.Always),
		queue:   make(chan outgoing, queueSize),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *EventSender) run() {
	defer close(s.done)
	for out := range s.queue {
		s.publish(out)
	}
}

// Close stops accepting events, flushes the queue and closes the writers.
func (s *EventSender) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	<-s.done

	lessonErr := s.lessons.Close()
	authErr := s.auth.Close()
	if lessonErr != nil {
		return lessonErr
	}
	return authErr
}

// SendLessonEvent is keyed by teacher so one teacher's events stay ordered.
func (s *EventSender) SendLessonEvent(ctx context.Context, event *model.LessonEvent) {
	s.send(ctx, s.lessons, event.TeacherId.String(), string(event.EventType), event)
}

func (s *EventSender) SendAuthEvent(ctx context.Context, event *model.AuthEvent) {
	s.send(ctx, s.auth, event.UserId.String(), string(event.EventType), event)
}

func (s *EventSender) send(ctx context.Context, w messageWriter, key, eventType string, event any) {
	logger := logging.FromContext(ctx)

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "failed to marshal event", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	out := outgoing{
		ctx:    context.WithoutCancel(ctx),
		writer: w,
		message: kafka.Message{
			Key:   []byte(key),
			Value: data,
			Time:  time.Now(),
		},
		eventType: eventType,
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		logger.Warn(ctx, "event dropped, sender closed", zap.String("event_type", eventType))
		return
	}
	select {
	case s.queue <- out:
	default:
		logger.Warn(ctx, "event dropped, queue full", zap.String("event_type", eventType))
	}
}

func (s *EventSender) publish(out outgoing) {
	ctx, cancel := context.WithTimeout(out.ctx, publishTimeout)
	defer cancel()
	logger := logging.FromContext(ctx)

	_, err := retry.WithCircuitBreaker(ctx, s.breaker, sendAttempts, sendBaseDelay, retry.Always, func() (struct{}, error) {
		if err := out.writer.WriteMessages(ctx, out.message); err != nil {
			return struct{}{}, fmt.Errorf("failed to send event: %w", err)
		}
		return struct{}{}, nil
	})
	if err != nil {
		logger.Warn(ctx, "event not published", zap.String("event_type", out.eventType), zap.Error(err))
		return
	}
	logger.Debug(ctx, "event published", zap.String("event_type", out.eventType), zap.String("key", string(out.message.Key)))
}
