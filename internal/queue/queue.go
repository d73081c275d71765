package queue

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// TopicEnquiryIntake carries the IDs of freshly recorded enquiries.
const TopicEnquiryIntake = "enquiry_intake"

// EnquiryEvent is the payload published on TopicEnquiryIntake.
type EnquiryEvent struct {
	EnquiryID int `json:"enquiry_id"`
}

// Publisher is the half of a queue that producers need.
type Publisher interface {
	Publish(topic string, payload any) error
}

// Queue interface
type Queue interface {
	Publisher
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with retry, used when no broker is
// configured.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.WithError(err).Warnf("job failed (attempt %d/%d)", job.RetryCount, job.MaxRetries)

		if job.RetryCount > job.MaxRetries {
			log.Errorf("job permanently failed after %d attempts: %+v", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartEnquiryAckSubscriber wires an in-process consumer for enquiry
// events. process is typically AckWorker.Process; when a broker is
// configured the standalone worker consumes the topic instead.
func StartEnquiryAckSubscriber(q Queue, process func(enquiryID int) error) {
	go func() {
		err := q.Subscribe(TopicEnquiryIntake, func(payload any) error {
			event, ok := payload.(EnquiryEvent)
			if !ok {
				log.Warnf("invalid payload type on %s: %T", TopicEnquiryIntake, payload)
				return nil // no retry
			}
			return process(event.EnquiryID)
		})
		if err != nil {
			log.WithError(err).Errorf("failed to subscribe to %s", TopicEnquiryIntake)
		}
	}()
}
