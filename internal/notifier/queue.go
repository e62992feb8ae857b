package notifier

import (
	"encoding/json"
	"fmt"

	"bank/pkg/rabbitmq"
)

// QueuePublisher enqueues credential notifications on RabbitMQ so email
// delivery happens off the request path. A consumer drains the queue and
// hands each event to a Mailer.
type QueuePublisher struct {
	mqClient *rabbitmq.Client
}

// NewQueuePublisher creates a new QueuePublisher.
func NewQueuePublisher(mqClient *rabbitmq.Client) *QueuePublisher {
	return &QueuePublisher{
		mqClient: mqClient,
	}
}

// AccountCreated publishes the event to the notification queue.
func (p *QueuePublisher) AccountCreated(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	if err := p.mqClient.PublishAccountCreated(body); err != nil {
		return fmt.Errorf("failed to enqueue notification for account %s: %w", event.UniqueID, err)
	}
	return nil
}
