package broker

import (
	"log"

	"tasks-pro/taskspro/config"
	"tasks-pro/taskspro/models"

	"github.com/nats-io/nats.go"
)

var producer *nats.Conn

// InitProducer connects the shared publishing connection. The application
// keeps running without eventing when the broker is unreachable.
func InitProducer(cfg config.Config) error {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name("taskspro-producer"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return err
	}

	producer = conn
	log.Printf("Connected to NATS at %s", cfg.NatsURL)
	return nil
}

// PublishEvent publishes an event envelope to the given subject. Publishing
// is best-effort: the store is the source of truth, so failures are logged
// and never surfaced to the caller.
func PublishEvent(subject EventType, message *models.EventMessage) {
	if producer == nil {
		return
	}

	data, err := message.ToJSON()
	if err != nil {
		log.Printf("Failed to encode event %s: %v", subject, err)
		return
	}

	if err := producer.Publish(string(subject), data); err != nil {
		log.Printf("Failed to publish event %s: %v", subject, err)
	}
}

func CloseProducer() {
	if producer != nil {
		producer.Drain()
		producer = nil
	}
}
