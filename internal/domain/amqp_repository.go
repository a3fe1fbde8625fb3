package domain

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-json-experiment/json"
	amqp "github.com/rabbitmq/amqp091-go"

	"veridian-datagen/models"
)

// Message types set in amqp.Publishing.Type.
const (
	MessageTypeProperty  = "property.generated"
	MessageTypeCompleted = "dataset.completed"
)

// Publisher is the part of *amqp.Channel the AMQP sink uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// DatasetCompleted is published once after every record of a run.
type DatasetCompleted struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Records     int       `json:"records"`
	Risky       int       `json:"risky"`
}

// AMQPRepository publishes each record as a persistent JSON message on
// routingKey, then a DatasetCompleted event on routingKey+".completed". All
// messages carry the run ID as CorrelationId.
//
// The repository remembers how far the current run got, so calling Save again
// with the same dataset after a failure resumes at the first unpublished
// message instead of sending the batch twice. It is not safe for concurrent
// use.
type AMQPRepository struct {
	ch         Publisher
	exchange   string
	routingKey string
	// max publishes per second; 0 = unlimited
	maxRate float64

	runID     string
	published int // records of runID already accepted by the channel
	completed bool
}

func NewAMQPRepository(ch Publisher, exchange, routingKey string, maxRate float64) *AMQPRepository {
	return &AMQPRepository{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		maxRate:    maxRate,
	}
}

func (r *AMQPRepository) Name() string { return "amqp" }

func (r *AMQPRepository) Remote() bool { return true }

func (r *AMQPRepository) Save(ctx context.Context, dataset models.Dataset) error {
	if dataset.RunID != r.runID {
		r.runID, r.published, r.completed = dataset.RunID, 0, false
	} else if r.published > 0 {
		log.Printf("[sink:amqp] run %s: resuming at record %d of %d",
			dataset.RunID, r.published+1, len(dataset.Records))
	}

	var limiter *time.Ticker
	if r.maxRate > 0 {
		limiter = time.NewTicker(time.Duration(float64(time.Second) / r.maxRate))
		defer limiter.Stop()
	}

	for i := r.published; i < len(dataset.Records); i++ {
		p := dataset.Records[i]
		body, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal property record %s to JSON: %w", p.ID, err)
		}
		if err := r.wait(ctx, limiter); err != nil {
			return err
		}
		msg := r.message(dataset, MessageTypeProperty, body)
		msg.MessageId = p.ID
		if err := r.ch.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, msg); err != nil {
			return fmt.Errorf("producer: failed to publish %s: %w", p.ID, err)
		}
		r.published = i + 1
	}

	if !r.completed {
		body, err := json.Marshal(DatasetCompleted{
			RunID:       dataset.RunID,
			GeneratedAt: dataset.GeneratedAt,
			Records:     len(dataset.Records),
			Risky:       dataset.RiskyCount(),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal completion event: %w", err)
		}
		msg := r.message(dataset, MessageTypeCompleted, body)
		if err := r.ch.PublishWithContext(ctx, r.exchange, r.routingKey+".completed", false, false, msg); err != nil {
			return fmt.Errorf("producer: failed to publish completion event: %w", err)
		}
		r.completed = true
	}

	log.Printf("[sink:amqp] published %d records to exchange '%s' key '%s'",
		len(dataset.Records), r.exchange, r.routingKey)
	return nil
}

func (r *AMQPRepository) message(dataset models.Dataset, kind string, body []byte) amqp.Publishing {
	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     dataset.GeneratedAt,
		CorrelationId: dataset.RunID,
		Type:          kind,
		Body:          body,
	}
}

// wait blocks on the rate limiter, if any.
func (r *AMQPRepository) wait(ctx context.Context, limiter *time.Ticker) error {
	if limiter == nil {
		return ctx.Err()
	}
	select {
	case <-limiter.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DialAMQP connects to url and declares exchange as a durable topic exchange.
// The caller closes both the channel and the connection.
func DialAMQP(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("producer: failed to dial RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("producer: failed to open a channel: %w", err)
	}

	log.Printf("[sink:amqp] declaring exchange '%s' (type: topic, durable: true)", exchange)
	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("producer: failed to declare exchange '%s': %w", exchange, err)
	}
	return conn, ch, nil
}
