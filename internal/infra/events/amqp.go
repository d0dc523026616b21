package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"supplier-marketplace/internal/pkg/errs"
)

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes JSON events to a durable topic exchange.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// Dial connects with a fixed number of attempts and declares the exchange.
func Dial(url, exchange string, retries int, delay time.Duration) (*AMQPPublisher, error) {
	const op = "events.Dial"

	var conn *amqp.Connection
	err := retry(retries, delay, time.Sleep, func() error {
		var err error
		conn, err = amqp.Dial(url)
		return err
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, op), errs.ErrDownstreamUnavailable)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, op), errs.ErrDownstreamUnavailable)
	}

	p, err := newAMQPPublisher(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, op), errs.ErrDownstreamUnavailable)
	}
	p.conn = conn
	return p, nil
}

// retry runs fn up to attempts times, sleeping only between attempts.
func retry(attempts int, delay time.Duration, sleep func(time.Duration), fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := range attempts {
		if i > 0 {
			sleep(delay)
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return errs.Wrapf(err, "after %d attempts", attempts)
}

func newAMQPPublisher(ch channel, exchange string) (*AMQPPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &AMQPPublisher{ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	const op = "events.Publish"

	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, op)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "%s: encode %s", op, routingKey)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return errs.Mark(errs.Wrap(err, op), errs.ErrDownstreamUnavailable)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
