package queue

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"
)

// Publisher sends events to the broker.
type Publisher interface {
    Publish(ctx context.Context, ev Event) error
}

// Noop discards events.  It is used when EVENTS_ENABLED is off.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// DefaultDialTimeout bounds the broker dial made for each event.
const DefaultDialTimeout = 3 * time.Second

// AMQPPublisher publishes events to RabbitMQ.  It dials per message, which
// keeps the server free of long-lived broker state; event volume is one
// message per user action.  The dial is bounded by DialTimeout so an
// unreachable broker cannot hold a request for long.
type AMQPPublisher struct {
    URL         string
    DialTimeout time.Duration
}

// NewAMQPPublisher returns a publisher for url.
func NewAMQPPublisher(url string) *AMQPPublisher {
    return &AMQPPublisher{URL: url, DialTimeout: DefaultDialTimeout}
}

// Publish declares the events queue and sends ev as a persistent JSON
// message.  Errors are logged and returned so the caller can choose to
// ignore them.
func (p *AMQPPublisher) Publish(ctx context.Context, ev Event) error {
    log := logrus.WithFields(logrus.Fields{"queue": EventsQueue, "kind": ev.Kind})
    timeout := p.DialTimeout
    if timeout <= 0 {
        timeout = DefaultDialTimeout
    }
    conn, err := amqp.DialConfig(p.URL, amqp.Config{
        Dial:      amqp.DefaultDial(timeout),
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
    })
    if err != nil {
        log.WithError(err).Warn("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.WithError(err).Warn("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    if err := declare(ch); err != nil {
        log.WithError(err).Warn("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Type:         ev.Kind,
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", EventsQueue, false, false, pub); err != nil {
        log.WithError(err).Warn("rabbitmq: publish failed")
        return err
    }
    return nil
}

// declare makes sure the durable events queue exists (idempotent).
func declare(ch *amqp.Channel) error {
    _, err := ch.QueueDeclare(
        EventsQueue, // name
        true,        // durable
        false,       // autoDelete
        false,       // exclusive
        false,       // noWait
        nil,         // args
    )
    return err
}
