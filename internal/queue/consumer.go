package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/sirupsen/logrus"
)

// EventLog appends one human-readable line per event to dir/events.log.
type EventLog struct {
    Dir string
}

// Handle decodes body and appends it to the log file.
func (l EventLog) Handle(body []byte) error {
    var ev Event
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if err := os.MkdirAll(l.Dir, 0o755); err != nil {
        return fmt.Errorf("mkdir %s: %w", l.Dir, err)
    }
    f, err := os.OpenFile(filepath.Join(l.Dir, "events.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    if _, err := f.WriteString(FormatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

// FormatLine renders ev as a single log line terminated by a newline.
func FormatLine(ev Event) string {
    switch ev.Kind {
    case KindOrderPlaced:
        return fmt.Sprintf("[%s] Order placed | order_id=%s | items=%d | total=%s\n",
            ev.OccurredAt, ev.OrderID, ev.Items, ev.Total)
    case KindReservationCancelled:
        return fmt.Sprintf("[%s] Reservation cancelled | reservation_id=%s | date=%s | time=%s | table=%s\n",
            ev.OccurredAt, ev.ReservationID, ev.Date, ev.Time, ev.TableNumber)
    }
    verb := "created"
    if ev.Kind == KindReservationUpdated {
        verb = "updated"
    }
    line := fmt.Sprintf("[%s] Reservation %s | reservation_id=%s | customer=%q | location=%q | date=%s | time=%s | table=%s | guests=%d | order_type=%s",
        ev.OccurredAt, verb, ev.ReservationID, ev.CustomerName, ev.Location, ev.Date, ev.Time, ev.TableNumber, ev.Guests, ev.OrderType)
    if ev.Items > 0 {
        line += fmt.Sprintf(" | items=%d | total=%s", ev.Items, ev.Total)
    }
    return line + "\n"
}

// Consume connects to url, declares the events queue and hands every
// delivery to handle.  It reconnects with exponential backoff and only
// returns when ctx is cancelled.  Failing messages are rejected without
// requeue so a poison message cannot spin the loop.
func Consume(ctx context.Context, url string, handle func([]byte) error) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            logrus.WithError(err).Warnf("event-consumer: dial failed; retrying in %s", backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = consumeLoop(ctx, conn, handle)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        logrus.WithError(err).Warn("event-consumer: loop ended; reconnecting")
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, handle func([]byte) error) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        logrus.WithError(err).Warn("event-consumer: set QoS failed")
    }
    if err := declare(ch); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(EventsQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := handle(d.Body); err != nil {
                logrus.WithError(err).Error("event-consumer: handle message failed")
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
