package rabbitmq

import (
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection owns the broker connection and the channel events are published on.
type Connection struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

// Dial connects with exponential backoff, giving up after attempts tries.
func Dial(url string, attempts int, logger *slog.Logger) (*Connection, error) {
	var err error
	backoff := time.Second

	for i := 1; i <= attempts; i++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(url)
		if err == nil {
			ch, chErr := conn.Channel()
			if chErr != nil {
				_ = conn.Close()
				return nil, fmt.Errorf("failed to open channel: %w", chErr)
			}
			logger.Info("connected to RabbitMQ")
			return &Connection{conn: conn, Channel: ch}, nil
		}

		logger.Warn("RabbitMQ connect attempt failed", "attempt", i, "error", err)
		if i < attempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", attempts, err)
}

func (c *Connection) Close() error {
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
