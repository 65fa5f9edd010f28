package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирования в RabbitMQ.
// Соединение живёт столько же, сколько процесс; ошибки публикации логируются
// и возвращаются вызывающей стороне, которая их игнорирует - доставка
// событий не должна ломать основной поток запроса.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  Logger
}

// NewPublisher подключается к брокеру и объявляет очереди событий
func NewPublisher(url string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("queue: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("queue: open channel: %w", err)
	}

	// Очереди durable, сообщения persistent: события переживают рестарт брокера
	for _, name := range []string{QueueReservationCreated, QueueReservationCancelled} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("queue: declare %s: %w", name, err)
		}
	}

	return &Publisher{conn: conn, ch: ch, log: log}, nil
}

// PublishReservationCreated публикует событие создания бронирования
func (p *Publisher) PublishReservationCreated(ctx context.Context, event ReservationCreatedEvent) error {
	return p.publish(ctx, QueueReservationCreated, event)
}

// PublishReservationCancelled публикует событие отмены бронирования
func (p *Publisher) PublishReservationCancelled(ctx context.Context, event ReservationCancelledEvent) error {
	return p.publish(ctx, QueueReservationCancelled, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("queue: marshal event for %s: %v", queueName, err)
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = имя очереди
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("queue: publish to %s: %v", queueName, err)
		return err
	}

	return nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
