package event

import (
	"encoding/json"

	"github.com/streadway/amqp"
)

// Lifecycle routing keys published on the topic exchange.
const (
	SessionStarted  = "reading.session.started"
	RoundFetched    = "reading.round.fetched"
	EventLogged     = "reading.event.logged"
	SessionFinished = "reading.session.finished"
)

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends a lifecycle notification using the routing key as the
// event type.
func (p *Publisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"type":    routingKey,
		"payload": payload,
	})
	if err != nil {
		return err
	}
	return p.channel.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
