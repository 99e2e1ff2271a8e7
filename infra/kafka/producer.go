// Package kafka implements broadcaster sinks on top of two Kafka clients:
// segmentio/kafka-go and IBM/sarama. Both publish to a single topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"coffee/jobs/broadcaster"
)

const (
	DriverKafkaGo = "kafka-go"
	DriverSarama  = "sarama"
)

// NewSink builds the sink for the named driver.
func NewSink(driver string, brokers []string, topic string) (broadcaster.Sink, error) {
	switch driver {
	case DriverKafkaGo:
		return NewProducer(brokers, topic), nil
	case DriverSarama:
		p, err := NewSaramaProducer(brokers, topic)
		if err != nil {
			return nil, fmt.Errorf("sarama producer: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", driver)
	}
}

// Producer is a kafka-go backed sink.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) Send(ctx context.Context, msg broadcaster.Message) error {
	return p.writer.WriteMessages(ctx, toKafkaMessage(msg))
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(msg broadcaster.Message) kafka.Message {
	headers := make([]kafka.Header, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return kafka.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: headers,
	}
}
