package kafka

import (
	"context"

	"github.com/IBM/sarama"

	"coffee/jobs/broadcaster"
)

// SaramaProducer is a sarama SyncProducer backed sink.
type SaramaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaProducer(brokers []string, topic string) (*SaramaProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return WrapSaramaProducer(producer, topic), nil
}

// WrapSaramaProducer adapts an existing producer.
func WrapSaramaProducer(p sarama.SyncProducer, topic string) *SaramaProducer {
	return &SaramaProducer{producer: p, topic: topic}
}

// Send ignores ctx: SyncProducer has no per-call cancellation and relies
// on its own timeouts.
func (p *SaramaProducer) Send(_ context.Context, msg broadcaster.Message) error {
	_, _, err := p.producer.SendMessage(toSaramaMessage(p.topic, msg))
	return err
}

func (p *SaramaProducer) Close() error {
	return p.producer.Close()
}

func toSaramaMessage(topic string, msg broadcaster.Message) *sarama.ProducerMessage {
	headers := make([]sarama.RecordHeader, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	return &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.ByteEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: headers,
	}
}
