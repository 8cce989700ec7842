// Package notification delivers partner notifications produced by the order
// workflow. Delivery happens after the order change has committed, so a
// failure here is reported to the caller but never undoes the change.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// messageWriter is the part of kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the JSON payload published for each notification.
type Event struct {
	Kind       string    `json:"kind"`
	OrderID    string    `json:"order_id"`
	PartnerID  string    `json:"partner_id"`
	Contact    string    `json:"contact"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes notifications to a topic keyed by order ID, so all
// events of one order land on the same partition in order.
type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier creates a producer for topic. hosts is a comma separated
// broker list.
func NewKafkaNotifier(hosts, topic string) (*KafkaNotifier, error) {
	brokers := splitHosts(hosts)
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka host")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("kafka topic")
	}

	return newKafkaNotifier(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}), nil
}

func newKafkaNotifier(writer messageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

func (n *KafkaNotifier) Notify(ctx context.Context, notification partner.Notification) error {
	payload, err := json.Marshal(Event{
		Kind:       string(notification.Kind),
		OrderID:    notification.OrderID.String(),
		PartnerID:  notification.PartnerID.String(),
		Contact:    notification.Contact,
		OccurredAt: notification.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s notification: %w", notification.Kind, err)
	}

	message := kafka.Message{
		Key:   []byte(notification.OrderID.String()),
		Value: payload,
		Time:  notification.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(notification.Kind)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = n.writer.WriteMessages(ctx, message); err != nil {
		return errs.NewInfrastructureError("publish "+string(notification.Kind)+" notification", err)
	}
	return nil
}

// Close flushes pending messages and releases the connection.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func splitHosts(hosts string) []string {
	var brokers []string
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			brokers = append(brokers, h)
		}
	}
	return brokers
}
